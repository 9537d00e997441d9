package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo/internal/console"
	"smart-todo/internal/task/repository/memory"
	"smart-todo/internal/task/usecase"
	"smart-todo/pkg/log"
)

func main() {
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     "production",
		Encoding: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	taskUC := usecase.New(logger, memory.New(), nil, "", "UTC")
	ui := console.New(logger, taskUC, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- ui.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			fmt.Fprintln(os.Stderr, "console error:", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		// Interrupt: the data is in memory only, so just say goodbye.
		fmt.Println("\n\nExiting...")
		fmt.Println("=============================")
		fmt.Println("   Thanks for using Todo App!")
		fmt.Println("   All data will be lost.")
		fmt.Println("=============================")
	}
}
