package console

import (
	"bufio"
	"io"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	pkgLog "smart-todo/pkg/log"
)

// consoleUserID is the fixed identity for the single-user console session.
const consoleUserID = 1

// UI is the interactive menu-driven console frontend. It drives the same
// task use case as the HTTP API, backed by the in-memory repository, so
// nothing survives the process.
type UI struct {
	l   pkgLog.Logger
	uc  task.UseCase
	in  *bufio.Scanner
	out io.Writer
	sc  model.Scope
}

// New creates a console UI reading from in and writing to out.
func New(l pkgLog.Logger, uc task.UseCase, in io.Reader, out io.Writer) *UI {
	return &UI{
		l:   l,
		uc:  uc,
		in:  bufio.NewScanner(in),
		out: out,
		sc:  model.Scope{UserID: consoleUserID},
	}
}
