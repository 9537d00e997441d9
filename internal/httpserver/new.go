package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/gcalendar"
	"smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	llm        openai.IOpenAI
	calendar   gcalendar.ICalendar // optional

	// Domain configuration
	jwtSecret           string
	chatRateLimitPerMin int
	historyLimit        int
	maxTokens           int
	timezone            string
	calendarID          string
	allowedOrigins      []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	LLM        openai.IOpenAI
	Calendar   gcalendar.ICalendar // may be nil

	JWTSecret           string
	ChatRateLimitPerMin int
	HistoryLimit        int
	MaxTokens           int
	Timezone            string
	CalendarID          string
	AllowedOrigins      []string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		postgresDB:          cfg.PostgresDB,
		llm:                 cfg.LLM,
		calendar:            cfg.Calendar,
		jwtSecret:           cfg.JWTSecret,
		chatRateLimitPerMin: cfg.ChatRateLimitPerMin,
		historyLimit:        cfg.HistoryLimit,
		maxTokens:           cfg.MaxTokens,
		timezone:            cfg.Timezone,
		calendarID:          cfg.CalendarID,
		allowedOrigins:      cfg.AllowedOrigins,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("llm client is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
