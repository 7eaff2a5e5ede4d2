package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/internal/middleware"
	"gantt-chart-generator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	middleware      middleware.Middleware

	// Gantt domain
	ganttUC   gantt.UseCase
	providers []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Gantt domain
	GanttUseCase gantt.UseCase
	// Providers lists the configured language model providers in priority order.
	Providers []string
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		ganttUC:         cfg.GanttUseCase,
		providers:       cfg.Providers,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.ganttUC == nil {
		return errors.New("gantt use case is required")
	}
	return nil
}
