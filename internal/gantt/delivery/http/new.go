package http

import (
	"gantt-chart-generator/internal/gantt"
	"gantt-chart-generator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc gantt.UseCase
}

// New creates a new HTTP handler for the gantt domain.
func New(l log.Logger, uc gantt.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
