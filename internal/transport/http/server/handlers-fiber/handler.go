// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/alkharfy/cveeez-dash/internal/usecase"
	"go.uber.org/zap"
)

// Handler serves the REST routes using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}
