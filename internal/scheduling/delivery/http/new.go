package http

import (
	"github.com/gin-gonic/gin"

	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/log"
)

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Conflicts(c *gin.Context)
	Analyze(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc scheduling.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, uc scheduling.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
