package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter constructs the complete route tree: public health and metrics
// endpoints plus the /api/v1 codec group.
func NewRouter(h *Handlers, mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	{
		api.POST("/encode", h.Encode)
		api.POST("/decode", h.Decode)
		api.GET("/alphabet", h.Alphabet)
		api.GET("/constraints", h.GetConstraints)
		api.PUT("/constraints", h.PutConstraints)
	}

	return r
}

//Personal.AI order the ending
