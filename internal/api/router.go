package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	analyzeHandler *AnalyzeHandler,
	historyHandler *HistoryHandler,
) *Router {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/analyze", analyzeHandler.Analyze)
	r.POST("/emails", analyzeHandler.Enqueue)
	r.GET("/summarizer/ping", analyzeHandler.PingSummarizer)

	r.GET("/history", historyHandler.List)
	r.DELETE("/history", historyHandler.Clear)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
