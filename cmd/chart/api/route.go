package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s Server) registeRoute() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	s.engine.GET("/api/ping", s.ping)

	s.engine.GET("/api/weekly/:symbol", s.getWeekly)
	s.engine.GET("/api/weekly/:symbol/chart", s.getWeeklyChart)
}

// Ping godoc
// @ID ping
// @Summary Ping
// @Description Ping and test service
// @Tags common
// @Produce  plain
// @Success 200 {object} string
// @Router /ping [get]
func (s Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
