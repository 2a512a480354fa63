package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nzai/pubapi/constants"
	"go.uber.org/zap"
)

// emaPeriod read the optional ema query, 0 when absent
func emaPeriod(c *gin.Context) (int, error) {
	value := c.Query("ema")
	if value == "" {
		return 0, nil
	}

	period, err := strconv.Atoi(value)
	if err != nil || period < 0 {
		return 0, fmt.Errorf("%w: invalid ema period %q", constants.ErrConfig, value)
	}

	return period, nil
}

func (s Server) getWeekly(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))

	period, err := emaPeriod(c)
	if err != nil {
		c.JSON(statusOf(err), Response{Error: err.Error()})
		return
	}

	data, err := s.model.ChartData(c.Request.Context(), symbol, period)
	if err != nil {
		zap.L().Error("get weekly quotes failed", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(statusOf(err), Response{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Data: data})
}

func (s Server) getWeeklyChart(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))

	period, err := emaPeriod(c)
	if err != nil {
		c.JSON(statusOf(err), Response{Error: err.Error()})
		return
	}

	buffer, err := s.model.ChartPNG(c.Request.Context(), symbol, period)
	if err != nil {
		zap.L().Error("get weekly chart failed", zap.Error(err), zap.String("symbol", symbol))
		c.JSON(statusOf(err), Response{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", buffer)
}
