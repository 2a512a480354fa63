package api

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/nzai/pubapi/cmd/chart/model"
	"go.uber.org/zap"
)

// Server api server
type Server struct {
	engine *gin.Engine
	model  *model.WeeklyModel
}

// NewServer create api server
func NewServer(m *model.WeeklyModel) *Server {
	gin.SetMode(gin.ReleaseMode)
	server := &Server{
		engine: gin.New(),
		model:  m,
	}

	zap.L().Debug("init gin success")

	server.engine.Use(server.logger(), server.recovery())

	pprof.Register(server.engine, "/v1/pprof")

	server.registeRoute()

	zap.L().Debug("register route success")

	return server
}

// Run listen on address until the engine stops
func (s Server) Run(address string) error {
	zap.L().Info("listen", zap.String("address", address))
	return s.engine.Run(address)
}

func (s Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
