package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/config"
	handlers "github.com/surpriz/hospitalidee-moderation/pkg/handlers/http"
	"github.com/surpriz/hospitalidee-moderation/pkg/middleware"
	"github.com/surpriz/hospitalidee-moderation/pkg/server/router"
)

type (
	ModerationServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
	}
	ModerationServer struct {
		*BaseServer
	}
)

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	s := &ModerationServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.WithRouters(router.NewModerationRouter(di.MiddlewareTransport, di.HandlerTransport))
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	return s
}

func (s *ModerationServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting moderation server")
	return s.Router.Listen(addr)
}

func (s *ModerationServer) Shutdown() error {
	return s.Router.Shutdown()
}
