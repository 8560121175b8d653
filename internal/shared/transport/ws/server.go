package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"MapForge/modules/kit/logx"
)

type Server struct {
	hub *Hub
	log logx.Logger
}

func NewServer(h *Hub, l logx.Logger) *Server {
	if l == nil {
		l = logx.NewZapLogger(nil)
	}
	return &Server{
		hub: h,
		log: l,
	}
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	upgrader := websocket.Upgrader{
		// 允许所有CORS跨域请求
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	wsConn, err := upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Error("websocket upgrade error", zap.Error(err))
		return
	}

	s.hub.Attach(NewConn(wsConn, s.log))
	s.log.Info("websocket upgrade success",
		zap.String("addr", wsConn.RemoteAddr().String()),
		zap.Int("subscribers", s.hub.Len()))
}
