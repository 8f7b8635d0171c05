package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"heprop/config"
	"heprop/model"
	"heprop/viscosity"
)

type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
}

func NewServer(cfg *config.Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
// Every connection gets its own model instance built from the configured coefficients.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	m, err := viscosity.New(s.cfg.Model, s.cfg.Mesh, s.cfg.Coeffs(s.cfg.Model))
	if err != nil {
		log.WithError(err).WithField("model", s.cfg.Model).Error("cannot build viscosity model")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub(m)
	hub.conn = conn
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", r.RemoteAddr).Info("client connected")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read message")
			}
			log.WithField("remote", r.RemoteAddr).Info("client disconnected")
			return
		}
		hub.msg <- msg
	}
}

// Handler routes /ws to the property service and /metrics to prometheus
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("listening")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
