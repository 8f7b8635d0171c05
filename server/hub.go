package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"heprop/config"
	"heprop/model"
	"heprop/viscosity"
)

// Hub serves one websocket client. It owns its viscosity model and is the only
// goroutine that touches it.
type Hub struct {
	m    viscosity.Model
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(m viscosity.Model) *Hub {
	return &Hub{
		m:     m,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("write reply")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.handle(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

// handle applies one request to the model and builds the reply
func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgRead:
		var coeffs model.Coefficients
		if err := json.Unmarshal([]byte(msg.Content), &coeffs); err != nil {
			return model.Msg{Type: model.MsgReadFailed, Content: "invalid coefficients: " + err.Error()}
		}
		if !h.m.Read(config.Params(coeffs)) {
			return model.Msg{Type: model.MsgReadFailed, Content: "coefficients rejected, previous state kept"}
		}
		return h.snapshot(model.MsgReadOk)
	case model.MsgCorrect:
		h.m.Correct()
		return h.snapshot(model.MsgCorrected)
	case model.MsgProps:
		return h.snapshot(model.MsgProps)
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{Type: model.MsgError, Content: "no such type: " + msg.Type}
	}
}

func (h *Hub) snapshot(typ string) model.Msg {
	data, err := json.Marshal(h.m.Snapshot())
	if err != nil {
		log.WithError(err).Error("marshal snapshot")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return model.Msg{Type: typ, Content: string(data)}
}
