package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heprop/config"
	"heprop/model"
	"heprop/viscosity"
)

const testConfig = `
[mesh]
Cells   = 4
Patches = inlet:1, outlet:1

[transport]
Model = HeliumConst

[HeliumConstCoeffs]
TMean = 1.9
rhoHe = 145.5
`

func newTestHub(t *testing.T) *Hub {
	cfg, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)
	m, err := viscosity.New(cfg.Model, cfg.Mesh, cfg.Coeffs(cfg.Model))
	require.NoError(t, err)
	return NewHub(m)
}

func decode(t *testing.T, msg model.Msg) model.Properties {
	t.Helper()
	var props model.Properties
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &props))
	return props
}

func TestHubHandle(t *testing.T) {
	h := newTestHub(t)

	reply := h.handle(model.Msg{Type: model.MsgProps})
	require.Equal(t, model.MsgProps, reply.Type)
	initial := decode(t, reply)
	assert.Equal(t, 1.9, initial.Temperature)
	assert.False(t, initial.Stale)

	reply = h.handle(model.Msg{Type: model.MsgRead, Content: `{"TMean": 2.0, "rhoHe": 146}`})
	require.Equal(t, model.MsgReadOk, reply.Type)
	read := decode(t, reply)
	assert.True(t, read.Stale)
	assert.Equal(t, initial.Eta, read.Eta)

	reply = h.handle(model.Msg{Type: model.MsgCorrect})
	require.Equal(t, model.MsgCorrected, reply.Type)
	corrected := decode(t, reply)
	assert.False(t, corrected.Stale)
	assert.NotEqual(t, initial.Eta, corrected.Eta)
	assert.Equal(t, corrected.Eta/146, corrected.Nu)
}

func TestHubHandleRejects(t *testing.T) {
	h := newTestHub(t)
	before := h.handle(model.Msg{Type: model.MsgProps}).Content

	reply := h.handle(model.Msg{Type: model.MsgRead, Content: `{"TMean": 2.0}`})
	assert.Equal(t, model.MsgReadFailed, reply.Type)
	reply = h.handle(model.Msg{Type: model.MsgRead, Content: `not json`})
	assert.Equal(t, model.MsgReadFailed, reply.Type)
	assert.Equal(t, before, h.handle(model.Msg{Type: model.MsgProps}).Content)

	reply = h.handle(model.Msg{Type: "start"})
	assert.Equal(t, model.MsgError, reply.Type)
}

func TestServeWs(t *testing.T) {
	cfg, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)
	srv := httptest.NewServer(NewServer(cfg, websocket.Upgrader{}).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	send := func(msg model.Msg) model.Msg {
		require.NoError(t, conn.WriteJSON(&msg))
		var reply model.Msg
		require.NoError(t, conn.ReadJSON(&reply))
		return reply
	}

	reply := send(model.Msg{Type: model.MsgRead, Content: `{"TMean": 5, "rhoHe": 145}`})
	assert.Equal(t, model.MsgReadOk, reply.Type)
	reply = send(model.Msg{Type: model.MsgCorrect})
	require.Equal(t, model.MsgCorrected, reply.Type)
	props := decode(t, reply)
	assert.Equal(t, "above", props.Clamped)
	assert.Equal(t, viscosity.Tlambda(), props.Tlambda)
}

func TestServeWsBadModel(t *testing.T) {
	cfg, err := config.Parse([]byte("[transport]\nModel = HeliumConst\n"))
	require.NoError(t, err)
	srv := httptest.NewServer(NewServer(cfg, websocket.Upgrader{}).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	cfg, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)
	srv := httptest.NewServer(NewServer(cfg, websocket.Upgrader{}).Handler())
	defer srv.Close()

	_ = newTestHub(t)
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
