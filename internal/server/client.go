package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/api"
	"github.com/JSchwerberg/the-substrate-sub001/pkg/logger"
)

// WebSocket tuning.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client mediates between one websocket connection and the engine service.
// A client is bound to at most one expedition (by START or ATTACH) and
// receives every broadcast, filtering by expedition id happens client-side.
type Client struct {
	Server       *Server
	Conn         *websocket.Conn
	Send         chan api.ServerResponse
	SessionID    string
	ExpeditionID string
}

func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server:    s,
		Conn:      conn,
		Send:      make(chan api.ServerResponse, 256),
		SessionID: uuid.NewString(),
	}
}

// readPump consumes commands from the client.
func (c *Client) readPump() {
	defer func() {
		c.Server.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("session_id", c.SessionID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Subscribe to broadcasts before handling any command, so the first
	// update is never missed.
	updates := c.Server.Hub.Register(c.SessionID)
	go func() {
		for msg := range updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	logger.Log.WithField("session_id", c.SessionID).Info("Client connected")

	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.handleCommand(cmd)
	}
}

func (c *Client) handleCommand(cmd api.ClientCommand) {
	switch cmd.Action {
	case "START":
		var p api.StartPayload
		if !c.decode(cmd.Payload, &p) {
			return
		}
		exp := c.Server.Service.StartExpedition(p.Seed, domain.Difficulty(p.Difficulty))
		c.ExpeditionID = exp.ID
		c.Server.Hub.SendTo(c.SessionID, BuildView(exp, "STARTED"))

	case "ATTACH":
		var p api.AttachPayload
		if !c.decode(cmd.Payload, &p) {
			return
		}
		exp, ok := c.Server.Service.Get(p.ExpeditionID)
		if !ok {
			c.fail("expedition not found")
			return
		}
		c.ExpeditionID = exp.ID
		c.Server.Hub.SendTo(c.SessionID, BuildView(exp, "UPDATE"))

	case "STEP":
		var p api.StepPayload
		if !c.decode(cmd.Payload, &p) {
			return
		}
		if c.ExpeditionID == "" {
			c.fail("no expedition bound; START or ATTACH first")
			return
		}
		if _, _, err := c.Server.Service.Step(c.ExpeditionID, p.Count); err != nil {
			c.fail(err.Error())
			return
		}
		exp, _ := c.Server.Service.Get(c.ExpeditionID)
		c.Server.Hub.Broadcast(BuildView(exp, "UPDATE"))

	case "PATH":
		var p api.PathPayload
		if !c.decode(cmd.Payload, &p) {
			return
		}
		if c.ExpeditionID == "" {
			c.fail("no expedition bound; START or ATTACH first")
			return
		}
		err := c.Server.Service.AssignPath(c.ExpeditionID, p.ProcessID, domain.GridPosition{X: p.X, Y: p.Y})
		if err != nil {
			c.fail(err.Error())
			return
		}
		exp, _ := c.Server.Service.Get(c.ExpeditionID)
		c.Server.Hub.SendTo(c.SessionID, BuildView(exp, "UPDATE"))

	case "STATE":
		if c.ExpeditionID == "" {
			c.fail("no expedition bound; START or ATTACH first")
			return
		}
		exp, ok := c.Server.Service.Get(c.ExpeditionID)
		if !ok {
			c.fail("expedition not found")
			return
		}
		c.Server.Hub.SendTo(c.SessionID, BuildView(exp, "UPDATE"))

	default:
		c.fail("unknown action: " + cmd.Action)
	}
}

// decode unmarshals and validates a payload, reporting failures to the
// client. A nil payload decodes to the zero value.
func (c *Client) decode(raw json.RawMessage, out api.Validator) bool {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			c.fail("malformed payload: " + err.Error())
			return false
		}
	}
	if err := out.Validate(); err != nil {
		c.fail(err.Error())
		return false
	}
	return true
}

func (c *Client) fail(msg string) {
	logger.Log.WithFields(logrus.Fields{
		"session_id": c.SessionID,
		"error":      msg,
	}).Warn("Command rejected")
	c.Server.Hub.SendTo(c.SessionID, api.ServerResponse{Type: "ERROR", Error: msg})
}

// writePump pushes responses to the client plus keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
