package ws

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pairup/contract"
	"pairup/domain"
	"pairup/domain/event"
	"pairup/services"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// 64 KB, enough for WebRTC SDP messages.
	maxMessageSize = 64 * 1024
)

// Client wraps one websocket connection of one authenticated identity. All
// writes go through the send channel drained by WritePump, which is what
// gives FIFO delivery per room-sender pair.
type Client struct {
	conn     *websocket.Conn
	identity domain.Identity
	// handleID identifies this transport binding; the registry uses it to
	// tell a stale disconnect from a newer connect.
	handleID  string
	send      chan Frame
	done      chan struct{}
	closeOnce sync.Once

	registry     contract.IRegistry
	relay        contract.IRelay
	matcher      services.IMatchService
	reclaimGrace time.Duration
	log          *slog.Logger
}

func NewClient(conn *websocket.Conn, identity domain.Identity,
	registry contract.IRegistry, relay contract.IRelay, matcher services.IMatchService,
	sendBufferSize int, reclaimGrace time.Duration, log *slog.Logger) *Client {
	return &Client{
		conn:         conn,
		identity:     identity,
		handleID:     uuid.NewString(),
		send:         make(chan Frame, sendBufferSize),
		done:         make(chan struct{}),
		registry:     registry,
		relay:        relay,
		matcher:      matcher,
		reclaimGrace: reclaimGrace,
		log:          log,
	}
}

func (c *Client) HandleID() string { return c.handleID }

// Consume implements the EventSink interface. It never blocks: a full send
// buffer drops the event, consistent with at-most-once delivery.
func (c *Client) Consume(_ context.Context, e event.DomainEvent) error {
	select {
	case c.send <- toFrame(e):
		return nil
	case <-c.done:
		return fmt.Errorf("connection closed")
	default:
		return fmt.Errorf("send buffer full")
	}
}

// ReadPump pumps frames from the websocket into the relay. It is the single
// reader of the connection and owns the disconnect cleanup.
func (c *Client) ReadPump() {
	defer c.disconnect()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		// A client waiting for a match legitimately sends no frames; the
		// pong is what keeps it from being swept as idle.
		c.registry.Touch(c.identity.ID)
		return nil
	})

	for {
		var frame Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("websocket read failed", "identity", string(c.identity.ID), "error", err)
			}
			return
		}
		c.registry.Touch(c.identity.ID)
		c.route(frame)
	}
}

func (c *Client) route(frame Frame) {
	switch frame.Kind {
	case frameJoinRoom:
		sessionID, err := uuid.Parse(frame.SessionID)
		if err != nil {
			c.reply(errorFrame(fmt.Errorf("bad session id")))
			return
		}
		if err := c.relay.JoinRoom(c.identity.ID, sessionID, domain.RoomHandle(frame.Room)); err != nil {
			c.reply(errorFrame(err))
		}
	case frameLeaveRoom:
		c.relay.LeaveRoom(c.identity.ID, domain.RoomHandle(frame.Room))
	default:
		kind := event.Kind(frame.Kind)
		if _, ok := event.RelayKinds[kind]; !ok {
			c.reply(errorFrame(fmt.Errorf("unknown frame kind %q", frame.Kind)))
			return
		}
		if err := c.relay.Relay(c.identity.ID, domain.RoomHandle(frame.Room), kind, frame.Payload); err != nil {
			c.reply(errorFrame(err))
		}
	}
}

func (c *Client) reply(frame Frame) {
	select {
	case c.send <- frame:
	case <-c.done:
	default:
	}
}

// Close tears down the transport. The read pump observes the closed
// connection and runs its usual disconnect path, where the registry guard
// recognizes a superseded handle and leaves the newer connection alone.
func (c *Client) Close() {
	c.shutdown()
}

func (c *Client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// disconnect runs exactly once, when ReadPump exits. The registry guard
// makes the whole sequence a no-op when a newer connection for the same
// identity already superseded this one.
func (c *Client) disconnect() {
	c.shutdown()

	if !c.registry.Unregister(c.identity.ID, c.handleID) {
		return
	}
	c.relay.DropConnection(c.identity.ID)

	// Waiting entries survive the drop for a grace window so a reconnect can
	// reclaim them; only a still-offline identity is reaped.
	id := c.identity.ID
	registry, matcher := c.registry, c.matcher
	time.AfterFunc(c.reclaimGrace, func() {
		if !registry.IsOnline(id) {
			if removed := matcher.Leave(id, nil); removed > 0 {
				c.log.Info("reaped waiting entries after disconnect",
					"identity", string(id), "removed", removed)
			}
		}
	})
}

// WritePump pumps frames from the send channel to the websocket. It is the
// single writer of the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(frame); err != nil {
				c.log.Warn("websocket write failed", "identity", string(c.identity.ID), "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
