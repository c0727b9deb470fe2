package ws

import (
	"encoding/json"
	"time"

	"pairup/domain/event"
)

// Frame is the wire envelope for every websocket message, both directions.
// Client-to-server kinds: joinRoom, leaveRoom, and the relayable kinds
// (offer, answer, ice-candidate, sessionMessage, typing). Everything else is
// server-to-client.
type Frame struct {
	Kind      string          `json:"kind"`
	Room      string          `json:"room,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	Topic     string          `json:"topic,omitempty"`
	From      string          `json:"from,omitempty"`
	Partner   string          `json:"partner,omitempty"`
	Name      string          `json:"name,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Error     string          `json:"error,omitempty"`
	At        time.Time       `json:"at,omitempty"`
}

const (
	frameJoinRoom  = "joinRoom"
	frameLeaveRoom = "leaveRoom"
	frameError     = "error"
)

// toFrame flattens a domain event into the wire envelope.
func toFrame(e event.DomainEvent) Frame {
	switch evt := e.(type) {
	case event.MatchFound:
		return Frame{
			Kind:      string(evt.EventKind()),
			SessionID: evt.SessionID.String(),
			Topic:     string(evt.Topic),
			Room:      string(evt.Room),
			Partner:   string(evt.Partner),
			Name:      evt.Name,
			At:        evt.At,
		}
	case event.RelayEvent:
		return Frame{
			Kind:    string(evt.Kind),
			Room:    string(evt.Room),
			From:    string(evt.From),
			Payload: evt.Payload,
			At:      evt.At,
		}
	case event.Presence:
		return Frame{
			Kind: string(evt.Kind),
			Room: string(evt.Room),
			From: string(evt.Subject),
			At:   evt.At,
		}
	default:
		return Frame{Kind: string(e.EventKind()), Room: string(e.RoomID())}
	}
}

func errorFrame(err error) Frame {
	return Frame{Kind: frameError, Error: err.Error(), At: time.Now().UTC()}
}
