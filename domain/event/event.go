package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pairup/domain"
)

// Kind tags every event delivered to a connected client. The wire names are
// part of the client protocol and must not change.
type Kind string

const (
	KindMatchFound              Kind = "matchFound"
	KindSessionJoined           Kind = "sessionJoined"
	KindParticipantJoined       Kind = "participantJoined"
	KindParticipantLeft         Kind = "participantLeft"
	KindParticipantDisconnected Kind = "participantDisconnected"
	KindSessionEnded            Kind = "sessionEnded"
	KindSessionCancelled        Kind = "sessionCancelled"

	// Relayed peer-to-peer kinds. The payload is opaque to the server.
	KindOffer          Kind = "offer"
	KindAnswer         Kind = "answer"
	KindIceCandidate   Kind = "ice-candidate"
	KindSessionMessage Kind = "sessionMessage"
	KindTyping         Kind = "typing"
)

// RelayKinds are the kinds a client may ask the relay to forward verbatim to
// its peer. Anything else is server-originated.
var RelayKinds = map[Kind]struct{}{
	KindOffer:          {},
	KindAnswer:         {},
	KindIceCandidate:   {},
	KindSessionMessage: {},
	KindTyping:         {},
}

type DomainEvent interface {
	EventKind() Kind
	RoomID() domain.RoomHandle
}

// RelayEvent carries an opaque payload from one participant of a room to the
// other. From identifies the sender; the receiving side never sees events it
// sent itself.
type RelayEvent struct {
	Kind    Kind
	Room    domain.RoomHandle
	From    domain.IdentityID
	Payload json.RawMessage
	At      time.Time
}

func (e RelayEvent) EventKind() Kind           { return e.Kind }
func (e RelayEvent) RoomID() domain.RoomHandle { return e.Room }

// MatchFound notifies a waiting identity that a partner was found and a
// session was created. The receiver has not joined the room yet; Room tells
// it where to go.
type MatchFound struct {
	SessionID uuid.UUID
	Topic     domain.TopicID
	Room      domain.RoomHandle
	Partner   domain.IdentityID
	Name      string
	At        time.Time
}

func (e MatchFound) EventKind() Kind           { return KindMatchFound }
func (e MatchFound) RoomID() domain.RoomHandle { return e.Room }

// Presence is a server-originated room event: joined, left, disconnected,
// ended, cancelled.
type Presence struct {
	Kind    Kind
	Room    domain.RoomHandle
	Subject domain.IdentityID
	At      time.Time
}

func (e Presence) EventKind() Kind           { return e.Kind }
func (e Presence) RoomID() domain.RoomHandle { return e.Room }
