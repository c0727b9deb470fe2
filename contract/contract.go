//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pairup/domain"
	"pairup/domain/event"
)

// EventSink is the delivery side of a live connection. Consume must not
// block: implementations buffer and drop rather than stall the relay.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps an authenticated identity to its live transport handle.
// Source of truth for "is this identity currently reachable".
type IRegistry interface {
	// Register records the live transport for an identity. A prior handle for
	// the same identity is superseded and its id returned.
	Register(id domain.IdentityID, handleID string, sink EventSink) (superseded string)
	// Unregister removes the mapping only if the stored handle matches,
	// guarding against a stale disconnect racing a newer connect. Reports
	// whether anything was removed.
	Unregister(id domain.IdentityID, handleID string) bool
	Lookup(id domain.IdentityID) (EventSink, bool)
	IsOnline(id domain.IdentityID) bool
	// Touch refreshes the activity timestamp, called on every inbound frame.
	Touch(id domain.IdentityID)
	// IdleIdentities lists identities whose connection saw no activity for at
	// least the given duration.
	IdleIdentities(olderThan time.Duration) []domain.IdentityID
	// Evict removes a mapping regardless of its handle, for entries already
	// judged stale by the sweep.
	Evict(id domain.IdentityID) bool
}

// IWaitingPool is the per-topic FIFO of identities wanting a match.
type IWaitingPool interface {
	// TryEnqueueOrMatch either consumes the oldest waiting entry of another
	// identity for the topic, or enqueues the requester. Atomic per topic.
	TryEnqueueOrMatch(candidate domain.WaitingEntry) domain.MatchResult
	// Leave deactivates matching entries. A nil topic removes all entries of
	// the identity. Returns the number removed; zero is not an error.
	Leave(id domain.IdentityID, topic *domain.TopicID) int
	// UpdateHandle refreshes the transport handle on an existing entry, used
	// when the websocket connects after the HTTP enqueue.
	UpdateHandle(id domain.IdentityID, topic domain.TopicID, handleID string)
	// Restore puts a consumed entry back at its original queue position, used
	// by the matcher rollback.
	Restore(entry *domain.WaitingEntry)
	IsWaiting(id domain.IdentityID, topic domain.TopicID) bool
	WaitingTopics(id domain.IdentityID) []domain.TopicID
}

// ISessionStore is the durable store for session records.
type ISessionStore interface {
	Save(session *domain.Session) error
	GetByID(id uuid.UUID) (*domain.Session, error)
	// ActiveFor returns the non-terminal session of an identity, or nil.
	ActiveFor(id domain.IdentityID) (*domain.Session, error)
	History(id domain.IdentityID, cursor *string) ([]domain.Session, *string, error)
}

// ITopicCatalog is the narrow contract the matcher consumes.
type ITopicCatalog interface {
	Exists(id domain.TopicID) (bool, error)
	IsActive(id domain.TopicID) (bool, error)
	List() ([]domain.Topic, error)
	Put(topic domain.Topic) error
}

// IRelay routes per-session events between the two participants of a room.
type IRelay interface {
	JoinRoom(id domain.IdentityID, sessionID uuid.UUID, room domain.RoomHandle) error
	Relay(from domain.IdentityID, room domain.RoomHandle, kind event.Kind, payload json.RawMessage) error
	LeaveRoom(id domain.IdentityID, room domain.RoomHandle)
	// DropConnection reacts to a transport disconnect: every room the identity
	// was joined to gets a participantDisconnected event, then the
	// associations are removed. The sessions themselves are not touched.
	DropConnection(id domain.IdentityID)
	// CloseRoom pushes a terminal event (sessionEnded or sessionCancelled) to
	// all remaining members and dissolves the room.
	CloseRoom(room domain.RoomHandle, kind event.Kind, by domain.IdentityID)
}

// IIdentityProvider validates a bearer credential and yields the identity.
// Failure means the transport is refused before any core state is touched.
type IIdentityProvider interface {
	Authenticate(token string) (domain.Identity, error)
}

// Notification is a pending best-effort push to one identity, drained by the
// notifier worker outside any shared-state lock.
type Notification struct {
	To    domain.IdentityID
	Event event.DomainEvent
}
