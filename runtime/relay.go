package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pairup/contract"
	"pairup/domain"
	"pairup/domain/event"
	"pairup/errors"
)

// Relay routes per-session events between exactly the two participants of a
// room. Delivery is at-most-once, best-effort: an event for a peer that is
// not currently joined is dropped, never queued.
//
// Ordering per room-sender pair is preserved because each live connection
// drains a single buffered channel from one writer goroutine; the relay
// itself never reorders.
type Relay struct {
	mu sync.RWMutex
	// rooms maps a room handle to its currently joined participants.
	rooms map[domain.RoomHandle]map[domain.IdentityID]struct{}
	// memberRooms is the reverse index so a disconnect touches only the
	// rooms the identity is actually in.
	memberRooms map[domain.IdentityID]map[domain.RoomHandle]struct{}

	registry contract.IRegistry
	sessions contract.ISessionStore
	log      *slog.Logger
}

func NewRelay(registry contract.IRegistry, sessions contract.ISessionStore, log *slog.Logger) *Relay {
	return &Relay{
		rooms:       make(map[domain.RoomHandle]map[domain.IdentityID]struct{}),
		memberRooms: make(map[domain.IdentityID]map[domain.RoomHandle]struct{}),
		registry:    registry,
		sessions:    sessions,
		log:         log,
	}
}

// JoinRoom validates that the identity is one of the session's two
// participants and associates its live connection with the room. The joiner
// receives sessionJoined, an already-present peer receives participantJoined.
func (r *Relay) JoinRoom(id domain.IdentityID, sessionID uuid.UUID, room domain.RoomHandle) error {
	session, err := r.sessions.GetByID(sessionID)
	if err != nil {
		return err
	}
	if !session.HasParticipant(id) {
		return errors.ErrNotParticipant
	}
	if session.Room != room {
		return errors.ErrRoomNotFound
	}
	if session.IsTerminal() {
		return errors.ErrSessionEnded
	}

	r.mu.Lock()
	if _, ok := r.rooms[room]; !ok {
		r.rooms[room] = make(map[domain.IdentityID]struct{})
	}
	r.rooms[room][id] = struct{}{}
	if _, ok := r.memberRooms[id]; !ok {
		r.memberRooms[id] = make(map[domain.RoomHandle]struct{})
	}
	r.memberRooms[id][room] = struct{}{}
	peers := r.peersLocked(room, id)
	r.mu.Unlock()

	r.deliver(id, event.Presence{
		Kind: event.KindSessionJoined, Room: room, Subject: id, At: time.Now().UTC(),
	})
	for _, peer := range peers {
		r.deliver(peer, event.Presence{
			Kind: event.KindParticipantJoined, Room: room, Subject: id, At: time.Now().UTC(),
		})
	}
	return nil
}

// Relay forwards the payload to the other participant joined to the room.
// If the peer is not joined the event is silently skipped, consistent with
// the at-most-once contract.
func (r *Relay) Relay(from domain.IdentityID, room domain.RoomHandle, kind event.Kind, payload json.RawMessage) error {
	if _, ok := event.RelayKinds[kind]; !ok {
		return fmt.Errorf("%w: kind %q is not relayable", errors.ErrBadPayload, kind)
	}

	r.mu.RLock()
	members, ok := r.rooms[room]
	if !ok {
		r.mu.RUnlock()
		return errors.ErrRoomNotFound
	}
	if _, ok := members[from]; !ok {
		r.mu.RUnlock()
		return errors.ErrNotParticipant
	}
	peers := r.peersLocked(room, from)
	r.mu.RUnlock()

	evt := event.RelayEvent{
		Kind: kind, Room: room, From: from, Payload: payload, At: time.Now().UTC(),
	}
	for _, peer := range peers {
		r.deliver(peer, evt)
	}
	return nil
}

// LeaveRoom removes the association and tells the remaining participant.
func (r *Relay) LeaveRoom(id domain.IdentityID, room domain.RoomHandle) {
	peers, was := r.remove(id, room)
	if !was {
		return
	}
	for _, peer := range peers {
		r.deliver(peer, event.Presence{
			Kind: event.KindParticipantLeft, Room: room, Subject: id, At: time.Now().UTC(),
		})
	}
}

// DropConnection reacts to a transport disconnect. Every room the identity
// was joined to gets participantDisconnected, then the associations are
// removed. The sessions stay Active: a transient network drop must not
// destroy a session.
func (r *Relay) DropConnection(id domain.IdentityID) {
	r.mu.RLock()
	joined := make([]domain.RoomHandle, 0, len(r.memberRooms[id]))
	for room := range r.memberRooms[id] {
		joined = append(joined, room)
	}
	r.mu.RUnlock()

	for _, room := range joined {
		peers, was := r.remove(id, room)
		if !was {
			continue
		}
		for _, peer := range peers {
			r.deliver(peer, event.Presence{
				Kind: event.KindParticipantDisconnected, Room: room, Subject: id, At: time.Now().UTC(),
			})
		}
	}
}

// CloseRoom pushes a terminal event to every remaining member and dissolves
// the room. Called by the session lifecycle after End or Cancel committed.
func (r *Relay) CloseRoom(room domain.RoomHandle, kind event.Kind, by domain.IdentityID) {
	r.mu.Lock()
	members := make([]domain.IdentityID, 0, len(r.rooms[room]))
	for id := range r.rooms[room] {
		members = append(members, id)
		if rooms, ok := r.memberRooms[id]; ok {
			delete(rooms, room)
			if len(rooms) == 0 {
				delete(r.memberRooms, id)
			}
		}
	}
	delete(r.rooms, room)
	r.mu.Unlock()

	for _, id := range members {
		r.deliver(id, event.Presence{
			Kind: kind, Room: room, Subject: by, At: time.Now().UTC(),
		})
	}
}

// remove drops one membership and returns the remaining members. The second
// result reports whether the identity was actually joined.
func (r *Relay) remove(id domain.IdentityID, room domain.RoomHandle) ([]domain.IdentityID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok {
		return nil, false
	}
	if _, joined := members[id]; !joined {
		return nil, false
	}
	delete(members, id)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
	if rooms, ok := r.memberRooms[id]; ok {
		delete(rooms, room)
		if len(rooms) == 0 {
			delete(r.memberRooms, id)
		}
	}
	return r.peersLocked(room, id), true
}

// peersLocked must be called with at least a read lock held.
func (r *Relay) peersLocked(room domain.RoomHandle, except domain.IdentityID) []domain.IdentityID {
	var peers []domain.IdentityID
	for id := range r.rooms[room] {
		if id != except {
			peers = append(peers, id)
		}
	}
	return peers
}

// deliver pushes one event to one identity, outside any relay lock. An
// offline identity or a full sink buffer is a skipped delivery, not an
// error escalated to the sender.
func (r *Relay) deliver(to domain.IdentityID, evt event.DomainEvent) {
	sink, ok := r.registry.Lookup(to)
	if !ok {
		r.log.Debug("delivery skipped, identity offline",
			"to", string(to), "kind", string(evt.EventKind()))
		return
	}
	if err := sink.Consume(context.Background(), evt); err != nil {
		r.log.Warn("delivery failed",
			"to", string(to), "kind", string(evt.EventKind()), "error", err)
	}
}
