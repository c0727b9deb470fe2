// Package runtime owns the concurrent in-memory state of the service: the
// connection registry, the waiting pool and the signaling relay. It contains
// no business rules beyond the invariants those structures must hold.
package runtime

import (
	"sync"
	"time"

	"pairup/contract"
	"pairup/domain"
)

// liveConnection is the current transport binding for an identity.
type liveConnection struct {
	handleID   string
	sink       contract.EventSink
	lastActive time.Time
}

// Registry is the source of truth for "is this identity currently
// reachable". Exactly one live connection per identity: a new register for
// the same identity supersedes the previous one. Purely in-memory.
type Registry struct {
	mu          sync.RWMutex
	connections map[domain.IdentityID]*liveConnection
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[domain.IdentityID]*liveConnection),
	}
}

// Register records the live transport for an identity. If a prior handle
// existed it is removed and returned so the transport layer can close it;
// the registry itself never closes transports.
func (r *Registry) Register(id domain.IdentityID, handleID string, sink contract.EventSink) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var superseded string
	if prev, ok := r.connections[id]; ok {
		superseded = prev.handleID
	}
	r.connections[id] = &liveConnection{
		handleID:   handleID,
		sink:       sink,
		lastActive: time.Now().UTC(),
	}
	return superseded
}

// Unregister removes the mapping only if the stored handle equals handleID.
// A stale disconnect racing a newer connect is therefore a no-op.
func (r *Registry) Unregister(id domain.IdentityID, handleID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[id]
	if !ok || conn.handleID != handleID {
		return false
	}
	delete(r.connections, id)
	return true
}

func (r *Registry) Lookup(id domain.IdentityID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.connections[id]
	if !ok {
		return nil, false
	}
	return conn.sink, true
}

func (r *Registry) IsOnline(id domain.IdentityID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.connections[id]
	return ok
}

func (r *Registry) Touch(id domain.IdentityID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conn, ok := r.connections[id]; ok {
		conn.lastActive = time.Now().UTC()
	}
}

// IdleIdentities lists identities whose connection saw no inbound activity
// for at least olderThan. Used by the sweep worker to reap entries whose
// transport died without a disconnect notification.
func (r *Registry) IdleIdentities(olderThan time.Duration) []domain.IdentityID {
	deadline := time.Now().UTC().Add(-olderThan)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var idle []domain.IdentityID
	for id, conn := range r.connections {
		if conn.lastActive.Before(deadline) {
			idle = append(idle, id)
		}
	}
	return idle
}

// Evict removes a mapping regardless of its handle. Only the sweep worker
// uses it, after the entry has already been judged stale.
func (r *Registry) Evict(id domain.IdentityID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.connections[id]; !ok {
		return false
	}
	delete(r.connections, id)
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}
