package runtime

import (
	"sort"
	"sync"
	"time"

	"pairup/domain"
)

// topicQueue is the FIFO of waiting entries for one topic. Its mutex is the
// per-topic critical section that makes enqueue-or-match atomic: no two
// requesters can consume the same entry.
type topicQueue struct {
	mu      sync.Mutex
	entries []*domain.WaitingEntry
}

// WaitingPool holds one queue per topic plus an identity index so that
// cleanup on disconnect touches only the topics the identity actually waits
// on, not every queue.
type WaitingPool struct {
	mu         sync.RWMutex
	topics     map[domain.TopicID]*topicQueue
	byIdentity map[domain.IdentityID]map[domain.TopicID]struct{}
}

func NewWaitingPool() *WaitingPool {
	return &WaitingPool{
		topics:     make(map[domain.TopicID]*topicQueue),
		byIdentity: make(map[domain.IdentityID]map[domain.TopicID]struct{}),
	}
}

// TryEnqueueOrMatch looks for the oldest active entry of another identity
// for the topic. If one exists it is removed, all-or-nothing, and returned
// as the partner. Otherwise the candidate is enqueued.
func (p *WaitingPool) TryEnqueueOrMatch(candidate domain.WaitingEntry) domain.MatchResult {
	q := p.queue(candidate.Topic)

	q.mu.Lock()
	var own *domain.WaitingEntry
	for i, e := range q.entries {
		if e.Identity == candidate.Identity {
			if e.Active && own == nil {
				own = e
			}
			continue
		}
		if !e.Active {
			continue
		}
		q.entries = append(q.entries[:i], q.entries[i+1:]...)
		e.Active = false
		p.unindex(e.Identity, e.Topic)
		q.mu.Unlock()
		return domain.MatchResult{Partner: e}
	}

	// A concurrent join by the same identity may already hold an entry for
	// the topic; enqueueing is idempotent per (identity, topic).
	if own != nil {
		q.mu.Unlock()
		return domain.MatchResult{Entry: own}
	}

	entry := candidate
	if entry.EnqueuedAt.IsZero() {
		entry.EnqueuedAt = time.Now().UTC()
	}
	entry.Active = true
	q.entries = append(q.entries, &entry)
	p.index(entry.Identity, entry.Topic)
	q.mu.Unlock()
	return domain.MatchResult{Entry: &entry}
}

// Leave deactivates the matching entries. A nil topic removes every active
// entry of the identity. Zero removed is a no-op, not an error.
func (p *WaitingPool) Leave(id domain.IdentityID, topic *domain.TopicID) int {
	var topics []domain.TopicID
	if topic != nil {
		topics = []domain.TopicID{*topic}
	} else {
		topics = p.WaitingTopics(id)
	}

	removed := 0
	for _, t := range topics {
		q := p.lookupQueue(t)
		if q == nil {
			continue
		}
		q.mu.Lock()
		kept := q.entries[:0]
		for _, e := range q.entries {
			if e.Identity == id {
				e.Active = false
				removed++
				continue
			}
			kept = append(kept, e)
		}
		q.entries = kept
		p.unindex(id, t)
		q.mu.Unlock()
	}
	return removed
}

// UpdateHandle refreshes the transport handle recorded against an existing
// entry, for a websocket that connects after the HTTP enqueue call.
func (p *WaitingPool) UpdateHandle(id domain.IdentityID, topic domain.TopicID, handleID string) {
	q := p.lookupQueue(topic)
	if q == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, e := range q.entries {
		if e.Identity == id {
			e.HandleID = handleID
			return
		}
	}
}

// Restore re-inserts a consumed entry at its original queue position,
// keeping the FIFO ordered by enqueue time. Used by the matcher rollback so
// a partner is never left dequeued without a session.
func (p *WaitingPool) Restore(entry *domain.WaitingEntry) {
	q := p.queue(entry.Topic)

	q.mu.Lock()
	entry.Active = true
	at := sort.Search(len(q.entries), func(i int) bool {
		return q.entries[i].EnqueuedAt.After(entry.EnqueuedAt)
	})
	q.entries = append(q.entries, nil)
	copy(q.entries[at+1:], q.entries[at:])
	q.entries[at] = entry
	p.index(entry.Identity, entry.Topic)
	q.mu.Unlock()
}

func (p *WaitingPool) IsWaiting(id domain.IdentityID, topic domain.TopicID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.byIdentity[id][topic]
	return ok
}

func (p *WaitingPool) WaitingTopics(id domain.IdentityID) []domain.TopicID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	topics := make([]domain.TopicID, 0, len(p.byIdentity[id]))
	for t := range p.byIdentity[id] {
		topics = append(topics, t)
	}
	return topics
}

func (p *WaitingPool) queue(topic domain.TopicID) *topicQueue {
	p.mu.Lock()
	defer p.mu.Unlock()
	q, ok := p.topics[topic]
	if !ok {
		q = &topicQueue{}
		p.topics[topic] = q
	}
	return q
}

func (p *WaitingPool) lookupQueue(topic domain.TopicID) *topicQueue {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.topics[topic]
}

func (p *WaitingPool) index(id domain.IdentityID, topic domain.TopicID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.byIdentity[id]; !ok {
		p.byIdentity[id] = make(map[domain.TopicID]struct{})
	}
	p.byIdentity[id][topic] = struct{}{}
}

func (p *WaitingPool) unindex(id domain.IdentityID, topic domain.TopicID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if topics, ok := p.byIdentity[id]; ok {
		delete(topics, topic)
		if len(topics) == 0 {
			delete(p.byIdentity, id)
		}
	}
}
