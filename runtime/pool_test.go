package runtime

import (
	"pairup/domain"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func entry(id domain.IdentityID, topic domain.TopicID) domain.WaitingEntry {
	return domain.WaitingEntry{
		Identity:    id,
		DisplayName: "someone",
		Topic:       topic,
		HandleID:    uuid.NewString(),
	}
}

func TestPool_First_Join_Enqueues(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	id := domain.IdentityID(uuid.NewString())
	topic := domain.TopicID("go-interview")

	// When the first identity joins an empty topic
	result := pool.TryEnqueueOrMatch(entry(id, topic))

	// Then it waits instead of matching
	req.False(result.Matched())
	req.NotNil(result.Entry)
	req.True(result.Entry.Active)
	req.False(result.Entry.EnqueuedAt.IsZero())
	req.True(pool.IsWaiting(id, topic))
	req.Equal([]domain.TopicID{topic}, pool.WaitingTopics(id))
}

func TestPool_Second_Join_Matches_Oldest(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	first := domain.IdentityID(uuid.NewString())
	second := domain.IdentityID(uuid.NewString())
	third := domain.IdentityID(uuid.NewString())

	// Given two identities already wait, in order
	pool.TryEnqueueOrMatch(entry(first, topic))
	pool.TryEnqueueOrMatch(entry(second, topic))

	// When a third joins
	result := pool.TryEnqueueOrMatch(entry(third, topic))

	// Then it consumes the oldest entry
	req.True(result.Matched())
	req.Equal(first, result.Partner.Identity)
	req.False(result.Partner.Active)

	// And the consumed identity no longer waits
	req.False(pool.IsWaiting(first, topic))
	req.True(pool.IsWaiting(second, topic))
}

func TestPool_Rejoin_Does_Not_Self_Match(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	id := domain.IdentityID(uuid.NewString())

	pool.TryEnqueueOrMatch(entry(id, topic))

	// When the same identity runs enqueue-or-match again
	result := pool.TryEnqueueOrMatch(entry(id, topic))

	// Then it never matches its own entry
	req.False(result.Matched())
}

func TestPool_Duplicate_Join_Returns_Existing_Entry(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	id := domain.IdentityID(uuid.NewString())

	first := pool.TryEnqueueOrMatch(entry(id, topic))

	// When the same identity enqueues again for the same topic
	second := pool.TryEnqueueOrMatch(entry(id, topic))

	// Then it gets the existing entry back instead of a duplicate
	req.False(second.Matched())
	req.Same(first.Entry, second.Entry)

	// And one match consumes the single entry, leaving nothing behind
	result := pool.TryEnqueueOrMatch(entry(domain.IdentityID(uuid.NewString()), topic))
	req.True(result.Matched())
	req.Equal(id, result.Partner.Identity)
	req.False(pool.IsWaiting(id, topic))

	another := pool.TryEnqueueOrMatch(entry(domain.IdentityID(uuid.NewString()), topic))
	req.False(another.Matched())
}

func TestPool_Concurrent_Same_Identity_Joins_Hold_One_Entry(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	id := domain.IdentityID(uuid.NewString())

	// When the same identity joins from many goroutines at once
	var wg sync.WaitGroup
	results := make(chan domain.MatchResult, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- pool.TryEnqueueOrMatch(entry(id, topic))
		}()
	}
	wg.Wait()
	close(results)
	for r := range results {
		req.False(r.Matched())
	}

	// Then exactly one entry exists: a partner consumes it and the next
	// requester finds an empty queue
	req.True(pool.IsWaiting(id, topic))
	result := pool.TryEnqueueOrMatch(entry(domain.IdentityID(uuid.NewString()), topic))
	req.True(result.Matched())
	req.Equal(id, result.Partner.Identity)

	leftover := pool.TryEnqueueOrMatch(entry(domain.IdentityID(uuid.NewString()), topic))
	req.False(leftover.Matched())
}

func TestPool_Topics_Are_Independent(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	a := domain.IdentityID(uuid.NewString())
	b := domain.IdentityID(uuid.NewString())

	// Given one identity waits on another topic
	pool.TryEnqueueOrMatch(entry(a, "go-interview"))

	// When a second identity joins a different topic
	result := pool.TryEnqueueOrMatch(entry(b, "rust-interview"))

	// Then no cross-topic match happens
	req.False(result.Matched())
	req.True(pool.IsWaiting(a, "go-interview"))
	req.True(pool.IsWaiting(b, "rust-interview"))
}

func TestPool_Leave_One_Topic(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	id := domain.IdentityID(uuid.NewString())

	pool.TryEnqueueOrMatch(entry(id, topic))

	// When the identity leaves that topic
	removed := pool.Leave(id, &topic)

	// Then the entry is gone
	req.Equal(1, removed)
	req.False(pool.IsWaiting(id, topic))
}

func TestPool_Leave_All_Topics(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	id := domain.IdentityID(uuid.NewString())

	pool.TryEnqueueOrMatch(entry(id, "go-interview"))
	pool.TryEnqueueOrMatch(entry(id, "rust-interview"))

	// When leaving with no topic given
	removed := pool.Leave(id, nil)

	// Then every entry of the identity is removed
	req.Equal(2, removed)
	req.Empty(pool.WaitingTopics(id))
}

func TestPool_Leave_When_Not_Waiting_Is_NoOp(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")

	removed := pool.Leave(domain.IdentityID(uuid.NewString()), &topic)

	req.Zero(removed)
}

func TestPool_Restore_Keeps_Queue_Order(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	first := domain.IdentityID(uuid.NewString())
	second := domain.IdentityID(uuid.NewString())
	third := domain.IdentityID(uuid.NewString())

	// Given first enqueued before second
	pool.TryEnqueueOrMatch(entry(first, topic))
	time.Sleep(time.Millisecond)
	pool.TryEnqueueOrMatch(entry(second, topic))

	// And first was consumed by a match attempt that then failed
	result := pool.TryEnqueueOrMatch(entry(third, topic))
	req.True(result.Matched())
	req.Equal(first, result.Partner.Identity)
	pool.Restore(result.Partner)

	// When the next requester arrives
	fourth := domain.IdentityID(uuid.NewString())
	result = pool.TryEnqueueOrMatch(entry(fourth, topic))

	// Then the restored entry is back at the head of the queue
	req.True(result.Matched())
	req.Equal(first, result.Partner.Identity)
	req.True(pool.IsWaiting(third, topic))
}

func TestPool_UpdateHandle(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	id := domain.IdentityID(uuid.NewString())

	// Given an entry enqueued over HTTP with no transport bound yet
	pool.TryEnqueueOrMatch(domain.WaitingEntry{Identity: id, Topic: topic})

	// When the websocket binds its handle
	handle := uuid.NewString()
	pool.UpdateHandle(id, topic, handle)

	// Then the next match carries the handle
	result := pool.TryEnqueueOrMatch(entry(domain.IdentityID(uuid.NewString()), topic))
	req.True(result.Matched())
	req.Equal(handle, result.Partner.HandleID)
}

// Many identities hammer one topic concurrently; every waiting entry must be
// consumed exactly once, so matches plus leftover waiters account for every
// join with no identity appearing twice.
func TestPool_Concurrent_Joins_Never_Double_Match(t *testing.T) {
	req := require.New(t)
	pool := NewWaitingPool()
	topic := domain.TopicID("go-interview")
	const joiners = 101

	var wg sync.WaitGroup
	results := make(chan domain.MatchResult, joiners)
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- pool.TryEnqueueOrMatch(entry(domain.IdentityID(uuid.NewString()), topic))
		}()
	}
	wg.Wait()
	close(results)

	matched := make(map[domain.IdentityID]struct{})
	enqueued := make(map[domain.IdentityID]struct{})
	for r := range results {
		if r.Matched() {
			_, seen := matched[r.Partner.Identity]
			req.False(seen, "entry consumed twice")
			matched[r.Partner.Identity] = struct{}{}
			continue
		}
		enqueued[r.Entry.Identity] = struct{}{}
	}

	// Every matched partner had been enqueued first, and with an odd number
	// of joiners exactly one waiter remains
	leftover := 0
	for id := range enqueued {
		if _, wasMatched := matched[id]; !wasMatched {
			if pool.IsWaiting(id, topic) {
				leftover++
			}
		}
	}
	req.Equal(len(matched), (joiners-1)/2)
	req.Equal(1, leftover)
}
