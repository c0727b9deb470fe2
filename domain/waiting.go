package domain

import "time"

// WaitingEntry is one identity waiting for a match on one topic. At most one
// active entry exists per (identity, topic) pair.
type WaitingEntry struct {
	Identity    IdentityID
	DisplayName string
	Topic       TopicID
	// HandleID is the transport handle recorded against the entry. It may be
	// empty at enqueue time and bound later when the websocket connects.
	HandleID   string
	EnqueuedAt time.Time
	Active     bool
}

// MatchResult is the outcome of an atomic enqueue-or-match on the pool.
type MatchResult struct {
	// Partner is set when the requester consumed an existing entry.
	Partner *WaitingEntry
	// Entry is set when the requester was enqueued instead.
	Entry *WaitingEntry
}

func (r MatchResult) Matched() bool { return r.Partner != nil }

// JoinOutcome is what the matcher hands back to the command layer.
type JoinOutcome struct {
	Session *Session
	Partner *WaitingEntry
	Waiting *WaitingEntry
}

func (o JoinOutcome) Matched() bool { return o.Session != nil }
