package domain

import (
	"time"

	"github.com/google/uuid"

	"pairup/errors"
)

// RoomHandle is an opaque token scoping relay routing to exactly one
// session's two participants.
type RoomHandle string

type SessionStatus string

const (
	StatusActive    SessionStatus = "ACTIVE"
	StatusCompleted SessionStatus = "COMPLETED"
	StatusCancelled SessionStatus = "CANCELLED"
)

type EndReason string

const (
	ReasonEnded     EndReason = "ended"
	ReasonCancelled EndReason = "cancelled"
)

// Session is one matched pair. It is created at the moment of a match, so it
// begins Active; Completed and Cancelled are terminal.
type Session struct {
	ID           uuid.UUID     `json:"id"`
	Topic        TopicID       `json:"topic"`
	Participants [2]IdentityID `json:"participants"`
	Room         RoomHandle    `json:"room"`
	Status       SessionStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	EndedAt      *time.Time    `json:"ended_at,omitempty"`
	EndReason    EndReason     `json:"end_reason,omitempty"`
	EndedBy      IdentityID    `json:"ended_by,omitempty"`
}

func NewSession(topic TopicID, a, b IdentityID) (*Session, error) {
	if a == b {
		return nil, errors.ErrSamePeer
	}
	return &Session{
		ID:           uuid.New(),
		Topic:        topic,
		Participants: [2]IdentityID{a, b},
		Room:         RoomHandle(uuid.NewString()),
		Status:       StatusActive,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (s *Session) HasParticipant(id IdentityID) bool {
	return s.Participants[0] == id || s.Participants[1] == id
}

// Peer returns the other participant of the pair.
func (s *Session) Peer(id IdentityID) (IdentityID, bool) {
	switch id {
	case s.Participants[0]:
		return s.Participants[1], true
	case s.Participants[1]:
		return s.Participants[0], true
	}
	return "", false
}

func (s *Session) IsTerminal() bool {
	return s.Status != StatusActive
}

// End transitions Active -> Completed. A second call after any terminal
// transition reports ErrSessionEnded and leaves the record untouched.
func (s *Session) End(by IdentityID) error {
	return s.terminate(by, StatusCompleted, ReasonEnded)
}

// Cancel transitions Active -> Cancelled, used when the initiator never
// engaged. Same idempotency rule as End.
func (s *Session) Cancel(by IdentityID) error {
	return s.terminate(by, StatusCancelled, ReasonCancelled)
}

func (s *Session) terminate(by IdentityID, status SessionStatus, reason EndReason) error {
	if !s.HasParticipant(by) {
		return errors.ErrNotParticipant
	}
	if s.IsTerminal() {
		return errors.ErrSessionEnded
	}
	now := time.Now().UTC()
	s.Status = status
	s.EndedAt = &now
	s.EndReason = reason
	s.EndedBy = by
	return nil
}
