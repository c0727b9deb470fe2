package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pairup/contract"
	"pairup/domain"
	"pairup/domain/event"
	"pairup/errors"
)

type IMatchService interface {
	Join(identity domain.Identity, topic domain.TopicID, handleID string) (domain.JoinOutcome, error)
	Leave(id domain.IdentityID, topic *domain.TopicID) int
	End(id domain.IdentityID, sessionID uuid.UUID) (*domain.Session, error)
	Cancel(id domain.IdentityID, sessionID uuid.UUID) (*domain.Session, error)
	Status(id domain.IdentityID) (StatusView, error)
	History(id domain.IdentityID, cursor *string) ([]domain.Session, *string, error)
	BindTransport(id domain.IdentityID, handleID string)
}

// StatusView is what the command layer returns for a status poll: the
// active session if any, and the topics the identity still waits on.
type StatusView struct {
	Session *domain.Session  `json:"session,omitempty"`
	Waiting []domain.TopicID `json:"waiting,omitempty"`
}

// MatchService turns "identity wants topic X" into a committed two-party
// session, and drives the session lifecycle afterwards.
type MatchService struct {
	catalog       contract.ITopicCatalog
	sessions      contract.ISessionStore
	pool          contract.IWaitingPool
	relay         contract.IRelay
	notifications chan<- contract.Notification
	log           *slog.Logger
}

func NewMatchService(catalog contract.ITopicCatalog, sessions contract.ISessionStore,
	pool contract.IWaitingPool, relay contract.IRelay,
	notifications chan<- contract.Notification, log *slog.Logger) *MatchService {
	return &MatchService{
		catalog:       catalog,
		sessions:      sessions,
		pool:          pool,
		relay:         relay,
		notifications: notifications,
		log:           log,
	}
}

// Join validates the topic and the requester's state, then runs the atomic
// enqueue-or-match. On a match the partner's entry removal and the session
// creation commit together: if persisting the session fails the partner is
// restored to the pool at its original position, so no one is ever left
// dequeued without a session.
func (s *MatchService) Join(identity domain.Identity, topic domain.TopicID, handleID string) (domain.JoinOutcome, error) {
	if err := s.checkTopic(topic); err != nil {
		return domain.JoinOutcome{}, err
	}
	if err := s.checkConflicts(identity.ID, topic); err != nil {
		return domain.JoinOutcome{}, err
	}

	result := s.pool.TryEnqueueOrMatch(domain.WaitingEntry{
		Identity:    identity.ID,
		DisplayName: identity.DisplayName,
		Topic:       topic,
		HandleID:    handleID,
	})
	if !result.Matched() {
		s.log.Info("enqueued", "identity", string(identity.ID), "topic", string(topic))
		return domain.JoinOutcome{Waiting: result.Entry}, nil
	}

	partner := result.Partner
	session, err := domain.NewSession(topic, partner.Identity, identity.ID)
	if err != nil {
		s.pool.Restore(partner)
		return domain.JoinOutcome{}, err
	}
	if err := s.sessions.Save(session); err != nil {
		s.pool.Restore(partner)
		return domain.JoinOutcome{}, fmt.Errorf("session creation failed: %w", err)
	}

	s.log.Info("matched",
		"session", session.ID.String(),
		"topic", string(topic),
		"a", string(partner.Identity),
		"b", string(identity.ID))

	s.notifyMatch(session, partner.Identity, identity)
	s.notifyMatch(session, identity.ID, domain.Identity{ID: partner.Identity, DisplayName: partner.DisplayName})

	return domain.JoinOutcome{Session: session, Partner: partner}, nil
}

func (s *MatchService) checkTopic(topic domain.TopicID) error {
	exists, err := s.catalog.Exists(topic)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrTopicNotFound
	}
	active, err := s.catalog.IsActive(topic)
	if err != nil {
		return err
	}
	if !active {
		return errors.ErrTopicInactive
	}
	return nil
}

// checkConflicts rejects a join before any pool mutation, avoiding orphaned
// double-booking.
func (s *MatchService) checkConflicts(id domain.IdentityID, topic domain.TopicID) error {
	current, err := s.sessions.ActiveFor(id)
	if err != nil {
		return err
	}
	if current != nil {
		return errors.ErrAlreadyInSession
	}
	if s.pool.IsWaiting(id, topic) {
		return errors.ErrAlreadyWaiting
	}
	return nil
}

// notifyMatch queues a best-effort matchFound push for one recipient. A full
// queue drops the notification rather than blocking the matcher; the
// recipient still owns the session and finds it on the next status poll.
func (s *MatchService) notifyMatch(session *domain.Session, to domain.IdentityID, partner domain.Identity) {
	n := contract.Notification{
		To: to,
		Event: event.MatchFound{
			SessionID: session.ID,
			Topic:     session.Topic,
			Room:      session.Room,
			Partner:   partner.ID,
			Name:      partner.DisplayName,
			At:        time.Now().UTC(),
		},
	}
	select {
	case s.notifications <- n:
	default:
		s.log.Warn("notification queue full, dropping matchFound", "to", string(to))
	}
}

// Leave deactivates waiting entries; zero removed is a valid outcome.
func (s *MatchService) Leave(id domain.IdentityID, topic *domain.TopicID) int {
	return s.pool.Leave(id, topic)
}

// End transitions the session to Completed and dissolves its room. A repeat
// call reports ErrSessionEnded without altering state.
func (s *MatchService) End(id domain.IdentityID, sessionID uuid.UUID) (*domain.Session, error) {
	return s.terminate(id, sessionID, (*domain.Session).End, event.KindSessionEnded)
}

// Cancel transitions the session to Cancelled, the path used when an
// initiator never engaged. Same idempotency rule as End.
func (s *MatchService) Cancel(id domain.IdentityID, sessionID uuid.UUID) (*domain.Session, error) {
	return s.terminate(id, sessionID, (*domain.Session).Cancel, event.KindSessionCancelled)
}

func (s *MatchService) terminate(id domain.IdentityID, sessionID uuid.UUID,
	transition func(*domain.Session, domain.IdentityID) error, kind event.Kind) (*domain.Session, error) {
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := transition(session, id); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(session); err != nil {
		return nil, err
	}
	s.relay.CloseRoom(session.Room, kind, id)
	s.log.Info("session terminated",
		"session", session.ID.String(), "status", string(session.Status), "by", string(id))
	return session, nil
}

func (s *MatchService) Status(id domain.IdentityID) (StatusView, error) {
	session, err := s.sessions.ActiveFor(id)
	if err != nil {
		return StatusView{}, err
	}
	return StatusView{
		Session: session,
		Waiting: s.pool.WaitingTopics(id),
	}, nil
}

func (s *MatchService) History(id domain.IdentityID, cursor *string) ([]domain.Session, *string, error) {
	return s.sessions.History(id, cursor)
}

// BindTransport records a late-binding transport handle against every entry
// the identity is waiting on.
func (s *MatchService) BindTransport(id domain.IdentityID, handleID string) {
	for _, topic := range s.pool.WaitingTopics(id) {
		s.pool.UpdateHandle(id, topic, handleID)
	}
}
