package services

import (
	stderrors "errors"
	"log/slog"
	"pairup/contract"
	"pairup/domain"
	"pairup/domain/event"
	"pairup/errors"
	"pairup/mocks"
	"pairup/runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	catalog       *mocks.MockITopicCatalog
	sessions      *mocks.MockISessionStore
	relay         *mocks.MockIRelay
	pool          *runtime.WaitingPool
	notifications chan contract.Notification
	service       *MatchService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		catalog:       mocks.NewMockITopicCatalog(ctrl),
		sessions:      mocks.NewMockISessionStore(ctrl),
		relay:         mocks.NewMockIRelay(ctrl),
		pool:          runtime.NewWaitingPool(),
		notifications: make(chan contract.Notification, 16),
	}
	f.service = NewMatchService(f.catalog, f.sessions, f.pool, f.relay, f.notifications, slog.Default())
	return f
}

func identity(name string) domain.Identity {
	return domain.Identity{ID: domain.IdentityID(uuid.NewString()), DisplayName: name}
}

func TestMatchService_Join_First_Waits(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("go-interview")

	f.catalog.EXPECT().Exists(topic).Return(true, nil)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(nil, nil)

	// When the first identity joins the topic
	outcome, err := f.service.Join(alice, topic, uuid.NewString())

	// Then it waits and no notification is sent
	req.NoError(err)
	req.False(outcome.Matched())
	req.NotNil(outcome.Waiting)
	req.True(f.pool.IsWaiting(alice.ID, topic))
	req.Empty(f.notifications)
}

func TestMatchService_Join_Second_Matches(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	bob := identity("Bob")
	topic := domain.TopicID("go-interview")

	f.catalog.EXPECT().Exists(topic).Return(true, nil).Times(2)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil).Times(2)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(nil, nil)
	f.sessions.EXPECT().ActiveFor(bob.ID).Return(nil, nil)
	f.sessions.EXPECT().Save(gomock.Any()).Return(nil)

	// Given Alice is already waiting
	_, err := f.service.Join(alice, topic, uuid.NewString())
	req.NoError(err)

	// When Bob joins the same topic
	outcome, err := f.service.Join(bob, topic, uuid.NewString())

	// Then a session exists between exactly the two of them
	req.NoError(err)
	req.True(outcome.Matched())
	req.True(outcome.Session.HasParticipant(alice.ID))
	req.True(outcome.Session.HasParticipant(bob.ID))
	req.Equal(domain.StatusActive, outcome.Session.Status)
	req.Equal(alice.ID, outcome.Partner.Identity)

	// And Alice no longer waits
	req.False(f.pool.IsWaiting(alice.ID, topic))

	// And both sides got a matchFound naming the other
	req.Len(f.notifications, 2)
	first := <-f.notifications
	second := <-f.notifications
	req.Equal(alice.ID, first.To)
	req.Equal(bob.ID, second.To)
	found, ok := first.Event.(event.MatchFound)
	req.True(ok)
	req.Equal(bob.ID, found.Partner)
	req.Equal("Bob", found.Name)
	req.Equal(outcome.Session.Room, found.Room)
}

func TestMatchService_Join_Unknown_Topic(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("no-such-topic")

	f.catalog.EXPECT().Exists(topic).Return(false, nil)

	_, err := f.service.Join(alice, topic, "")

	req.ErrorIs(err, errors.ErrTopicNotFound)
	req.False(f.pool.IsWaiting(alice.ID, topic))
}

func TestMatchService_Join_Inactive_Topic(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("retired-topic")

	f.catalog.EXPECT().Exists(topic).Return(true, nil)
	f.catalog.EXPECT().IsActive(topic).Return(false, nil)

	_, err := f.service.Join(alice, topic, "")

	req.ErrorIs(err, errors.ErrTopicInactive)
}

func TestMatchService_Join_While_In_Session(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("go-interview")
	current, err := domain.NewSession(topic, alice.ID, domain.IdentityID(uuid.NewString()))
	req.NoError(err)

	f.catalog.EXPECT().Exists(topic).Return(true, nil)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(current, nil)

	_, err = f.service.Join(alice, topic, "")

	req.ErrorIs(err, errors.ErrAlreadyInSession)
}

func TestMatchService_Join_Twice_Same_Topic(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("go-interview")

	f.catalog.EXPECT().Exists(topic).Return(true, nil).Times(2)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil).Times(2)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(nil, nil).Times(2)

	_, err := f.service.Join(alice, topic, "")
	req.NoError(err)

	// When the same identity joins the same topic again
	_, err = f.service.Join(alice, topic, "")

	req.ErrorIs(err, errors.ErrAlreadyWaiting)
}

func TestMatchService_Join_Restores_Partner_On_Save_Failure(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	bob := identity("Bob")
	topic := domain.TopicID("go-interview")
	boom := stderrors.New("disk full")

	f.catalog.EXPECT().Exists(topic).Return(true, nil).Times(2)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil).Times(2)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(nil, nil)
	f.sessions.EXPECT().ActiveFor(bob.ID).Return(nil, nil)
	f.sessions.EXPECT().Save(gomock.Any()).Return(boom)

	_, err := f.service.Join(alice, topic, uuid.NewString())
	req.NoError(err)

	// When the match is found but persisting the session fails
	_, err = f.service.Join(bob, topic, uuid.NewString())

	// Then the error surfaces and Alice is back in the pool
	req.ErrorIs(err, boom)
	req.True(f.pool.IsWaiting(alice.ID, topic))
	req.Empty(f.notifications)
}

func TestMatchService_End_Closes_Room(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	a := domain.IdentityID(uuid.NewString())
	b := domain.IdentityID(uuid.NewString())
	session, err := domain.NewSession("go-interview", a, b)
	req.NoError(err)

	f.sessions.EXPECT().GetByID(session.ID).Return(session, nil)
	f.sessions.EXPECT().Save(session).Return(nil)
	f.relay.EXPECT().CloseRoom(session.Room, event.KindSessionEnded, a)

	// When a participant ends the session
	ended, err := f.service.End(a, session.ID)

	req.NoError(err)
	req.Equal(domain.StatusCompleted, ended.Status)
	req.Equal(a, ended.EndedBy)
}

func TestMatchService_End_Twice(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	a := domain.IdentityID(uuid.NewString())
	b := domain.IdentityID(uuid.NewString())
	session, err := domain.NewSession("go-interview", a, b)
	req.NoError(err)
	req.NoError(session.End(a))

	f.sessions.EXPECT().GetByID(session.ID).Return(session, nil)

	// When the peer ends an already-ended session
	_, err = f.service.End(b, session.ID)

	// Then nothing is saved and no room event goes out
	req.ErrorIs(err, errors.ErrSessionEnded)
}

func TestMatchService_Cancel(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	a := domain.IdentityID(uuid.NewString())
	b := domain.IdentityID(uuid.NewString())
	session, err := domain.NewSession("go-interview", a, b)
	req.NoError(err)

	f.sessions.EXPECT().GetByID(session.ID).Return(session, nil)
	f.sessions.EXPECT().Save(session).Return(nil)
	f.relay.EXPECT().CloseRoom(session.Room, event.KindSessionCancelled, b)

	cancelled, err := f.service.Cancel(b, session.ID)

	req.NoError(err)
	req.Equal(domain.StatusCancelled, cancelled.Status)
	req.Equal(domain.ReasonCancelled, cancelled.EndReason)
}

func TestMatchService_End_By_Stranger(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	session, err := domain.NewSession("go-interview",
		domain.IdentityID(uuid.NewString()), domain.IdentityID(uuid.NewString()))
	req.NoError(err)

	f.sessions.EXPECT().GetByID(session.ID).Return(session, nil)

	_, err = f.service.End(domain.IdentityID(uuid.NewString()), session.ID)

	req.ErrorIs(err, errors.ErrNotParticipant)
	req.Equal(domain.StatusActive, session.Status)
}

func TestMatchService_Status(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("go-interview")

	f.catalog.EXPECT().Exists(topic).Return(true, nil)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(nil, nil).Times(2)

	_, err := f.service.Join(alice, topic, "")
	req.NoError(err)

	view, err := f.service.Status(alice.ID)

	req.NoError(err)
	req.Nil(view.Session)
	req.Equal([]domain.TopicID{topic}, view.Waiting)
}

func TestMatchService_Leave_Clears_Waiting(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := identity("Alice")
	topic := domain.TopicID("go-interview")

	f.catalog.EXPECT().Exists(topic).Return(true, nil)
	f.catalog.EXPECT().IsActive(topic).Return(true, nil)
	f.sessions.EXPECT().ActiveFor(alice.ID).Return(nil, nil)

	_, err := f.service.Join(alice, topic, "")
	req.NoError(err)

	// When leaving without naming a topic
	removed := f.service.Leave(alice.ID, nil)

	req.Equal(1, removed)
	req.False(f.pool.IsWaiting(alice.ID, topic))
}
