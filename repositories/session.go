package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"pairup/domain"
	"pairup/errors"
)

// Key layout:
//
//	session:{uuid}                         full record
//	active:{identity}                      uuid of the identity's Active session
//	hist:{identity}:{timestamp_padded}:{uuid}  terminal sessions, time ordered
//
// The 19-digit zero padding keeps history keys lexicographically sorted by
// creation time; the uuid suffix disambiguates identical nanoseconds.
type SessionRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitHistory *int
}

func NewSessionRepository(db *badger.DB, log *slog.Logger, limitHistory *int) SessionRepository {
	return SessionRepository{db: db, log: log, limitHistory: limitHistory}
}

// Save persists the session and keeps the active/history indexes in step,
// in one transaction. While the session is Active both participants carry an
// active pointer; on a terminal transition the pointers flip to history
// entries.
func (r SessionRepository) Save(session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		existing, err := getSession(txn, session.ID)
		if err != nil && !stderrors.Is(err, errors.ErrSessionNotFound) {
			return err
		}
		// A stored terminal session is immutable. A racing end or cancel that
		// read the record while it was still Active must not overwrite the
		// committed terminal state.
		if existing != nil && existing.IsTerminal() {
			return errors.ErrSessionEnded
		}
		if err := txn.Set(sessionKey(session.ID), payload); err != nil {
			return err
		}
		for _, p := range session.Participants {
			if session.Status == domain.StatusActive {
				if err := txn.Set(activeKey(p), []byte(session.ID.String())); err != nil {
					return err
				}
				continue
			}
			if err := r.retireActive(txn, p, session); err != nil {
				return err
			}
		}
		return nil
	})
}

// retireActive removes the active pointer only when it still points at this
// session, then writes the history entry.
func (r SessionRepository) retireActive(txn *badger.Txn, p domain.IdentityID, session *domain.Session) error {
	item, err := txn.Get(activeKey(p))
	if err == nil {
		err = item.Value(func(val []byte) error {
			if string(val) == session.ID.String() {
				return txn.Delete(activeKey(p))
			}
			return nil
		})
		if err != nil {
			return err
		}
	} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
		return err
	}
	return txn.Set(histKey(p, session.CreatedAt, session.ID), []byte(session.ID.String()))
}

func (r SessionRepository) GetByID(id uuid.UUID) (*domain.Session, error) {
	var session *domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		session, err = getSession(txn, id)
		return err
	})
	return session, err
}

// ActiveFor returns the identity's non-terminal session, or nil when there
// is none.
func (r SessionRepository) ActiveFor(id domain.IdentityID) (*domain.Session, error) {
	var session *domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(activeKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			sessionID, err := uuid.Parse(string(val))
			if err != nil {
				return err
			}
			session, err = getSession(txn, sessionID)
			return err
		})
	})
	return session, err
}

// History lists the identity's terminal sessions, most recent first, using
// a reverse prefix scan with cursor pagination.
func (r SessionRepository) History(id domain.IdentityID, cursor *string) ([]domain.Session, *string, error) {
	var ids []uuid.UUID
	var lastKey string

	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("hist:%s:", id)
		prefix := []byte(prefixStr)

		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		default:
			seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitHistory != nil && len(ids) == *r.limitHistory {
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(val []byte) error {
				sessionID, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				ids = append(ids, sessionID)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var sessions []domain.Session
	err = r.db.View(func(txn *badger.Txn) error {
		for _, sessionID := range ids {
			session, err := getSession(txn, sessionID)
			if err != nil {
				return err
			}
			sessions = append(sessions, *session)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sessions, &lastKey, nil
}

func getSession(txn *badger.Txn, id uuid.UUID) (*domain.Session, error) {
	item, err := txn.Get(sessionKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session domain.Session
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &session)
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func sessionKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("session:%s", id))
}

func activeKey(id domain.IdentityID) []byte {
	return []byte(fmt.Sprintf("active:%s", id))
}

func histKey(id domain.IdentityID, at time.Time, sessionID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("hist:%s:%019d:%s", id, at.UnixNano(), sessionID))
}
