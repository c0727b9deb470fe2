package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"pairup/domain"
)

// TopicRepository backs the narrow catalog contract the matcher consumes:
// existence and active flag, plus listing and seeding.
type TopicRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTopicRepository(db *badger.DB, log *slog.Logger) TopicRepository {
	return TopicRepository{db: db, log: log}
}

func (r TopicRepository) Put(topic domain.Topic) error {
	payload, err := json.Marshal(topic)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(topicKey(topic.ID), payload)
	})
}

func (r TopicRepository) Exists(id domain.TopicID) (bool, error) {
	topic, err := r.get(id)
	if err != nil {
		return false, err
	}
	return topic != nil, nil
}

func (r TopicRepository) IsActive(id domain.TopicID) (bool, error) {
	topic, err := r.get(id)
	if err != nil {
		return false, err
	}
	return topic != nil && topic.Active, nil
}

func (r TopicRepository) List() ([]domain.Topic, error) {
	var topics []domain.Topic
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("topic:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var topic domain.Topic
				if err := json.Unmarshal(val, &topic); err != nil {
					return err
				}
				topics = append(topics, topic)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return topics, err
}

func (r TopicRepository) get(id domain.TopicID) (*domain.Topic, error) {
	var topic *domain.Topic
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(topicKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var t domain.Topic
			if err := json.Unmarshal(val, &t); err != nil {
				return err
			}
			topic = &t
			return nil
		})
	})
	return topic, err
}

func topicKey(id domain.TopicID) []byte {
	return []byte(fmt.Sprintf("topic:%s", id))
}
