package repositories

import (
	"log/slog"
	"pairup/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Put_And_List_Topics(t *testing.T) {
	req := require.New(t)
	repository := NewTopicRepository(openDB(t), slog.Default())
	topics := []domain.Topic{
		{ID: "go-interview", Title: "Go mock interview", Active: true, CreatedAt: time.Now().UTC()},
		{ID: "rust-interview", Title: "Rust mock interview", Active: false, CreatedAt: time.Now().UTC()},
	}

	for _, topic := range topics {
		req.NoError(repository.Put(topic))
	}

	listed, err := repository.List()
	req.NoError(err)
	req.Len(listed, len(topics))
}

func Test_Topic_Exists_And_IsActive(t *testing.T) {
	req := require.New(t)
	repository := NewTopicRepository(openDB(t), slog.Default())

	req.NoError(repository.Put(domain.Topic{ID: "go-interview", Title: "Go", Active: true}))
	req.NoError(repository.Put(domain.Topic{ID: "retired", Title: "Old", Active: false}))

	exists, err := repository.Exists("go-interview")
	req.NoError(err)
	req.True(exists)

	exists, err = repository.Exists("no-such-topic")
	req.NoError(err)
	req.False(exists)

	active, err := repository.IsActive("go-interview")
	req.NoError(err)
	req.True(active)

	// A retired topic exists but is not joinable
	active, err = repository.IsActive("retired")
	req.NoError(err)
	req.False(active)

	active, err = repository.IsActive("no-such-topic")
	req.NoError(err)
	req.False(active)
}

func Test_Put_Overwrites_Topic(t *testing.T) {
	req := require.New(t)
	repository := NewTopicRepository(openDB(t), slog.Default())

	req.NoError(repository.Put(domain.Topic{ID: "go-interview", Title: "Go", Active: true}))
	req.NoError(repository.Put(domain.Topic{ID: "go-interview", Title: "Go", Active: false}))

	active, err := repository.IsActive("go-interview")
	req.NoError(err)
	req.False(active)

	listed, err := repository.List()
	req.NoError(err)
	req.Len(listed, 1)
}
