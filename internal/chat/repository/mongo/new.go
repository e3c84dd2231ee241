package mongo

import (
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"flight-concierge/internal/chat/repository"
	"flight-concierge/pkg/log"
)

// Collection names.
const (
	sessionCollection = "chat_sessions"
	messageCollection = "chat_messages"
	contextCollection = "chat_contexts"
)

type implRepository struct {
	db *mongodriver.Database
	l  log.Logger
}

// New creates a new MongoDB-backed Repository for the chat domain.
func New(db *mongodriver.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) sessions() *mongodriver.Collection {
	return r.db.Collection(sessionCollection)
}

func (r *implRepository) messages() *mongodriver.Collection {
	return r.db.Collection(messageCollection)
}

func (r *implRepository) contexts() *mongodriver.Collection {
	return r.db.Collection(contextCollection)
}
