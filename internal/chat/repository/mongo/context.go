package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
)

// contextDoc is the stored shape of a session's conversation context.
type contextDoc struct {
	ID        string            `bson:"_id"` // session id
	Values    map[string]string `bson:"values"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

// LoadContext returns the session's stored context, or an empty map when no
// document exists yet.
func (r *implRepository) LoadContext(ctx context.Context, sessionID string) (model.ConversationContext, error) {
	var doc contextDoc
	err := r.contexts().FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return model.ConversationContext{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.LoadContext: %v", err)
		return nil, repository.ErrFailedToGet
	}

	if doc.Values == nil {
		return model.ConversationContext{}, nil
	}
	return model.ConversationContext(doc.Values), nil
}

// MergeContext upserts the given keys field by field. Existing keys not in
// updates keep their values.
func (r *implRepository) MergeContext(ctx context.Context, sessionID string, updates model.ConversationContext) error {
	if len(updates) == 0 {
		return nil
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set["values."+k] = v
	}

	_, err := r.contexts().UpdateOne(ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.MergeContext: %v", err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

// ClearContext drops the session's context document.
func (r *implRepository) ClearContext(ctx context.Context, sessionID string) error {
	if _, err := r.contexts().DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.ClearContext: %v", err)
		return repository.ErrFailedToDelete
	}
	return nil
}
