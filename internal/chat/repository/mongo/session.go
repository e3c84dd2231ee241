package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
)

// CreateSession inserts a new session record.
func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	now := time.Now()
	session := model.Session{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.sessions().InsertOne(ctx, session); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.CreateSession: %v", err)
		return model.Session{}, repository.ErrFailedToInsert
	}
	return session, nil
}

// GetSession retrieves one session by id.
func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	var session model.Session
	err := r.sessions().FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return model.Session{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.GetSession: %v", err)
		return model.Session{}, repository.ErrFailedToGet
	}
	return session, nil
}

// ListSessions returns the user's sessions, most recently active first.
func (r *implRepository) ListSessions(ctx context.Context, userID string) ([]model.Session, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.sessions().Find(ctx, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.ListSessions: %v", err)
		return nil, repository.ErrFailedToList
	}

	var sessions []model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.ListSessions decode: %v", err)
		return nil, repository.ErrFailedToList
	}
	return sessions, nil
}

// UpdateSession applies the non-zero fields of opt and returns the updated
// record.
func (r *implRepository) UpdateSession(ctx context.Context, opt repository.UpdateSessionOptions) (model.Session, error) {
	set := bson.M{"updated_at": time.Now()}
	if opt.Title != "" {
		set["title"] = opt.Title
	}

	update := bson.M{"$set": set}
	if opt.IncMessageCount != 0 {
		update["$inc"] = bson.M{"message_count": opt.IncMessageCount}
	}

	updateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var session model.Session
	err := r.sessions().FindOneAndUpdate(ctx, bson.M{"_id": opt.ID}, update, updateOpts).Decode(&session)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return model.Session{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.UpdateSession: %v", err)
		return model.Session{}, repository.ErrFailedToUpdate
	}
	return session, nil
}

// DeleteSession removes the session and cascades to its messages and
// context document.
func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	res, err := r.sessions().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.DeleteSession: %v", err)
		return repository.ErrFailedToDelete
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	if _, err := r.messages().DeleteMany(ctx, bson.M{"session_id": id}); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.DeleteSession messages: %v", err)
		return repository.ErrFailedToDelete
	}
	if _, err := r.contexts().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.DeleteSession context: %v", err)
		return repository.ErrFailedToDelete
	}
	return nil
}
