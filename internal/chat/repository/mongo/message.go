package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
)

// AppendMessage records one message at the end of a session's history.
func (r *implRepository) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) (model.Message, error) {
	message := model.Message{
		ID:        uuid.NewString(),
		SessionID: opt.SessionID,
		Role:      opt.Role,
		Content:   opt.Content,
		CreatedAt: time.Now(),
	}

	if _, err := r.messages().InsertOne(ctx, message); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.AppendMessage: %v", err)
		return model.Message{}, repository.ErrFailedToInsert
	}
	return message, nil
}

// ListMessages returns a page of the session's messages in arrival order,
// along with the total count.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, int, error) {
	filter := bson.M{"session_id": opt.SessionID}

	total, err := r.messages().CountDocuments(ctx, filter)
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.ListMessages count: %v", err)
		return nil, 0, repository.ErrFailedToList
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(opt.Offset)).
		SetLimit(int64(opt.Limit))

	cursor, err := r.messages().Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.ListMessages: %v", err)
		return nil, 0, repository.ErrFailedToList
	}

	var messages []model.Message
	if err := cursor.All(ctx, &messages); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.ListMessages decode: %v", err)
		return nil, 0, repository.ErrFailedToList
	}
	return messages, int(total), nil
}

// RecentMessages returns up to limit trailing messages in arrival order.
func (r *implRepository) RecentMessages(ctx context.Context, sessionID string, limit int) ([]model.Message, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.messages().Find(ctx, bson.M{"session_id": sessionID}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.RecentMessages: %v", err)
		return nil, repository.ErrFailedToList
	}

	var messages []model.Message
	if err := cursor.All(ctx, &messages); err != nil {
		r.l.Errorf(ctx, "chat/repository/mongo.RecentMessages decode: %v", err)
		return nil, repository.ErrFailedToList
	}

	// Fetched newest-first; flip back to arrival order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
