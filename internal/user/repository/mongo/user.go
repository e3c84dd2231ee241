package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"flight-concierge/internal/model"
	"flight-concierge/internal/user/repository"
	"flight-concierge/pkg/log"
)

const userCollection = "users"

type implRepository struct {
	db *mongodriver.Database
	l  log.Logger
}

// New creates a new MongoDB-backed Repository for the user domain.
func New(db *mongodriver.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) users() *mongodriver.Collection {
	return r.db.Collection(userCollection)
}

// CreateUser inserts a new account record.
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	now := time.Now()
	user := model.User{
		ID:           uuid.NewString(),
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.users().InsertOne(ctx, user); err != nil {
		r.l.Errorf(ctx, "user/repository/mongo.CreateUser: %v", err)
		return model.User{}, repository.ErrFailedToInsert
	}
	return user, nil
}

// GetUser retrieves one account by id.
func (r *implRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	var user model.User
	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/mongo.GetUser: %v", err)
		return model.User{}, repository.ErrFailedToGet
	}
	return user, nil
}

// GetUserByEmail retrieves one account by email.
// Returns zero-value User (ID == "") when not found — no error for not-found.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/mongo.GetUserByEmail: %v", err)
		return model.User{}, repository.ErrFailedToGet
	}
	return user, nil
}
