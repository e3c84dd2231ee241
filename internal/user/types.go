package user

import "flight-concierge/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput carries the authenticated user and a signed access token.
type AuthOutput struct {
	User  model.User
	Token string
}

type DetailOutput struct {
	User model.User
}
