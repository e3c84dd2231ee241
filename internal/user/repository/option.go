package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Email        string
	Name         string
	PasswordHash string
}
