package user

// CreateUserRequest represents the request payload for creating a new user.
// Any id supplied by the caller is ignored; the store assigns one.
type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest represents the request payload for overwriting an
// existing user's fields. The id comes from the request path, never the body.
type UpdateUserRequest struct {
	ID    int64
	Name  string
	Email string
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// User represents a user DTO for API responses.
type User struct {
	ID    int64
	Name  string
	Email string
}
