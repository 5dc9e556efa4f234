package user

import (
	"context"

	domain "users-api/internal/domain/user"
)

// Repository defines the interface for the database gateway. It abstracts
// the data layer so the operations and their tests can run against a fake
// or in-memory store.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)           // full-table read
	Insert(ctx context.Context, u *domain.User) (int64, error) // parameterized insert, returns assigned id
	Update(ctx context.Context, u *domain.User) error          // update by id; no-match is silent success
	Delete(ctx context.Context, id int64) error                // delete by id; no-match is silent success
}

// Usecase defines the interface for user operations.
type Usecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, in CreateUserRequest) ([]User, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) ([]User, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) error
}
