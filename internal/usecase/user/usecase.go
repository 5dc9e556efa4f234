package user

import (
	"context"

	"go.uber.org/zap"

	domain "users-api/internal/domain/user"
)

// usecase implements Usecase on top of a Repository.
//
// The mutating operations run two independent autocommit statements: the
// write, then a full-table read for the response. They are intentionally
// not wrapped in one transaction, so a concurrent mutation can already be
// visible in the returned list.
type usecase struct {
	repo Repository
	log  *zap.Logger
}

// New creates a new user Usecase backed by the given repository.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log}
}

// ListUsers returns every user currently in the store.
func (uc *usecase) ListUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return toDTOs(domainUsers), nil
}

// CreateUser inserts a new user, then returns the full current list.
// A list failure after a committed insert still surfaces as an error; the
// insert is not rolled back.
func (uc *usecase) CreateUser(ctx context.Context, in CreateUserRequest) ([]User, error) {
	uc.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if _, err := uc.repo.Insert(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	}); err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return uc.ListUsers(ctx)
}

// UpdateUser overwrites the row matching the id, then returns the full
// current list. An unmatched id is not an error: the list comes back
// unchanged.
func (uc *usecase) UpdateUser(ctx context.Context, in UpdateUserRequest) ([]User, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	if err := uc.repo.Update(ctx, &domain.User{
		ID:    in.ID,
		Name:  in.Name,
		Email: in.Email,
	}); err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return uc.ListUsers(ctx)
}

// DeleteUser removes the row matching the id. An unmatched id is reported
// as success.
func (uc *usecase) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	uc.log.Info("deleting user", zap.Int64("id", in.ID))

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}

	return nil
}

func toDTOs(domainUsers []domain.User) []User {
	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:    du.ID,
			Name:  du.Name,
			Email: du.Email,
		}
	}
	return users
}
