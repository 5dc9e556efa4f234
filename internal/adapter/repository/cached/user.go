package cached

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"users-api/internal/adapter/cache"
	domain "users-api/internal/domain/user"
	"users-api/internal/usecase/user"
)

// listFlightKey collapses concurrent cache-miss list reads into one query.
const listFlightKey = "users:all"

// CachedUserRepository implements user.Repository with a read-through list
// cache. Mutations always hit the database first, then drop the cached list,
// so responses are identical to the uncached path.
type CachedUserRepository struct {
	dbRepo user.Repository
	cache  cache.ListCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(dbRepo user.Repository, cache cache.ListCache, log *zap.Logger) user.Repository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// List retrieves the user list using a cache-aside pattern.
func (r *CachedUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if r.cache != nil {
		cachedUsers, err := r.cache.Get(ctx)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Error(err))
		} else if cachedUsers != nil {
			return cachedUsers, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent stampede
	result, err, _ := r.group.Do(listFlightKey, func() (any, error) {
		// Another request may have populated the cache while we waited
		if r.cache != nil {
			cachedUsers, err := r.cache.Get(ctx)
			if err == nil && cachedUsers != nil {
				return cachedUsers, nil
			}
		}

		users, err := r.dbRepo.List(ctx)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, users); err != nil {
				r.log.Warn("failed to cache user list", zap.Error(err))
			}
		}

		return users, nil
	})

	if err != nil {
		return nil, err
	}

	return result.([]domain.User), nil
}

// Insert adds the user in the DB and invalidates the cached list.
func (r *CachedUserRepository) Insert(ctx context.Context, u *domain.User) (int64, error) {
	id, err := r.dbRepo.Insert(ctx, u)
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx)
	return id, nil
}

// Update updates the user in the DB and invalidates the cached list.
func (r *CachedUserRepository) Update(ctx context.Context, u *domain.User) error {
	if err := r.dbRepo.Update(ctx, u); err != nil {
		return err
	}

	r.invalidate(ctx)
	return nil
}

// Delete deletes the user from the DB and invalidates the cached list.
func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx)
	return nil
}

func (r *CachedUserRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Invalidate(ctx); err != nil {
		r.log.Warn("failed to invalidate user list cache", zap.Error(err))
	}
}
