package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"users-api/internal/domain/user"
	apperrors "users-api/pkg/errors"
)

func setupTestRepo(t *testing.T) (*UserRepoPG, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	return NewUserRepoPG(db, zaptest.NewLogger(t)), db
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Running the schema initialization repeatedly must not error
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestUserRepoPG_InsertAndList(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	id, err := repo.Insert(ctx, &user.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := repo.Insert(ctx, &user.User{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)
	assert.NotEqual(t, id, id2, "ids must be unique")

	users, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ann", users[0].Name)
	assert.Equal(t, "ann@x.com", users[0].Email)
}

func TestUserRepoPG_Update(t *testing.T) {
	t.Run("existing row is overwritten, id preserved", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		ctx := context.Background()

		id, err := repo.Insert(ctx, &user.User{Name: "Ann", Email: "ann@x.com"})
		require.NoError(t, err)
		_, err = repo.Insert(ctx, &user.User{Name: "Bob", Email: "bob@x.com"})
		require.NoError(t, err)

		err = repo.Update(ctx, &user.User{ID: id, Name: "Ann B", Email: "annb@x.com"})
		require.NoError(t, err)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, user.User{ID: id, Name: "Ann B", Email: "annb@x.com"}, users[0])
		assert.Equal(t, "Bob", users[1].Name, "other rows must not change")
	})

	t.Run("non-existent id reports success and changes nothing", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		ctx := context.Background()

		_, err := repo.Insert(ctx, &user.User{Name: "Ann", Email: "ann@x.com"})
		require.NoError(t, err)

		err = repo.Update(ctx, &user.User{ID: 999, Name: "Ghost", Email: "ghost@x.com"})
		require.NoError(t, err)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Ann", users[0].Name)
	})

	t.Run("empty fields are stored as-is", func(t *testing.T) {
		// No validation layer exists; empty strings satisfy NOT NULL
		repo, _ := setupTestRepo(t)
		ctx := context.Background()

		id, err := repo.Insert(ctx, &user.User{Name: "Ann", Email: "ann@x.com"})
		require.NoError(t, err)

		err = repo.Update(ctx, &user.User{ID: id, Name: "", Email: ""})
		require.NoError(t, err)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "", users[0].Name)
		assert.Equal(t, "", users[0].Email)
	})
}

func TestUserRepoPG_Delete(t *testing.T) {
	t.Run("existing row is removed", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		ctx := context.Background()

		id, err := repo.Insert(ctx, &user.User{Name: "Ann", Email: "ann@x.com"})
		require.NoError(t, err)
		id2, err := repo.Insert(ctx, &user.User{Name: "Bob", Email: "bob@x.com"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, id))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, id2, users[0].ID)
	})

	t.Run("non-existent id reports success", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Delete(ctx, 42))
	})
}

func TestUserRepoPG_ParameterBinding(t *testing.T) {
	// Hostile values must be stored verbatim as data, never executed as SQL.
	repo, db := setupTestRepo(t)
	ctx := context.Background()

	const probe = `'; DROP TABLE users; --`

	id, err := repo.Insert(ctx, &user.User{Name: probe, Email: probe})
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, probe, users[0].Name)
	assert.Equal(t, probe, users[0].Email)

	// Update and delete go through the same binding path
	require.NoError(t, repo.Update(ctx, &user.User{ID: id, Name: probe, Email: "x' OR '1'='1"}))
	require.NoError(t, repo.Delete(ctx, id))

	// Schema must have survived every statement
	assert.True(t, db.Migrator().HasTable(&UserSchema{}))
}

func TestUserRepoPG_List_StoreError(t *testing.T) {
	repo, db := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, db.Migrator().DropTable(&UserSchema{}))

	users, err := repo.List(ctx)
	require.Error(t, err)
	assert.Nil(t, users)
	assert.True(t, apperrors.IsStoreError(err))
}
