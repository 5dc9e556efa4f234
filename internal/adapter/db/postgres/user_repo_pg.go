package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"users-api/internal/domain/user"
	apperrors "users-api/pkg/errors"
)

// UserRepoPG is the database gateway for the users table. Every statement
// it issues is parameterized; values are never interpolated into SQL text.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"` // store-assigned identifier
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Migrate ensures the users table exists. It is idempotent and safe to run
// on every startup, including concurrent ones.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserSchema{}); err != nil {
		return apperrors.NewStartupError("migrate", err)
	}
	return nil
}

// List retrieves every user in the table. No ordering is imposed beyond
// whatever the store returns.
func (r *UserRepoPG) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, apperrors.NewStoreError("list users", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = user.User{
			ID:    model.ID,
			Name:  model.Name,
			Email: model.Email,
		}
	}

	return users, nil
}

// Insert adds a new user and returns the store-assigned id.
func (r *UserRepoPG) Insert(ctx context.Context, u *user.User) (int64, error) {
	model := UserSchema{
		Name:  u.Name,
		Email: u.Email,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to insert user into db", zap.Error(err), zap.String("email", u.Email))
		return 0, apperrors.NewStoreError("insert user", err)
	}

	r.log.Info("user inserted", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update overwrites the name and email of the row matching id. A non-matching
// id is not an error: the statement succeeds and affects zero rows.
func (r *UserRepoPG) Update(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).
		Model(&UserSchema{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{"name": u.Name, "email": u.Email})
	if res.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", u.ID))
		return apperrors.NewStoreError("update user", res.Error)
	}

	r.log.Info("user update executed", zap.Int64("id", u.ID), zap.Int64("rows_affected", res.RowsAffected))
	return nil
}

// Delete removes the row matching id. Like Update, a non-matching id is
// reported as success.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete user from db", zap.Error(res.Error), zap.Int64("id", id))
		return apperrors.NewStoreError("delete user", res.Error)
	}

	r.log.Info("user delete executed", zap.Int64("id", id), zap.Int64("rows_affected", res.RowsAffected))
	return nil
}
