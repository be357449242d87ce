package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark-service/internal/domain/user"
	pkgerrors "bookmark-service/pkg/errors"
)

// UserRepoPG implements the user Repository interface using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Email        string `gorm:"not null;unique"`          // User's unique email address
	PasswordHash string `gorm:"not null"`                 // Bcrypt hash, never leaves the store layer unmasked
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// isDuplicateKey reports whether err is a uniqueness-constraint violation.
// GORM translates driver errors when TranslateError is enabled; the string
// checks cover postgres and sqlite drivers that predate translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// Create inserts a new user into the database.
// A duplicate email is reported as an AlreadyExistsError on the email field.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isDuplicateKey(err) {
			r.log.Warn("duplicate email on user create", zap.String("email", u.Email))
			return nil, pkgerrors.NewAlreadyExistsError("email", "email already taken")
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// Update applies non-zero profile fields to an existing user.
// An email collision with another user is reported as AlreadyExistsError.
func (r *UserRepoPG) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	updates := map[string]any{}
	if u.Email != "" {
		updates["email"] = u.Email
	}
	if u.FirstName != "" {
		updates["first_name"] = u.FirstName
	}
	if u.LastName != "" {
		updates["last_name"] = u.LastName
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", u.ID).Updates(updates)
		if res.Error != nil {
			if isDuplicateKey(res.Error) {
				r.log.Warn("duplicate email on user update", zap.Int64("id", u.ID), zap.String("email", u.Email))
				return nil, pkgerrors.NewAlreadyExistsError("email", "email already taken")
			}
			r.log.Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", u.ID))
			return nil, fmt.Errorf("failed to update user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			r.log.Warn("user not found on update", zap.Int64("id", u.ID))
			return nil, pkgerrors.NewNotFoundError("user", "")
		}
	}

	r.log.Info("user updated in db", zap.Int64("id", u.ID))
	return r.GetByID(ctx, u.ID)
}

// GetByID retrieves a user from the database by their unique ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("user", "")
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// GetByEmail retrieves a user from the database by their email address.
// Returns nil without an error when no user matches.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toDomain(), nil
}

func (m *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
