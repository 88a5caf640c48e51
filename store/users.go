// users.go - Credential store: registration and password login

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fruitpie-jobboard/auth"
	"fruitpie-jobboard/domain"
	"fruitpie-jobboard/models"

	"gorm.io/gorm"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// RegisterInput is what a new account is created from.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	IsPoster bool
	IsSeeker bool
}

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates an account and returns it. Username and email uniqueness
// is left to the database's unique indexes.
//
// A registrant who picks neither role becomes a seeker; the caller is not told.
func (s *UserStore) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.NewBadRequestError("Username and email are required")
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, domain.NewBadRequestError(fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	if len(in.Password) > auth.MaxPasswordBytes {
		return nil, domain.NewBadRequestError(fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes))
	}

	hash, err := auth.HashPassword(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, domain.NewBadRequestError(fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes))
	}
	if err != nil {
		return nil, domain.NewInternalError("Could not hash password", err)
	}

	user := models.User{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hash,
		IsPoster:       in.IsPoster,
		IsSeeker:       in.IsSeeker,
	}
	if !user.IsPoster && !user.IsSeeker {
		user.IsSeeker = true
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.NewConflictError("Username or email already registered")
	}
	if err != nil {
		return nil, domain.NewInternalError("Could not create user", err)
	}
	return &user, nil
}

// Authenticate returns the user when password matches the stored hash.
// Unknown users and wrong passwords fail the same way.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(password, user.HashedPassword) {
		return nil, domain.NewUnauthorizedError("Incorrect username or password")
	}
	return user, nil
}

// GetByUsername returns (nil, nil) when no such user exists.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewInternalError("Could not load user", err)
	}
	return &user, nil
}
