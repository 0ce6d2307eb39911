package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

const (
	// minPasswordLength is the shortest accepted password.
	minPasswordLength = 8
	// maxPasswordBytes is the longest input bcrypt hashes.
	maxPasswordBytes = 72

	// dummyHash is compared against when the email is unknown so that Login
	// takes the same time whether or not the user exists.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts user persistence.
// Following Go convention: the interface is defined here, by its consumer.
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Nombre          string
	Email           string
	Password        string
	FechaNacimiento time.Time
}

type authUsecase struct {
	users UserRepository
	cost  int
	now   func() time.Time
}

// NewAuthUsecase creates the auth usecase.
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{
		users: users,
		cost:  bcrypt.DefaultCost,
		now:   time.Now,
	}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.Validation("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return apperror.Validation("password must be at most %d bytes long", maxPasswordBytes)
	}
	return nil
}

func (u *authUsecase) validateSignup(in SignupInput) error {
	if strings.TrimSpace(in.Nombre) == "" {
		return apperror.Validation("nombre is required")
	}
	if NormalizeEmail(in.Email) == "" {
		return apperror.Validation("email is required")
	}
	if err := validatePassword(in.Password); err != nil {
		return err
	}
	if in.FechaNacimiento.IsZero() {
		return apperror.Validation("fechaNacimiento is required")
	}
	if in.FechaNacimiento.After(u.now()) {
		return apperror.Validation("fechaNacimiento cannot be in the future")
	}
	return nil
}

// Signup registers a user with a bcrypt-hashed password and returns it.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if err := u.validateSignup(in); err != nil {
		return nil, err
	}
	email := NormalizeEmail(in.Email)

	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Nombre:          strings.TrimSpace(in.Nombre),
		Email:           email,
		Password:        string(hashed),
		FechaNacimiento: in.FechaNacimiento,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the user. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	// Always compare, even without a user.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetProfile returns user id as seen by the session user requesterID.
func (u *authUsecase) GetProfile(ctx context.Context, requesterID, id uint) (*entity.User, error) {
	if requesterID != id {
		return nil, ErrForbidden
	}
	return u.users.FindByID(ctx, id)
}
