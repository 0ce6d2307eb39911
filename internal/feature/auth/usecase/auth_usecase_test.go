package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

// mockUserRepository simulates user storage; every call is counted.
type mockUserRepository struct {
	CreateFunc      func(user *entity.User) error
	FindByEmailFunc func(email string) (*entity.User, error)
	FindByIDFunc    func(id uint) (*entity.User, error)

	calls int
}

func (m *mockUserRepository) Create(_ context.Context, user *entity.User) error {
	m.calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.calls++
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(_ context.Context, id uint) (*entity.User, error) {
	m.calls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, ErrUserNotFound
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuth(repo UserRepository) *authUsecase {
	uc := NewAuthUsecase(repo)
	uc.cost = bcrypt.MinCost
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validSignup() SignupInput {
	return SignupInput{
		Nombre:          "  Ana Pérez ",
		Email:           " Ana@Example.COM ",
		Password:        "password123",
		FechaNacimiento: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		var stored *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(user *entity.User) error {
				user.ID = 42
				stored = user
				return nil
			},
		}

		user, err := newTestAuth(repo).Signup(context.Background(), validSignup())

		require.NoError(t, err)
		assert.Equal(t, uint(42), user.ID)
		assert.Equal(t, "ana@example.com", stored.Email)
		assert.Equal(t, "Ana Pérez", stored.Nombre)
		assert.NotEqual(t, "password123", stored.Password, "password is not hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	})

	t.Run("email already registered", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(email string) (*entity.User, error) {
				return &entity.User{ID: 3, Email: email}, nil
			},
			CreateFunc: func(*entity.User) error {
				t.Fatal("Create must not be called")
				return nil
			},
		}

		_, err := newTestAuth(repo).Signup(context.Background(), validSignup())

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("lost race on unique index", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(*entity.User) error { return ErrEmailAlreadyExists },
		}

		_, err := newTestAuth(repo).Signup(context.Background(), validSignup())

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		repo := &mockUserRepository{
			CreateFunc: func(*entity.User) error { return expectedErr },
		}

		_, err := newTestAuth(repo).Signup(context.Background(), validSignup())

		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("email lookup failure", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByEmailFunc: func(string) (*entity.User, error) { return nil, errors.New("db down") },
		}

		_, err := newTestAuth(repo).Signup(context.Background(), validSignup())

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
	})
}

func TestAuthUsecase_Signup_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *SignupInput)
	}{
		{name: "blank nombre", mutate: func(in *SignupInput) { in.Nombre = "   " }},
		{name: "blank email", mutate: func(in *SignupInput) { in.Email = " " }},
		{name: "short password", mutate: func(in *SignupInput) { in.Password = "short" }},
		{name: "password over bcrypt limit", mutate: func(in *SignupInput) { in.Password = strings.Repeat("a", 73) }},
		{name: "multibyte password over bcrypt limit", mutate: func(in *SignupInput) { in.Password = strings.Repeat("ñ", 37) }},
		{name: "missing birth date", mutate: func(in *SignupInput) { in.FechaNacimiento = time.Time{} }},
		{name: "birth date in the future", mutate: func(in *SignupInput) { in.FechaNacimiento = fixedNow.AddDate(0, 0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{}
			in := validSignup()
			tt.mutate(&in)

			_, err := newTestAuth(repo).Signup(context.Background(), in)

			assert.True(t, apperror.IsValidation(err), "got %v", err)
			assert.Zero(t, repo.calls, "storage must not be touched")
		})
	}
}

func TestAuthUsecase_Signup_PasswordAtBcryptLimit(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(string) (*entity.User, error) { return nil, ErrUserNotFound },
		CreateFunc:      func(*entity.User) error { return nil },
	}
	in := validSignup()
	in.Password = strings.Repeat("a", 72)

	user, err := newTestAuth(repo).Signup(context.Background(), in)

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)))
}

func TestAuthUsecase_Login(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	testUser := &entity.User{ID: 1, Email: "test@example.com", Password: string(hashedPassword)}

	findTestUser := func(email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	tests := []struct {
		name     string
		email    string
		password string
		find     func(email string) (*entity.User, error)
		wantErr  error
	}{
		{name: "successful login", email: "test@example.com", password: "password123", find: findTestUser},
		{name: "email is normalized", email: "  TEST@example.com", password: "password123", find: findTestUser},
		{name: "user not found", email: "wrong@example.com", password: "password123", find: findTestUser, wantErr: ErrInvalidCredentials},
		{name: "incorrect password", email: "test@example.com", password: "wrong-password", find: findTestUser, wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestAuth(&mockUserRepository{FindByEmailFunc: tt.find})

			user, err := uc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testUser.ID, user.ID)
		})
	}

	t.Run("storage failure is not reported as bad credentials", func(t *testing.T) {
		uc := newTestAuth(&mockUserRepository{
			FindByEmailFunc: func(string) (*entity.User, error) { return nil, errors.New("db down") },
		})

		_, err := uc.Login(context.Background(), "test@example.com", "password123")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_GetProfile(t *testing.T) {
	repo := &mockUserRepository{
		FindByIDFunc: func(id uint) (*entity.User, error) {
			if id == 5 {
				return &entity.User{ID: 5, Nombre: "Ana"}, nil
			}
			return nil, ErrUserNotFound
		},
	}
	uc := newTestAuth(repo)
	ctx := context.Background()

	user, err := uc.GetProfile(ctx, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Nombre)

	_, err = uc.GetProfile(ctx, 5, 6)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.GetProfile(ctx, 9, 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
