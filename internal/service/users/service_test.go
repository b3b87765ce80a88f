package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	userRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/user"
	"github.com/m04kA/AGIA-RentalService/internal/service/users/models"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	created := *user
	created.ID = uuid.NewString()
	r.byEmail[created.Email] = &created
	return &created, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Login_ExistingUser(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"anna@example.com": {
			ID:    "user-1",
			Name:  "Anna",
			Email: "anna@example.com",
			Role:  domain.RoleAdmin,
		},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
	assert.Equal(t, string(domain.RoleAdmin), resp.Role)
}

func TestService_Login_CreatesGuest(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "guest@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "guest", resp.Name)
	assert.Equal(t, string(domain.RoleUser), resp.Role)
	assert.Equal(t, domain.DefaultAvatar, resp.Avatar)

	// Повторный вход возвращает того же пользователя
	again, err := svc.Login(context.Background(), &models.LoginRequest{Email: "guest@example.com"})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
}

func TestService_Login_NormalizesEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"anna@example.com": {ID: "user-1", Email: "anna@example.com", Role: domain.RoleUser},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "  Anna@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
}

func TestService_Login_InvalidEmail(t *testing.T) {
	svc := NewService(&fakeUserRepo{byEmail: map[string]*domain.User{}}, nopLogger{})

	for _, email := range []string{"", "not-an-email", "@example.com"} {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: email})
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}
