package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type stubUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.users[user.Username]; exists {
		return repositories.ErrUserUsernameConflict
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int, hash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	return NewAuthService(repo, slog.Default()), repo
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "mister", Password: "panchina"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, models.Credentials{Username: "mister", Password: "panchina"})
	require.NoError(t, err)
	assert.Equal(t, "mister", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestLoginRejectsWrongPasswordAndUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "mister", Password: "panchina"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.Credentials{Username: "mister", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Login(ctx, models.Credentials{Username: "nobody", Password: "panchina"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "mister", Password: "x"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Username: "mister", Password: "y"})
	assert.ErrorIs(t, err, ErrAuthUsernameTaken)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "mister", Password: "panchina"})
	require.NoError(t, err)

	stored := repo.users["mister"]
	assert.NotEqual(t, "panchina", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("panchina")))
}

func TestDeleteUserRefusesAdmins(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "boss", Password: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, "boss")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestEnsureAdminUserCreatesAndRepairs(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "secret", "admin@club.local"))
	created := repo.users["admin"]
	require.NotNil(t, created)
	assert.Equal(t, models.RoleAdmin, created.Role)

	// Second run with the same password is a no-op.
	hashBefore := created.PasswordHash
	require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "secret", "admin@club.local"))
	assert.Equal(t, hashBefore, repo.users["admin"].PasswordHash)

	// A changed configured password realigns the stored hash.
	require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "rotated", "admin@club.local"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["admin"].PasswordHash), []byte("rotated")))
}
