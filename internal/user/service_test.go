package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tableside/locations-backend/internal/auth"
)

type stubRepository struct {
	byUsername map[string]*User
	byID       map[int]*User
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		byUsername: make(map[string]*User),
		byID:       make(map[int]*User),
	}
}

func (r *stubRepository) add(u *User) {
	r.byUsername[u.Username] = u
	r.byID[u.ID] = u
}

func (r *stubRepository) GetByUsername(_ context.Context, username string) (*User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (r *stubRepository) GetByID(_ context.Context, id int) (*User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (r *stubRepository) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubRepository) Create(_ context.Context, u *User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return ErrUsernameTaken
	}
	u.ID = len(r.byID) + 1
	r.add(u)
	return nil
}

func seedTestUser(t *testing.T, repo *stubRepository, id int, username, password string, roles ...string) *User {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	u := &User{ID: id, Username: username, PasswordHash: hash, Roles: roles}
	repo.add(u)
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubRepository()
	seedTestUser(t, repo, 1, "galkadi", "Password123!", RoleAdmin)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost))

	u, err := svc.Login(context.Background(), "galkadi", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "galkadi", u.Username)
	assert.Contains(t, u.Roles, RoleAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubRepository()
	seedTestUser(t, repo, 1, "bob", "Password123!", RoleUser)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost))

	_, err := svc.Login(context.Background(), "bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost))

	_, err := svc.Login(context.Background(), "nobody", "Password123!")
	// Unknown username and wrong password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEmptyCredentials(t *testing.T) {
	repo := newStubRepository()
	seedTestUser(t, repo, 1, "bob", "Password123!", RoleUser)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost))

	_, err := svc.Login(context.Background(), "", "Password123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "bob", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByID(t *testing.T) {
	repo := newStubRepository()
	seedTestUser(t, repo, 3, "sue", "Password123!", RoleUser)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost))

	u, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "sue", u.Username)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrincipalRoles(t *testing.T) {
	admin := &User{ID: 1, Username: "galkadi", Roles: []string{RoleAdmin}}
	regular := &User{ID: 2, Username: "bob", Roles: []string{RoleUser}}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.AsPrincipal().IsAdmin())
	assert.False(t, regular.IsAdmin())
	assert.False(t, regular.AsPrincipal().IsAdmin())
	assert.True(t, regular.HasRole(RoleUser))
}
