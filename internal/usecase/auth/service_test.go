package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "liga/backend/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			stored := *u
			return &stored, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		stored := *u
		return &stored, nil
	}
	return nil, domain.ErrUserNotFound
}

type fakeTokenManager struct {
	generateErr error
}

func (f *fakeTokenManager) Generate(userID, username string) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "token-for-" + userID, nil
}

func (f *fakeTokenManager) Validate(token string) (string, error) {
	if id, ok := strings.CutPrefix(token, "token-for-"); ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func TestRegister_HashesPasswordAndSanitizes(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenManager{})

	user, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "returned user must not carry the hash")
	assert.NotEmpty(t, user.ID)

	stored := repo.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenManager{})

	u1, err := svc.Register(context.Background(), "alice", "same-password")
	require.NoError(t, err)
	u2, err := svc.Register(context.Background(), "bob", "same-password")
	require.NoError(t, err)

	h1 := repo.users[u1.ID].PasswordHash
	h2 := repo.users[u2.ID].PasswordHash
	assert.NotEqual(t, h1, h2, "salted hashes of the same password must differ")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h1), []byte("same-password")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h2), []byte("same-password")))
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeUserRepo(), &fakeTokenManager{})

	_, err := svc.Register(context.Background(), "  ", "pw")
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Register(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestRegister_StorageFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.createErr = errors.New("insert failed")
	svc := NewService(repo, &fakeTokenManager{})

	_, err := svc.Register(context.Background(), "alice", "secret1")
	assert.EqualError(t, err, "insert failed")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenManager{})

	registered, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	tok, user, err := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+registered.ID, tok)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_EnumerationResistance(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenManager{})

	_, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "nope"})
	_, _, unknownUser := svc.Login(context.Background(), domain.Credentials{Username: "mallory", Password: "nope"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser, "both failures must be indistinguishable")
}

func TestLogin_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeUserRepo(), &fakeTokenManager{})

	_, _, err := svc.Login(context.Background(), domain.Credentials{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenManager{})

	registered, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	user, err := svc.VerifyToken(context.Background(), "token-for-"+registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.VerifyToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	// Token signed for an account that no longer exists.
	_, err = svc.VerifyToken(context.Background(), "token-for-missing")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
