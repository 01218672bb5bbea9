package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbcrypt "golang.org/x/crypto/bcrypt"

	"github.com/surfconnect/backend/pkg/auth"
	"github.com/surfconnect/backend/pkg/security/bcrypt"
	"github.com/surfconnect/backend/pkg/security/jwt"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]auth.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]auth.User{}}
}

func (r *memRepo) Create(ctx context.Context, user auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return auth.ErrUserAlreadyExists
	}
	r.users[key] = user
	return nil
}

func (r *memRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func newService(repo *memRepo) (auth.AuthUseCase, *jwt.Codec) {
	codec := jwt.NewCodec("surfconnect-test",
		jwt.DomainConfig{Secret: "access-secret", TTL: time.Hour},
		jwt.DomainConfig{Secret: "refresh-secret", TTL: 7 * 24 * time.Hour},
	)
	return auth.NewAuthService(repo, bcrypt.NewHasher(xbcrypt.MinCost), codec), codec
}

func register(t *testing.T, svc auth.AuthUseCase, email, password string) {
	t.Helper()
	err := svc.Register(context.Background(), auth.RegisterInput{
		Username:       "alice",
		Email:          email,
		Password:       password,
		SkillLevel:     "intermediate",
		FavoritePlaces: []string{"Nazare", "Ericeira"},
	})
	require.NoError(t, err)
}

func TestRegister_PersistsHashedPassword(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newService(repo)

	register(t, svc, "a@x.com", "pw123")

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw123", user.PasswordHash)
	assert.NoError(t, xbcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newService(repo)

	register(t, svc, "a@x.com", "pw123")

	err := svc.Register(context.Background(), auth.RegisterInput{
		Username: "bob", Email: "A@X.com", Password: "other",
	})
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
	assert.Equal(t, 1, repo.count())
}

func TestRegister_MissingInput(t *testing.T) {
	svc, _ := newService(newMemRepo())

	err := svc.Register(context.Background(), auth.RegisterInput{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	err = svc.Register(context.Background(), auth.RegisterInput{Email: "a@x.com", Password: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	repo := newMemRepo()
	svc, codec := newService(repo)
	register(t, svc, "a@x.com", "pw123")

	_, err := svc.Login(context.Background(), "nobody@x.com", "pw123")
	assert.ErrorIs(t, err, auth.ErrNotFound)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	result, err := svc.Login(context.Background(), "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "intermediate", result.User.SkillLevel)
	assert.Equal(t, []string{"Nazare", "Ericeira"}, result.User.FavoritePlaces)

	// both tokens carry the user's identity in their own domain
	accessClaims, err := codec.Verify(result.Tokens.AccessToken, jwt.DomainAccess)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), accessClaims.Subject)
	assert.Equal(t, "a@x.com", accessClaims.Email)

	refreshClaims, err := codec.Verify(result.Tokens.RefreshToken, jwt.DomainRefresh)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), refreshClaims.Subject)
}

func TestRefresh(t *testing.T) {
	repo := newMemRepo()
	svc, codec := newService(repo)
	register(t, svc, "a@x.com", "pw123")

	result, err := svc.Login(context.Background(), "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrMissingRefreshToken)

	// an access token must never redeem as a refresh token
	_, err = svc.Refresh(context.Background(), result.Tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)

	_, err = svc.Refresh(context.Background(), "tampered.refresh.token")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)

	pair, err := svc.Refresh(context.Background(), result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, result.Tokens.AccessToken, pair.AccessToken)
	assert.NotEqual(t, result.Tokens.RefreshToken, pair.RefreshToken)

	claims, err := codec.Verify(pair.RefreshToken, jwt.DomainRefresh)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), claims.Subject)

	// no revocation: the redeemed refresh token stays valid until expiry
	_, err = svc.Refresh(context.Background(), result.Tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestLogout_IsAcknowledgementOnly(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newService(repo)
	register(t, svc, "a@x.com", "pw123")

	result, err := svc.Login(context.Background(), "a@x.com", "pw123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	// tokens outlive logout by design
	_, err = svc.Refresh(context.Background(), result.Tokens.RefreshToken)
	assert.NoError(t, err)
}
