package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/localdb"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lawlink/internal/cryptox"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthAPI struct {
	resp    models.AuthResponse
	err     error
	lastReg models.Registration
}

func (f *fakeAuthAPI) Login(context.Context, models.Credentials) (models.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthAPI) Register(_ context.Context, r models.Registration) (models.AuthResponse, error) {
	f.lastReg = r
	return f.resp, f.err
}

func signed(t *testing.T, c jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

type fixture struct {
	repos *localdb.Repositories
	key   []byte
	path  string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lawlink.db")
	repos, err := localdb.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	key, err := cryptox.LoadOrCreateKey(filepath.Join(dir, "device.key"))
	require.NoError(t, err)
	return &fixture{repos: repos, key: key, path: path}
}

func TestManager_LoginPersistsSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	api := &fakeAuthAPI{resp: models.AuthResponse{Token: "tok-1", UserID: "42", Role: models.RoleClient}}
	m := NewManager(api, f.repos, f.key, nil)

	s, err := m.Login(ctx, models.Credentials{Email: "a@b.co", Password: "secret", Role: models.RoleClient})
	require.NoError(t, err)
	assert.Equal(t, models.Session{Token: "tok-1", UserID: "42", Role: models.RoleClient}, s)

	token, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	sealed, err := f.repos.Metadata.Get(ctx, metadata.KeySessionToken)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "tok-1")

	// A fresh manager on the same database restores the session.
	restored := NewManager(api, f.repos, f.key, nil)
	cur, err := restored.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, s, *cur)
}

func TestManager_LoginFailure(t *testing.T) {
	f := setup(t)
	api := &fakeAuthAPI{err: &client.APIError{Status: 401, Message: "Invalid credentials"}}
	m := NewManager(api, f.repos, f.key, nil)

	_, err := m.Login(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, client.ErrUnauthorized)

	msg, ok := client.ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Invalid credentials", msg)

	cur, err := m.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestManager_MissingToken(t *testing.T) {
	f := setup(t)
	m := NewManager(&fakeAuthAPI{resp: models.AuthResponse{UserID: "1"}}, f.repos, f.key, nil)

	_, err := m.Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestManager_ClaimsFillMissingFields(t *testing.T) {
	f := setup(t)
	token := signed(t, jwt.MapClaims{"userId": 7, "role": "lawyer"})
	m := NewManager(&fakeAuthAPI{resp: models.AuthResponse{Token: token}}, f.repos, f.key, nil)

	s, err := m.Login(context.Background(), models.Credentials{Role: models.RoleClient})
	require.NoError(t, err)
	assert.Equal(t, models.ID("7"), s.UserID)
	assert.Equal(t, models.RoleLawyer, s.Role)
}

func TestManager_RequestedRoleAsLastResort(t *testing.T) {
	f := setup(t)
	m := NewManager(&fakeAuthAPI{resp: models.AuthResponse{Token: "opaque", UserID: "3"}}, f.repos, f.key, nil)

	s, err := m.Register(context.Background(), models.Registration{Name: "Ann", Role: models.RoleLawyer})
	require.NoError(t, err)
	assert.Equal(t, models.RoleLawyer, s.Role)
	assert.Equal(t, models.ID("3"), s.UserID)
}

func TestManager_Logout(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	m := NewManager(&fakeAuthAPI{resp: models.AuthResponse{Token: "t", UserID: "1", Role: models.RoleClient}}, f.repos, f.key, nil)

	_, err := m.Login(ctx, models.Credentials{})
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	token, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	for _, k := range metadata.SessionKeys {
		v, err := f.repos.Metadata.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v, k)
	}
}

// failingStore wraps the real repository and fails deletes.
type failingStore struct {
	metadata.Repository
	err error
}

func (s failingStore) Delete(context.Context, ...string) error { return s.err }

func TestManager_LogoutStoreFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	repos := *f.repos
	repos.Metadata = failingStore{Repository: f.repos.Metadata, err: assert.AnError}
	m := NewManager(&fakeAuthAPI{resp: models.AuthResponse{Token: "t", UserID: "1", Role: models.RoleClient}}, &repos, f.key, nil)

	_, err := m.Login(ctx, models.Credentials{})
	require.NoError(t, err)

	err = m.Logout(ctx)
	require.ErrorIs(t, err, assert.AnError)
	require.ErrorContains(t, err, "logout")

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur, "session survives a failed logout")
}

func TestManager_ForeignKeyDiscardsSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	m := NewManager(&fakeAuthAPI{resp: models.AuthResponse{Token: "t", UserID: "1", Role: models.RoleClient}}, f.repos, f.key, nil)
	_, err := m.Login(ctx, models.Credentials{})
	require.NoError(t, err)

	other := make([]byte, cryptox.KeySize)
	cur, err := NewManager(nil, f.repos, other, nil).Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	sealed, err := f.repos.Metadata.Get(ctx, metadata.KeySessionToken)
	require.NoError(t, err)
	assert.Nil(t, sealed)
}

func TestParseClaims(t *testing.T) {
	c, err := parseClaims(signed(t, jwt.MapClaims{"sub": "abc", "userType": "client"}))
	require.NoError(t, err)
	assert.Equal(t, models.ID("abc"), c.userID())
	assert.Equal(t, models.RoleClient, c.role())

	_, err = parseClaims("not-a-jwt")
	assert.Error(t, err)
}
