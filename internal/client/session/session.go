// Package session owns the authenticated identity. The session is persisted
// in the local metadata table, with the token sealed by the device key, and
// survives restarts until Logout.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/lawlink/internal/client/localdb"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lawlink/internal/cryptox"
	"github.com/dmitrijs2005/lawlink/internal/dbx"
	"github.com/dmitrijs2005/lawlink/internal/logging"
)

var ErrNoToken = errors.New("server response has no token")

// AuthAPI is the subset of the gateway used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, cred models.Credentials) (models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)
}

// Manager implements client.TokenSource and forms.Authenticator.
type Manager struct {
	api    AuthAPI
	db     *sql.DB
	store  metadata.Repository
	key    []byte
	logger logging.Logger

	mu      sync.Mutex
	loaded  bool
	current *models.Session
}

// NewManager persists the session through repos.Metadata; saves run in a
// transaction on repos.DB.
func NewManager(api AuthAPI, repos *localdb.Repositories, key []byte, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Manager{api: api, db: repos.DB, store: repos.Metadata, key: key, logger: logger}
}

func (m *Manager) Login(ctx context.Context, cred models.Credentials) (models.Session, error) {
	resp, err := m.api.Login(ctx, cred)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	return m.establish(ctx, resp, cred.Role)
}

func (m *Manager) Register(ctx context.Context, reg models.Registration) (models.Session, error) {
	resp, err := m.api.Register(ctx, reg)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}
	return m.establish(ctx, resp, reg.Role)
}

func (m *Manager) establish(ctx context.Context, resp models.AuthResponse, requested models.Role) (models.Session, error) {
	if resp.Token == "" {
		return models.Session{}, ErrNoToken
	}

	s := models.Session{Token: resp.Token, UserID: resp.UserID, Role: resp.Role}
	if s.UserID == "" || s.Role == "" {
		c, err := parseClaims(resp.Token)
		if err != nil {
			m.logger.Debug(ctx, "token claims unreadable", "error", err)
		} else {
			if s.UserID == "" {
				s.UserID = c.userID()
			}
			if s.Role == "" {
				s.Role = c.role()
			}
		}
	}
	if s.Role == "" {
		s.Role = requested
	}

	if err := m.save(ctx, s); err != nil {
		return models.Session{}, fmt.Errorf("saving session: %w", err)
	}

	m.mu.Lock()
	m.current = &s
	m.loaded = true
	m.mu.Unlock()

	m.logger.Info(ctx, "session started", "user_id", s.UserID, "role", s.Role)
	return s, nil
}

func (m *Manager) save(ctx context.Context, s models.Session) error {
	sealed, err := cryptox.Seal(m.key, []byte(s.Token))
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeySessionToken, sealed); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeySessionRole, []byte(s.Role)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeySessionUser, []byte(s.UserID))
	})
}

// Logout forgets the session both in memory and on disk.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, metadata.SessionKeys...); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.current = nil
	m.loaded = true
	return nil
}

// Current returns the active session, or nil when logged out. The first
// call restores a session persisted by an earlier run.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		s, err := m.load(ctx)
		if err != nil {
			return nil, err
		}
		m.current = s
		m.loaded = true
	}
	if m.current == nil {
		return nil, nil
	}
	s := *m.current
	return &s, nil
}

func (m *Manager) load(ctx context.Context) (*models.Session, error) {
	repo := m.store

	sealed, err := repo.Get(ctx, metadata.KeySessionToken)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if sealed == nil {
		return nil, nil
	}

	token, err := cryptox.Open(m.key, sealed)
	if err != nil {
		// Sealed with another device key; start over.
		m.logger.Warn(ctx, "stored session unreadable, discarding", "error", err)
		if err := repo.Delete(ctx, metadata.SessionKeys...); err != nil {
			return nil, fmt.Errorf("discarding session: %w", err)
		}
		return nil, nil
	}

	role, err := repo.Get(ctx, metadata.KeySessionRole)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	user, err := repo.Get(ctx, metadata.KeySessionUser)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	return &models.Session{Token: string(token), Role: models.Role(role), UserID: models.ID(user)}, nil
}

// Token returns the bearer token, or "" when logged out.
func (m *Manager) Token(ctx context.Context) (string, error) {
	s, err := m.Current(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.Token, nil
}
