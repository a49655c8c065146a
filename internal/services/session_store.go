package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/you/storefront/domain"
	"go.uber.org/zap"
)

// SessionStoreImpl implements domain.SessionStore
type SessionStoreImpl struct {
	identity domain.IdentityClient
	storage  domain.KeyValueStore
	bypass   domain.CredentialMatcher
	events   domain.EventLogger
	validate *validator.Validate
	log      *zap.Logger

	cell *stateCell[domain.Session]
}

// NewSessionStore creates a session store and hydrates it from storage.
// The persisted session is trusted as-is: no server re-validation and no expiry check.
func NewSessionStore(
	ctx context.Context,
	identity domain.IdentityClient,
	storage domain.KeyValueStore,
	bypass domain.CredentialMatcher,
	events domain.EventLogger,
	log *zap.Logger,
) *SessionStoreImpl {
	if log == nil {
		log = zap.NewNop()
	}

	s := &SessionStoreImpl{
		identity: identity,
		storage:  storage,
		bypass:   bypass,
		events:   events,
		validate: validator.New(),
		log:      log.Named("session"),
	}
	s.cell = newStateCell(s.hydrate(ctx), domain.Session.Clone)
	return s
}

func (s *SessionStoreImpl) hydrate(ctx context.Context) domain.Session {
	empty := domain.Session{Status: domain.StatusIdle}

	token, hasToken, err := s.storage.Get(ctx, domain.TokenKey)
	if err != nil {
		s.log.Warn("failed to read persisted token", zap.Error(err))
		return empty
	}
	raw, hasUser, err := s.storage.Get(ctx, domain.UserKey)
	if err != nil {
		s.log.Warn("failed to read persisted user", zap.Error(err))
		return empty
	}

	if !hasToken && !hasUser {
		return empty
	}
	if !hasToken || !hasUser || token == "" {
		s.log.Warn("ignoring persisted session", zap.Error(domain.ErrIncompleteSession),
			zap.Bool("has_token", hasToken), zap.Bool("has_user", hasUser))
		return empty
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("ignoring persisted session", zap.Error(fmt.Errorf("%w: %v", domain.ErrMalformedUser, err)))
		return empty
	}
	if err := s.validate.Struct(user); err != nil {
		s.log.Warn("ignoring persisted session", zap.Error(fmt.Errorf("%w: %v", domain.ErrMalformedUser, err)))
		return empty
	}

	s.emit(ctx, domain.NewStoreEvent(domain.HydrateEvent).WithUsername(user.Username))
	return domain.Session{User: &user, Token: token, Status: domain.StatusIdle}
}

// Snapshot implements domain.SessionStore
func (s *SessionStoreImpl) Snapshot() domain.Session {
	return s.cell.snapshot()
}

// Subscribe implements domain.SessionStore
func (s *SessionStoreImpl) Subscribe(fn func(domain.Session)) func() {
	return s.cell.subscribe(fn)
}

// Login implements domain.SessionStore.
// A failed remote call still succeeds when the credentials match the bypass pair.
func (s *SessionStoreImpl) Login(ctx context.Context, username, password string) (domain.Session, error) {
	s.cell.commit(func(st *domain.Session) {
		st.Status = domain.StatusLoading
		st.Error = ""
	})

	res, err := s.identity.Login(ctx, domain.Credentials{Username: username, Password: password})
	if err == nil && (res == nil || res.User == nil || res.Token == "") {
		err = domain.ErrMalformedUser
	}
	bypassed := false
	if err != nil && s.bypass != nil && s.bypass.Matches(username, password) {
		identity := s.bypass.Identity()
		res, bypassed = &identity, true
		s.log.Warn("remote login failed, using bypass identity", zap.String("username", username), zap.Error(err))
		err = nil
	}

	if err != nil {
		def := domain.DefaultNetworkMessage
		var remote *domain.RemoteError
		if errors.As(err, &remote) {
			def = domain.DefaultLoginMessage
		}
		msg := domain.MessageOr(err, def)

		snap := s.cell.commit(func(st *domain.Session) {
			st.Status = domain.StatusFailed
			st.Error = msg
		})
		s.log.Warn("login failed", zap.String("username", username), zap.Error(err))
		s.emit(ctx, domain.NewStoreEvent(domain.LoginFailureEvent).WithUsername(username).WithError(msg))
		return snap, fmt.Errorf("%w: %w", domain.ErrLoginFailed, err)
	}

	user := res.User.Clone()
	snap := s.cell.commitThen(func(st *domain.Session) {
		st.User = user
		st.Token = res.Token
		st.Status = domain.StatusSucceeded
		st.Error = ""
	}, func(domain.Session) {
		s.persist(ctx, user, res.Token)
	})

	eventType := domain.LoginEvent
	if bypassed {
		eventType = domain.LoginBypassEvent
	}
	s.emit(ctx, domain.NewStoreEvent(eventType).WithUsername(user.Username))
	s.log.Debug("login succeeded", zap.String("username", user.Username), zap.Bool("bypass", bypassed))
	return snap, nil
}

// Logout implements domain.SessionStore
func (s *SessionStoreImpl) Logout(ctx context.Context) domain.Session {
	var username string
	snap := s.cell.commitThen(func(st *domain.Session) {
		if st.User != nil {
			username = st.User.Username
		}
		*st = domain.Session{Status: domain.StatusIdle}
	}, func(domain.Session) {
		if err := s.storage.Remove(ctx, domain.TokenKey); err != nil {
			s.log.Warn("failed to remove persisted token", zap.Error(err))
		}
		if err := s.storage.Remove(ctx, domain.UserKey); err != nil {
			s.log.Warn("failed to remove persisted user", zap.Error(err))
		}
	})

	s.emit(ctx, domain.NewStoreEvent(domain.LogoutEvent).WithUsername(username))
	return snap
}

// persist writes token and user as two independent entries.
// Called with the session writer lock held.
func (s *SessionStoreImpl) persist(ctx context.Context, user *domain.User, token string) {
	if err := s.storage.Set(ctx, domain.TokenKey, token); err != nil {
		s.log.Warn("failed to persist token", zap.Error(err))
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn("failed to marshal user", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, domain.UserKey, string(data)); err != nil {
		s.log.Warn("failed to persist user", zap.Error(err))
	}
}

func (s *SessionStoreImpl) emit(ctx context.Context, event *domain.StoreEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.LogEvent(ctx, event); err != nil {
		s.log.Warn("failed to log store event", zap.String("event_type", string(event.EventType)), zap.Error(err))
	}
}

var _ domain.SessionStore = (*SessionStoreImpl)(nil)
