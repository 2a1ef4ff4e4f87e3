package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/adapter"
	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/store"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

type authService struct {
	creds   store.CredentialRepository
	state   store.StateStore
	gateway adapter.RemoteGateway
	logger  *logger.Logger

	pepper        string
	sessionTTL    time.Duration
	credentialTTL time.Duration
	probeTimeout  time.Duration

	mu        sync.Mutex
	session   *models.Session
	onExpired func()

	monitorStop chan struct{}
	monitorOnce sync.Once
}

// NewAuthService builds the auth service, restores a persisted session if
// one survives from a previous run, and arms the expiry monitor.
func NewAuthService(storages *store.Storages, gateway adapter.RemoteGateway, cfg config.AppConfig, log *logger.Logger) AuthService {
	a := &authService{
		creds:         storages.Credentials,
		state:         storages.State,
		gateway:       gateway,
		logger:        log,
		pepper:        cfg.App.PasswordPepper,
		sessionTTL:    cfg.Auth.SessionTTL,
		credentialTTL: cfg.Auth.CredentialTTL,
		probeTimeout:  cfg.Remote.LoginProbeTimeout,
		monitorStop:   make(chan struct{}),
	}

	a.restoreSession()

	go a.monitorSession(cfg.Auth.MonitorInterval)

	return a
}

// restoreSession loads the persisted session mirror, dropping it when it is
// already expired.
func (a *authService) restoreSession() {
	session, err := a.state.Session()
	if err != nil {
		if !errors.Is(err, store.ErrSessionStateNotFound) {
			a.logger.Err(err).
				Str("func", "authService.restoreSession").
				Msg("failed to read persisted session")
		}
		return
	}

	if session.Expired(time.Now()) {
		a.logger.Debug().
			Str("func", "authService.restoreSession").
			Msg("persisted session already expired, discarding")
		if clearErr := a.state.ClearSession(); clearErr != nil {
			a.logger.Err(clearErr).
				Str("func", "authService.restoreSession").
				Msg("failed to clear expired session state")
		}
		return
	}

	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	a.gateway.SetSessionID(session.Token)

	a.logger.Info().
		Str("func", "authService.restoreSession").
		Str("email", session.User.Email).
		Msg("session restored from previous run")
}

func (a *authService) Login(ctx context.Context, email, password string) models.LoginResult {
	online := a.probeForLogin(ctx)

	if online {
		result, err := a.remoteLogin(ctx, email, password)
		if err == nil {
			return result
		}
		a.logger.Warn().
			Str("func", "authService.Login").
			Err(err).
			Msg("remote authentication incomplete, trying local fallback")
	}

	return a.offlineLogin(ctx, email, password)
}

// probeForLogin is a cheap reachability pre-check with a tight timeout so a
// dead network does not stall the login flow.
func (a *authService) probeForLogin(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, a.probeTimeout)
	defer cancel()
	return a.gateway.Ping(probeCtx)
}

// remoteLogin runs the two remote authentication calls concurrently. The
// modern API call validates the identity and yields the user profile; the
// legacy form call yields the session id the submit endpoint expects. Both
// must succeed; a non-nil error tells the caller to fall back to the local
// credential check.
func (a *authService) remoteLogin(ctx context.Context, email, password string) (models.LoginResult, error) {
	var (
		wg        sync.WaitGroup
		user      models.User
		sessionID string
		modernErr error
		legacyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		user, modernErr = a.gateway.ModernLogin(ctx, email, password)
	}()
	go func() {
		defer wg.Done()
		sessionID, legacyErr = a.gateway.LegacyLogin(ctx, email, password)
	}()
	wg.Wait()

	if modernErr != nil || legacyErr != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrRemoteAuthFailed, errors.Join(modernErr, legacyErr))
	}

	hash := utils.HashPassword(password, a.pepper)
	if err := a.creds.UpsertCredential(ctx, email, hash, sessionID); err != nil {
		// The remote login still counts; only future offline logins suffer.
		a.logger.Err(err).
			Str("func", "authService.remoteLogin").
			Msg("failed to cache credential for offline use")
	}

	a.gateway.SetSessionID(sessionID)

	session := models.Session{
		User:      user,
		Token:     sessionID,
		ExpiresAt: time.Now().Add(a.sessionTTL),
	}
	a.setSession(session)

	a.logger.Info().
		Str("func", "authService.remoteLogin").
		Str("email", email).
		Msg("remote login successful")

	return models.LoginResult{
		Success: true,
		Message: "logged in",
		User:    &user,
	}, nil
}

// offlineLogin validates the entered password against the cached credential
// hash. The by-email lookup falls back to the most recent credential so a
// single-user device still works when the email was typed differently.
func (a *authService) offlineLogin(ctx context.Context, email, password string) models.LoginResult {
	cred, err := a.creds.GetCredential(ctx, email)
	if errors.Is(err, store.ErrCredentialNotFound) {
		cred, err = a.creds.GetMostRecentCredential(ctx)
	}
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.LoginResult{
			Success: false,
			Message: ErrNoOfflineCredentials.Error(),
			Offline: true,
		}
	}
	if err != nil {
		a.logger.Err(err).
			Str("func", "authService.offlineLogin").
			Msg("failed to read cached credential")
		return models.LoginResult{
			Success: false,
			Message: "failed to read cached credentials",
			Offline: true,
		}
	}

	if time.Since(cred.LastLogin) > a.credentialTTL {
		return models.LoginResult{
			Success: false,
			Message: ErrCredentialsExpired.Error(),
			Offline: true,
		}
	}

	if !utils.VerifyPassword(password, a.pepper, cred.PasswordHash) {
		return models.LoginResult{
			Success: false,
			Message: ErrIncorrectPassword.Error(),
			Offline: true,
		}
	}

	user := offlineUser(cred.Email)

	// The cached legacy session id may still be honored by the server, so
	// queued submits get a chance once connectivity returns.
	if cred.SessionID != "" {
		a.gateway.SetSessionID(cred.SessionID)
	}

	session := models.Session{
		User:      user,
		Token:     cred.SessionID,
		ExpiresAt: time.Now().Add(a.sessionTTL),
	}
	a.setSession(session)

	a.logger.Info().
		Str("func", "authService.offlineLogin").
		Str("email", cred.Email).
		Msg("offline login successful")

	return models.LoginResult{
		Success: true,
		Message: "logged in offline",
		User:    &user,
		Offline: true,
	}
}

// offlineUser synthesizes a user profile from a cached email. No remote
// profile is available offline, so the local part of the address stands in
// for the name.
func offlineUser(email string) models.User {
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return models.User{
		ID:    0,
		Name:  name,
		Email: email,
	}
}

func (a *authService) setSession(session models.Session) {
	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	if err := a.state.SaveSession(session); err != nil {
		a.logger.Err(err).
			Str("func", "authService.setSession").
			Msg("failed to persist session state")
	}
}

// Logout is the only path that clears cached credentials. Automatic expiry
// keeps them so the user can still log in offline afterwards.
func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()

	a.gateway.SetSessionID("")
	a.Close()

	if err := a.state.ClearSession(); err != nil {
		a.logger.Err(err).
			Str("func", "authService.Logout").
			Msg("failed to clear persisted session")
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	if err := a.creds.ClearCredentials(ctx); err != nil {
		a.logger.Err(err).
			Str("func", "authService.Logout").
			Msg("failed to clear cached credentials")
		return fmt.Errorf("failed to clear cached credentials: %w", err)
	}

	a.logger.Info().
		Str("func", "authService.Logout").
		Msg("logged out")

	return nil
}

func (a *authService) IsLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil && !a.session.Expired(time.Now())
}

func (a *authService) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return models.User{}, false
	}
	return a.session.User, true
}

func (a *authService) CanLoginOffline(ctx context.Context) (bool, error) {
	cred, err := a.creds.GetMostRecentCredential(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return time.Since(cred.LastLogin) <= a.credentialTTL, nil
}

func (a *authService) OnSessionExpired(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onExpired = fn
}

// monitorSession polls the session expiry on a ticker. On expiry it clears
// the session and its persisted mirror, leaves cached credentials in place,
// and fires the registered callback.
func (a *authService) monitorSession(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.monitorStop:
			return
		case <-ticker.C:
			a.checkExpiry()
		}
	}
}

func (a *authService) checkExpiry() {
	a.mu.Lock()
	if a.session == nil || !a.session.Expired(time.Now()) {
		a.mu.Unlock()
		return
	}
	a.session = nil
	fn := a.onExpired
	a.mu.Unlock()

	a.gateway.SetSessionID("")

	if err := a.state.ClearSession(); err != nil {
		a.logger.Err(err).
			Str("func", "authService.checkExpiry").
			Msg("failed to clear persisted session after expiry")
	}

	a.logger.Info().
		Str("func", "authService.checkExpiry").
		Msg("session expired")

	if fn != nil {
		fn()
	}
}

// Close disarms the expiry monitor. Safe to call more than once.
func (a *authService) Close() {
	a.monitorOnce.Do(func() {
		close(a.monitorStop)
	})
}
