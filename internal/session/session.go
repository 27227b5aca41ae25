// Package session owns the client-side authentication state: the current
// user, the lifecycle transitions (startup check, login, register,
// logout), and the navigation events those transitions produce. The
// Manager is the single writer of session state; everything else observes
// it through snapshots.
package session

import (
	"context"
	"sync"

	"github.com/fec-analyzer/cli/internal/api"
	"github.com/fec-analyzer/cli/internal/credentials"
	"github.com/fec-analyzer/cli/internal/logging"
	"github.com/fec-analyzer/cli/internal/models"
)

// State is the authentication state of the session.
type State int

const (
	// Uninitialized means the startup check has not run yet.
	Uninitialized State = iota
	// Checking means the startup verification is in flight.
	Checking
	// Authenticated means a verified user is attached to the session.
	Authenticated
	// Unauthenticated means no valid credential exists.
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Navigation is a routing event emitted by a completed transition. The
// state machine never navigates itself; a routing layer consumes these.
type Navigation int

const (
	// NavigateHome fires after a successful login or register.
	NavigateHome Navigation = iota + 1
	// NavigateLogin fires after a logout.
	NavigateLogin
)

func (n Navigation) String() string {
	switch n {
	case NavigateHome:
		return "home"
	case NavigateLogin:
		return "login"
	default:
		return "unknown"
	}
}

// Navigator receives navigation events. A nil Navigator is valid; events
// are then dropped, which keeps the core testable without any UI wiring.
type Navigator func(Navigation)

// Session is an immutable snapshot of the current state. User is non-nil
// exactly when State is Authenticated.
type Session struct {
	User    *models.User
	State   State
	Loading bool
}

// IsAuthenticated reports whether a verified user is attached.
func (s Session) IsAuthenticated() bool { return s.State == Authenticated }

// IsLoading reports whether the startup check or a transition is in
// flight.
func (s Session) IsLoading() bool { return s.Loading || s.State == Checking }

// Fallback messages shown when the backend supplies no detail string.
// They match the backend's language.
const (
	loginFallback    = "Email ou mot de passe incorrect"
	registerFallback = "Une erreur est survenue lors de l'inscription"
)

// Error is a failed transition. Error() returns the user-facing message
// (the backend detail when one was provided, the operation fallback
// otherwise); Unwrap exposes the underlying cause for classification.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// Manager drives the session lifecycle. Mutating operations (Check,
// Login, Register, Logout) are serialized: a second call queues behind
// the one in flight, so two transitions can never interleave their
// writes.
type Manager struct {
	auth     api.AuthAPI
	store    credentials.Store
	log      logging.Logger
	navigate Navigator

	opMu      sync.Mutex // serializes mutating operations
	checkOnce sync.Once

	mu  sync.RWMutex // guards cur
	cur Session
}

// NewManager builds a Manager in the Uninitialized state. navigate may be
// nil.
func NewManager(auth api.AuthAPI, store credentials.Store, log logging.Logger, navigate Navigator) *Manager {
	return &Manager{
		auth:     auth,
		store:    store,
		log:      log,
		navigate: navigate,
		cur:      Session{State: Uninitialized},
	}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

func (m *Manager) setState(s Session) {
	m.mu.Lock()
	m.cur = s
	m.mu.Unlock()
}

func (m *Manager) emit(n Navigation) {
	if m.navigate != nil {
		m.navigate(n)
	}
}

// Check runs the startup verification: read the credential; if absent,
// settle Unauthenticated without touching the network; if present,
// verify it against /auth/me and either adopt the user or delete the
// stale token. It runs at most once per Manager; later calls return
// immediately with the already-settled state.
func (m *Manager) Check(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.checkOnce.Do(func() {
		m.setState(Session{State: Checking})

		token, err := m.store.Get(ctx)
		if err != nil {
			// A failing read degrades to "no credential".
			m.log.Warn("credential read failed, treating as unauthenticated", "error", err)
			m.setState(Session{State: Unauthenticated})
			return
		}
		if token == "" {
			m.setState(Session{State: Unauthenticated})
			return
		}

		user, err := m.auth.GetCurrentUser(ctx)
		if err != nil {
			m.log.Info("stored credential rejected, clearing it", "error", err)
			if delErr := m.store.Delete(ctx); delErr != nil {
				m.log.Error("could not delete stale credential", "error", delErr)
			}
			m.setState(Session{State: Unauthenticated})
			return
		}

		m.setState(Session{User: user, State: Authenticated})
	})
}

// Login authenticates, persists the returned token, fetches the user and
// moves to Authenticated, emitting NavigateHome. On any failure the
// session settles Unauthenticated and the returned *Error carries the
// backend detail or the login fallback message. If the user fetch fails
// after the token was stored, the token is deleted so no stale credential
// outlives the failed login.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.login(ctx, req, loginFallback)
}

// login is the shared transition body; callers must hold opMu.
func (m *Manager) login(ctx context.Context, req models.LoginRequest, fallback string) error {
	prev := m.Current()
	m.setState(Session{User: prev.User, State: prev.State, Loading: true})

	token, err := m.auth.Login(ctx, req)
	if err != nil {
		m.setState(Session{State: Unauthenticated})
		return &Error{Message: api.Detail(err, fallback), Err: err}
	}

	if err := m.store.Set(ctx, token.AccessToken); err != nil {
		m.log.Error("could not persist credential", "error", err)
		m.setState(Session{State: Unauthenticated})
		return &Error{Message: fallback, Err: err}
	}

	user, err := m.auth.GetCurrentUser(ctx)
	if err != nil {
		// The token was just stored; remove it rather than leave a valid
		// credential behind with no session attached.
		if delErr := m.store.Delete(ctx); delErr != nil {
			m.log.Error("could not roll back credential", "error", delErr)
		}
		m.setState(Session{State: Unauthenticated})
		return &Error{Message: api.Detail(err, fallback), Err: err}
	}

	m.setState(Session{User: user, State: Authenticated})
	m.emit(NavigateHome)
	return nil
}

// Register creates the account, then performs the same login transition
// with the supplied credentials, so a successful signup lands the user
// directly in an authenticated session.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	prev := m.Current()
	m.setState(Session{User: prev.User, State: prev.State, Loading: true})

	if _, err := m.auth.Register(ctx, req); err != nil {
		m.setState(Session{User: prev.User, State: normalize(prev.State), Loading: false})
		return &Error{Message: api.Detail(err, registerFallback), Err: err}
	}

	return m.login(ctx, models.LoginRequest{Email: req.Email, Password: req.Password}, registerFallback)
}

// Logout clears the session unconditionally: the credential delete is
// best effort (a failure is logged, not surfaced), the in-memory user is
// always cleared, and NavigateLogin is emitted.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.store.Delete(ctx); err != nil {
		m.log.Error("could not delete credential on logout", "error", err)
	}
	m.setState(Session{State: Unauthenticated})
	m.emit(NavigateLogin)
}

// normalize maps pre-transition states back to a settled value; a failed
// transition must not leave the session looking like a check is running.
func normalize(s State) State {
	if s == Authenticated {
		return Authenticated
	}
	return Unauthenticated
}
