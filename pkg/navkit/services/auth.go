package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/meridianbank/navkit/pkg/navkit/internal"
	"github.com/meridianbank/navkit/pkg/navkit/keychain"
)

// Sentinel errors for the auth flows.
var (
	// ErrInvalidCredentials is returned when the provided credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrChallengeExpired is returned when an OTP is verified after its expiry.
	ErrChallengeExpired = errors.New("otp challenge expired")
	// ErrCodeMismatch is returned when the submitted OTP code is wrong.
	ErrCodeMismatch = errors.New("otp code mismatch")
	// ErrNoChallenge is returned when VerifyOTP runs without a pending challenge.
	ErrNoChallenge = errors.New("no pending otp challenge")
)

// OTPChallenge is a pending one-time-passcode challenge. ExpiresAt is
// authoritative: the service decides how long a code lives, and callers
// (e.g. the resend timer in the login view-model) must read it rather than
// assuming a fixed duration.
type OTPChallenge struct {
	ID        string
	Code      string // exposed because this is a mock; a real backend delivers it out of band
	ExpiresAt time.Time
}

// Auth is the mock authentication source. It publishes a boolean
// authenticated state (current value plus future transitions) that the app
// coordinator subscribes to once for its whole lifetime.
type Auth struct {
	authed *atomic.Bool

	mu        sync.Mutex
	subs      []chan bool
	users     map[string]string // username -> password, mock credential set
	challenge *OTPChallenge
	kc        *keychain.Store // optional; session token persistence

	otpTTL time.Duration
	now    func() time.Time
}

// NewAuth builds the mock auth service. kc may be nil, in which case the
// session token is not persisted.
func NewAuth(kc *keychain.Store) *Auth {
	return &Auth{
		authed: atomic.NewBool(false),
		users: map[string]string{
			"demo": "hunter2",
		},
		kc:     kc,
		otpTTL: 90 * time.Second,
		now:    time.Now,
	}
}

// Authenticated returns the current authenticated state.
func (a *Auth) Authenticated() bool {
	return a.authed.Load()
}

// Subscribe returns a channel delivering the current state immediately and
// every later transition. Subscribers must drain promptly; a slow subscriber
// misses intermediate transitions rather than blocking the publisher.
func (a *Auth) Subscribe() <-chan bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	ch := make(chan bool, 8)
	ch <- a.authed.Load()
	a.subs = append(a.subs, ch)
	return ch
}

func (a *Auth) publish(v bool) {
	a.mu.Lock()
	subs := make([]chan bool, len(a.subs))
	copy(subs, a.subs)
	a.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- v:
		default:
			internal.Component("auth").Warn("dropping auth state update for slow subscriber")
		}
	}
}

// Login checks credentials and, on success, issues an OTP challenge. The
// user is not authenticated until VerifyOTP succeeds.
func (a *Auth) Login(ctx context.Context, username, password string) (OTPChallenge, error) {
	_ = ctx // the mock never blocks, ctx kept for interface parity with a real backend
	a.mu.Lock()
	defer a.mu.Unlock()
	if pw, ok := a.users[username]; !ok || pw != password {
		return OTPChallenge{}, ErrInvalidCredentials
	}
	return a.issueChallengeLocked(), nil
}

// RequestOTP issues a fresh challenge for an already credential-checked
// user, replacing any pending one. Resend flows call this and read the new
// ExpiresAt from the result.
func (a *Auth) RequestOTP(ctx context.Context) (OTPChallenge, error) {
	_ = ctx
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.issueChallengeLocked(), nil
}

func (a *Auth) issueChallengeLocked() OTPChallenge {
	a.challenge = &OTPChallenge{
		ID:        randomID(),
		Code:      "000001", // fixed mock code
		ExpiresAt: a.now().Add(a.otpTTL),
	}
	return *a.challenge
}

// VerifyOTP completes login. On success the authenticated state flips to
// true, the transition is published, and the session token is stored.
func (a *Auth) VerifyOTP(ctx context.Context, code string) error {
	_ = ctx
	a.mu.Lock()
	ch := a.challenge
	a.mu.Unlock()

	if ch == nil {
		return ErrNoChallenge
	}
	if a.now().After(ch.ExpiresAt) {
		return ErrChallengeExpired
	}
	if code != ch.Code {
		return ErrCodeMismatch
	}

	a.mu.Lock()
	a.challenge = nil
	a.mu.Unlock()

	if a.kc != nil {
		if err := a.kc.Save("session-" + randomID()); err != nil {
			internal.Component("auth").Warn("persisting session token failed", "error", err)
		}
	}
	a.setAuthenticated(true)
	return nil
}

// Logout clears the session. Navigation resets never depend on its outcome.
func (a *Auth) Logout(ctx context.Context) error {
	_ = ctx
	a.setAuthenticated(false)
	if a.kc != nil {
		if err := a.kc.Delete(); err != nil {
			return err
		}
	}
	return nil
}

// ExpireSession simulates a server-side session expiry: the state flips to
// false and the stored token is discarded.
func (a *Auth) ExpireSession() {
	a.setAuthenticated(false)
	if a.kc != nil {
		_ = a.kc.Delete()
	}
}

func (a *Auth) setAuthenticated(v bool) {
	if a.authed.Swap(v) != v {
		a.publish(v)
	}
}

func randomID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}
