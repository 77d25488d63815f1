package coordinator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/meridianbank/navkit/pkg/navkit/deeplink"
	"github.com/meridianbank/navkit/pkg/navkit/internal"
	"github.com/meridianbank/navkit/pkg/navkit/route"
	"github.com/meridianbank/navkit/pkg/navkit/view"
)

// AuthSource is the authentication collaborator the app coordinator
// observes. Subscribe delivers the current state first, then every later
// transition, for the coordinator's whole lifetime. Logout's outcome is
// irrelevant to navigation; resets are optimistic.
type AuthSource interface {
	Authenticated() bool
	Subscribe() <-chan bool
	Logout(ctx context.Context) error
}

// AppState is a read-only snapshot of the whole navigation tree after some
// public operation returned. Intermediate states are never observable.
type AppState struct {
	SelectedTab     route.Tab
	Authenticated   bool
	PendingDeepLink string // "" when nothing is buffered
	SessionExpired  bool   // the blocking interstitial is presented
	Features        map[route.Tab]FeatureState
}

// Options wires an App.
type Options struct {
	Parser     *deeplink.Parser
	Auth       AuthSource // may be nil in tests; the gate then stays closed
	Builder    *view.Builder
	DefaultTab route.Tab
	DepthLimit int
}

// App is the root coordinator. It owns the six feature coordinators for the
// process lifetime, the selected tab, the authentication gate with its
// at-most-one pending deep link, and the session-expired interstitial.
type App struct {
	mu       sync.Mutex
	features map[route.Tab]*FeatureCoordinator

	selectedTab route.Tab
	defaultTab  route.Tab
	authed      bool
	pending     string

	// interstitial is the app-root full-screen slot, used exclusively for
	// the session-expired screen. It blocks dismissal: only a successful
	// re-login clears it.
	interstitial *Item

	parser *deeplink.Parser
	auth   AuthSource
	log    *slog.Logger
}

// NewApp builds the coordinator tree. The feature coordinators share the
// app's execution context and live as long as the process.
func NewApp(opts Options) *App {
	if opts.Parser == nil {
		opts.Parser = deeplink.NewParser("")
	}
	a := &App{
		features:    make(map[route.Tab]*FeatureCoordinator, len(route.Tabs)),
		selectedTab: opts.DefaultTab,
		defaultTab:  opts.DefaultTab,
		parser:      opts.Parser,
		auth:        opts.Auth,
		log:         internal.Component("coordinator").With("tab", "root"),
	}
	for _, tab := range route.Tabs {
		a.features[tab] = newFeature(&a.mu, tab, a, opts.Builder, opts.DepthLimit)
	}
	if opts.Auth != nil {
		a.authed = opts.Auth.Authenticated()
	}
	return a
}

// Start begins observing the auth source. The subscription lasts until ctx
// is cancelled, which only happens at process teardown.
func (a *App) Start(ctx context.Context) {
	if a.auth == nil {
		return
	}
	ch := a.auth.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				a.onAuthState(v)
			}
		}
	}()
}

// onAuthState applies an observed auth transition. Every arrival at true
// consumes the pending deep link (exactly once) and clears the
// session-expired interstitial; false has no direct effect here, since both
// logout and session expiry reset navigation through their own entry points.
func (a *App) onAuthState(authed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authed = authed
	if !authed {
		return
	}
	a.interstitial = nil
	if a.pending == "" {
		return
	}
	uri := a.pending
	a.pending = ""
	a.parseAndDispatchLocked(uri)
}

// HandleDeepLink is the entry point for an externally supplied URI. While
// unauthenticated the URI is buffered (last one wins) and processed the
// instant authentication becomes true; otherwise it is parsed and
// dispatched immediately. Malformed URIs are logged and dropped.
func (a *App) HandleDeepLink(uri string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.authed {
		if a.pending != "" {
			a.log.Info("replacing pending deep link", "uri", uri)
		}
		a.pending = uri
		return
	}
	a.parseAndDispatchLocked(uri)
}

func (a *App) parseAndDispatchLocked(uri string) {
	rr, err := a.parser.Parse(uri)
	if err != nil {
		// The worst outcome of malformed input is "no navigation occurred".
		a.log.Warn("dropping deep link", "uri", uri, "error", err)
		return
	}
	a.dispatchLocked(rr)
}

// Dispatch routes a parsed root route: the tab switch is unconditional,
// the sub-route (when present) replaces the target feature's stack.
func (a *App) Dispatch(rr route.RootRoute) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dispatchLocked(rr)
}

func (a *App) dispatchLocked(rr route.RootRoute) {
	fc := a.features[rr.Tab]
	if fc == nil {
		a.log.Warn("dropping dispatch for unknown tab", "tab", int(rr.Tab))
		return
	}
	a.selectedTab = rr.Tab
	if rr.Sub == nil {
		return
	}
	fc.handleDeepLinkLocked(rr.Sub)
}

// SwitchTab selects a tab without touching any feature's stack.
func (a *App) SwitchTab(tab route.Tab) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.switchTabLocked(tab)
}

// Feature returns the coordinator owning tab. The returned pointer is valid
// for the process lifetime.
func (a *App) Feature(tab route.Tab) *FeatureCoordinator {
	return a.features[tab]
}

// SelectedTab returns the currently selected tab.
func (a *App) SelectedTab() route.Tab {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectedTab
}

// Logout triggers the external logout and unconditionally resets all
// navigation state. The external call is fire-and-forget: its failure is
// logged but never rolls the reset back.
func (a *App) Logout() {
	if a.auth != nil {
		go func() {
			if err := a.auth.Logout(context.Background()); err != nil {
				a.log.Warn("logout collaborator failed", "error", err)
			}
		}()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.resetLocked()
}

// SessionExpired is the stronger reset: everything Logout resets, plus the
// local auth state is forced false and the blocking interstitial is
// presented. State is cleared before presenting so re-login lands on a
// clean slate. Idempotent: a second call finds the interstitial already up
// and leaves the identical state in place.
func (a *App) SessionExpired() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resetLocked()
	if a.interstitial == nil || a.interstitial.Route != route.Route(route.SessionExpired{}) {
		it := NewItem(route.SessionExpired{})
		a.interstitial = &it
	}
}

// resetLocked funnels both logout and session expiry: clear every feature's
// stack and modals, return to the default tab, drop any pending link, and
// mark unauthenticated.
func (a *App) resetLocked() {
	for _, fc := range a.features {
		fc.popToRootLocked()
		fc.dismissLocked()
	}
	a.selectedTab = a.defaultTab
	a.pending = ""
	a.authed = false
}

// State snapshots the whole tree.
func (a *App) State() AppState {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := AppState{
		SelectedTab:     a.selectedTab,
		Authenticated:   a.authed,
		PendingDeepLink: a.pending,
		SessionExpired:  a.interstitial != nil,
		Features:        make(map[route.Tab]FeatureState, len(a.features)),
	}
	for tab, fc := range a.features {
		st.Features[tab] = fc.snapshotLocked()
	}
	return st
}

// parentLink implementation; the shared mutex is already held.

func (a *App) switchTabLocked(tab route.Tab) {
	a.selectedTab = tab
}

func (a *App) featureLocked(tab route.Tab) *FeatureCoordinator {
	return a.features[tab]
}
