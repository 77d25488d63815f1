package coordinator

import (
	"log/slog"
	"sync"

	"github.com/meridianbank/navkit/pkg/navkit/constants"
	"github.com/meridianbank/navkit/pkg/navkit/internal"
	"github.com/meridianbank/navkit/pkg/navkit/route"
	"github.com/meridianbank/navkit/pkg/navkit/view"
)

// parentLink is the narrow upward edge from a feature coordinator to its
// owner. All methods assume the shared mutex is already held.
type parentLink interface {
	switchTabLocked(route.Tab)
	featureLocked(route.Tab) *FeatureCoordinator
}

// FeatureState is a read-only snapshot of one feature's navigation state.
type FeatureState struct {
	Stack      []route.Route
	Sheet      route.Route // nil when no sheet is presented
	FullScreen route.Route // nil when no full-screen modal is presented
}

// FeatureCoordinator owns one feature area's navigation stack and modal
// slots. All six features share this engine; only the tab key and the
// ancestor-chain table differ per instance.
type FeatureCoordinator struct {
	mu     *sync.Mutex // shared with the app coordinator; never replaced
	tab    route.Tab
	parent parentLink // nil for a standalone coordinator

	stack      Stack
	sheet      *Item
	fullScreen *Item

	builder    *view.Builder
	depthLimit int
	log        *slog.Logger
}

// NewFeature builds a standalone feature coordinator with its own execution
// context. The app coordinator builds its features through newFeature so
// they share its context instead.
func NewFeature(tab route.Tab, builder *view.Builder, depthLimit int) *FeatureCoordinator {
	return newFeature(&sync.Mutex{}, tab, nil, builder, depthLimit)
}

func newFeature(mu *sync.Mutex, tab route.Tab, parent parentLink, builder *view.Builder, depthLimit int) *FeatureCoordinator {
	if depthLimit < 1 {
		depthLimit = constants.DefaultNavDepthLimit
	}
	return &FeatureCoordinator{
		mu:         mu,
		tab:        tab,
		parent:     parent,
		builder:    builder,
		depthLimit: depthLimit,
		log:        internal.Component("coordinator").With("tab", tab.String()),
	}
}

// Tab returns the feature area this coordinator owns.
func (c *FeatureCoordinator) Tab() route.Tab { return c.tab }

// Push appends a screen to the stack. Routes belonging to another feature
// and pushes beyond the depth limit are dropped and logged, not errors.
func (c *FeatureCoordinator) Push(r route.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pushLocked(r)
}

func (c *FeatureCoordinator) pushLocked(r route.Route) {
	if r == nil {
		return
	}
	if r.Feature() != c.tab {
		c.log.Warn("dropping push for foreign route", "feature", r.Feature().String())
		return
	}
	if c.stack.Len() >= c.depthLimit {
		c.log.Warn("dropping push beyond depth limit", "limit", c.depthLimit)
		return
	}
	c.stack.Push(NewItem(r))
}

// Pop removes the visible screen. A pop on an empty stack is a no-op so a
// back-gesture and a programmatic pop can race harmlessly.
func (c *FeatureCoordinator) Pop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack.Pop()
}

// PopToRoot clears the stack back to the feature root. Idempotent.
func (c *FeatureCoordinator) PopToRoot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.popToRootLocked()
}

func (c *FeatureCoordinator) popToRootLocked() {
	c.stack.Clear()
}

// TruncateTo keeps the first n stacked screens. This is the entry point the
// view layer calls for multi-screen back-navigation; coordinator state must
// follow the displayed state, and this is the contract that keeps them in
// step.
func (c *FeatureCoordinator) TruncateTo(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack.TruncateTo(n)
}

// Present shows a route modally. Each kind (sheet, full-screen) holds at
// most one item; presenting replaces the prior item of the same kind.
func (c *FeatureCoordinator) Present(r route.Route, fullScreen bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r == nil || r.Feature() != c.tab {
		c.log.Warn("dropping present for foreign route")
		return
	}
	it := NewItem(r)
	if fullScreen {
		c.fullScreen = &it
	} else {
		c.sheet = &it
	}
}

// Dismiss clears both modal slots unconditionally. Idempotent.
func (c *FeatureCoordinator) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismissLocked()
}

func (c *FeatureCoordinator) dismissLocked() {
	c.sheet = nil
	c.fullScreen = nil
}

// HandleDeepLink rebuilds the feature's stack for an externally supplied
// route: the stack is cleared, the route's fixed ancestor chain is pushed,
// then the target. Deep links replace navigation state, never append to it,
// and the whole rebuild is one atomic transition.
func (c *FeatureCoordinator) HandleDeepLink(r route.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handleDeepLinkLocked(r)
}

func (c *FeatureCoordinator) handleDeepLinkLocked(r route.Route) {
	if r == nil || r.Feature() != c.tab {
		c.log.Warn("dropping deep link for foreign route")
		return
	}
	c.popToRootLocked()
	for _, ancestor := range ancestorsFor(r) {
		c.pushLocked(ancestor)
	}
	c.pushLocked(r)
}

// NavigateTo is the in-app cross-feature request: switch to the route's tab
// and push there. It bypasses deep-link handling because the caller is
// already inside the app and wants to extend the target stack, not replace
// it. Without a parent the request is dropped and logged.
func (c *FeatureCoordinator) NavigateTo(r route.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r == nil {
		return
	}
	if r.Feature() == c.tab {
		c.pushLocked(r)
		return
	}
	if c.parent == nil {
		c.log.Warn("dropping cross-feature navigation without parent")
		return
	}
	c.parent.switchTabLocked(r.Feature())
	if target := c.parent.featureLocked(r.Feature()); target != nil {
		target.pushLocked(r)
	}
}

// NavigateToAccountDetail jumps to an account's detail screen from any
// feature, e.g. from a notification about a card payment.
func (c *FeatureCoordinator) NavigateToAccountDetail(accountID string) {
	c.NavigateTo(route.AccountDetail{AccountID: accountID})
}

// NavigateToNewTransfer jumps into the transfer flow from any feature.
func (c *FeatureCoordinator) NavigateToNewTransfer() {
	c.NavigateTo(route.NewTransfer{})
}

// Build maps a route to its view-construction request.
func (c *FeatureCoordinator) Build(r route.Route) view.Handle {
	return c.builder.Build(r)
}

// RootView returns the construction request for the feature's root screen.
func (c *FeatureCoordinator) RootView() view.Handle {
	return c.builder.RootHandle(c.tab)
}

// Snapshot returns the feature's current navigation state.
func (c *FeatureCoordinator) Snapshot() FeatureState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *FeatureCoordinator) snapshotLocked() FeatureState {
	st := FeatureState{Stack: c.stack.Routes()}
	if c.sheet != nil {
		st.Sheet = c.sheet.Route
	}
	if c.fullScreen != nil {
		st.FullScreen = c.fullScreen.Route
	}
	return st
}
