package coordinator_test

import (
	"testing"

	"github.com/meridianbank/navkit/pkg/navkit/coordinator"
	"github.com/meridianbank/navkit/pkg/navkit/route"
	"github.com/meridianbank/navkit/pkg/navkit/view"
)

func testBuilder(t *testing.T) *view.Builder {
	t.Helper()
	b, err := view.NewBuilder("en")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

func routesEqual(a, b []route.Route) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFeatureDropsForeignRoutes(t *testing.T) {
	fc := coordinator.NewFeature(route.TabHome, testBuilder(t), 0)
	fc.Push(route.AccountDetail{AccountID: "A"})
	if got := fc.Snapshot().Stack; len(got) != 0 {
		t.Errorf("foreign push landed on stack: %v", got)
	}
	fc.Present(route.AccountDetail{AccountID: "A"}, false)
	if st := fc.Snapshot(); st.Sheet != nil {
		t.Errorf("foreign present landed in sheet slot: %v", st.Sheet)
	}
}

func TestFeatureDepthLimit(t *testing.T) {
	fc := coordinator.NewFeature(route.TabHome, testBuilder(t), 3)
	for i := 0; i < 10; i++ {
		fc.Push(route.Notifications{})
	}
	if got := len(fc.Snapshot().Stack); got != 3 {
		t.Errorf("stack depth = %d, want capped at 3", got)
	}
}

func TestFeaturePresentReplacesSameKind(t *testing.T) {
	fc := coordinator.NewFeature(route.TabMore, testBuilder(t), 0)

	fc.Present(route.Profile{}, false)
	fc.Present(route.Settings{}, false)
	st := fc.Snapshot()
	if st.Sheet != route.Route(route.Settings{}) {
		t.Errorf("sheet = %v, want replacement Settings", st.Sheet)
	}

	fc.Present(route.Support{}, true)
	st = fc.Snapshot()
	if st.FullScreen != route.Route(route.Support{}) {
		t.Errorf("fullScreen = %v, want Support", st.FullScreen)
	}
	// The two kinds are independent slots.
	if st.Sheet != route.Route(route.Settings{}) {
		t.Errorf("presenting full-screen clobbered the sheet: %v", st.Sheet)
	}

	fc.Dismiss()
	st = fc.Snapshot()
	if st.Sheet != nil || st.FullScreen != nil {
		t.Errorf("Dismiss left modals: %+v", st)
	}
	fc.Dismiss() // idempotent
}

func TestHandleDeepLinkRebuildsAncestry(t *testing.T) {
	tests := []struct {
		name string
		tab  route.Tab
		link route.Route
		want []route.Route
	}{
		{
			name: "notification detail pushes the list first",
			tab:  route.TabHome,
			link: route.NotificationDetail{NotificationID: "N42"},
			want: []route.Route{route.Notifications{}, route.NotificationDetail{NotificationID: "N42"}},
		},
		{
			name: "transaction history stacks on account detail",
			tab:  route.TabAccounts,
			link: route.TransactionHistory{AccountID: "ACC123"},
			want: []route.Route{route.AccountDetail{AccountID: "ACC123"}, route.TransactionHistory{AccountID: "ACC123"}},
		},
		{
			name: "statement stacks on account detail",
			tab:  route.TabAccounts,
			link: route.StatementDownload{AccountID: "ACC123", Month: 7, Year: 2026},
			want: []route.Route{route.AccountDetail{AccountID: "ACC123"}, route.StatementDownload{AccountID: "ACC123", Month: 7, Year: 2026}},
		},
		{
			name: "card pin change stacks on card detail",
			tab:  route.TabCards,
			link: route.CardPINChange{CardID: "C9"},
			want: []route.Route{route.CardDetail{CardID: "C9"}, route.CardPINChange{CardID: "C9"}},
		},
		{
			name: "transaction detail has no reconstructible ancestry",
			tab:  route.TabAccounts,
			link: route.TransactionDetail{TransactionID: "TX1"},
			want: []route.Route{route.TransactionDetail{TransactionID: "TX1"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc := coordinator.NewFeature(tc.tab, testBuilder(t), 0)
			// Pre-existing state must be fully replaced, not appended to.
			fc.Push(route.Notifications{})
			fc.Push(route.AccountsList{})

			fc.HandleDeepLink(tc.link)
			if got := fc.Snapshot().Stack; !routesEqual(got, tc.want) {
				t.Errorf("stack = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHandleDeepLinkRegardlessOfPriorDepth(t *testing.T) {
	fc := coordinator.NewFeature(route.TabHome, testBuilder(t), 0)
	for i := 0; i < 5; i++ {
		fc.Push(route.Notifications{})
	}
	fc.HandleDeepLink(route.NotificationDetail{NotificationID: "N1"})
	want := []route.Route{route.Notifications{}, route.NotificationDetail{NotificationID: "N1"}}
	if got := fc.Snapshot().Stack; !routesEqual(got, want) {
		t.Errorf("stack = %v, want exactly %v", got, want)
	}
}

func TestPopToRootClearsStackIdempotently(t *testing.T) {
	fc := coordinator.NewFeature(route.TabCards, testBuilder(t), 0)
	fc.Push(route.CardDetail{CardID: "C1"})
	fc.Push(route.CardLimits{CardID: "C1"})

	fc.PopToRoot()
	if got := fc.Snapshot().Stack; len(got) != 0 {
		t.Fatalf("stack after PopToRoot = %v", got)
	}
	fc.PopToRoot()
	if got := fc.Snapshot().Stack; len(got) != 0 {
		t.Errorf("second PopToRoot changed state: %v", got)
	}
}

func TestCrossFeatureWithoutParentIsDropped(t *testing.T) {
	fc := coordinator.NewFeature(route.TabHome, testBuilder(t), 0)
	fc.NavigateToAccountDetail("ACC123")
	if got := fc.Snapshot().Stack; len(got) != 0 {
		t.Errorf("cross-feature request mutated a standalone coordinator: %v", got)
	}
}

func TestBuildAndRootView(t *testing.T) {
	fc := coordinator.NewFeature(route.TabAccounts, testBuilder(t), 0)
	h := fc.Build(route.AccountDetail{AccountID: "ACC123"})
	if h.Title != "Account ACC123" {
		t.Errorf("Build title = %q", h.Title)
	}
	if fc.RootView().Title != "Accounts" {
		t.Errorf("RootView title = %q", fc.RootView().Title)
	}
}
