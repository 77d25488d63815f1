package view_test

import (
	"testing"

	"github.com/meridianbank/navkit/pkg/navkit/route"
	"github.com/meridianbank/navkit/pkg/navkit/view"
)

// everyRoute covers all route variants; Build must be total over it.
var everyRoute = []route.Route{
	route.HomeRoot{},
	route.Notifications{},
	route.NotificationDetail{NotificationID: "N1"},
	route.AccountsList{},
	route.AccountDetail{AccountID: "ACC123"},
	route.TransactionHistory{AccountID: "ACC123"},
	route.TransactionDetail{TransactionID: "TX1"},
	route.StatementDownload{AccountID: "ACC123", Month: 7, Year: 2026},
	route.TransferRoot{},
	route.NewTransfer{},
	route.TransferConfirm{TransferID: "TR1"},
	route.TransferHistory{},
	route.CardsRoot{},
	route.CardDetail{CardID: "C1"},
	route.CardLimits{CardID: "C1"},
	route.CardPINChange{CardID: "C1"},
	route.MoreRoot{},
	route.Profile{},
	route.Settings{},
	route.Support{},
	route.Login{},
	route.OTP{},
	route.ForgotPassword{},
	route.SessionExpired{},
}

func TestBuildIsTotal(t *testing.T) {
	b, err := view.NewBuilder("en")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for _, r := range everyRoute {
		h := b.Build(r)
		if h.Title == "" {
			t.Errorf("Build(%T) has empty title", r)
		}
		if h.Route != r {
			t.Errorf("Build(%T) lost the route", r)
		}
		if h.Tab != r.Feature() {
			t.Errorf("Build(%T) tab = %v, want %v", r, h.Tab, r.Feature())
		}
	}
}

func TestTitlesInterpolateIdentifiers(t *testing.T) {
	b, err := view.NewBuilder("en")
	if err != nil {
		t.Fatal(err)
	}
	h := b.Build(route.AccountDetail{AccountID: "ACC123"})
	if h.Title != "Account ACC123" {
		t.Errorf("title = %q, want %q", h.Title, "Account ACC123")
	}
	h = b.Build(route.NotificationDetail{NotificationID: "N42"})
	if h.Title != "Notification N42" {
		t.Errorf("title = %q, want %q", h.Title, "Notification N42")
	}
}

func TestRootHandles(t *testing.T) {
	b, err := view.NewBuilder("en")
	if err != nil {
		t.Fatal(err)
	}
	for _, tab := range route.Tabs {
		h := b.RootHandle(tab)
		if h.Title == "" {
			t.Errorf("RootHandle(%v) has empty title", tab)
		}
		if h.Route != nil {
			t.Errorf("RootHandle(%v) carries a route", tab)
		}
	}
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	b, err := view.NewBuilder("xx")
	if err != nil {
		t.Fatal(err)
	}
	if h := b.Build(route.Settings{}); h.Title != "Settings" {
		t.Errorf("fallback title = %q, want Settings", h.Title)
	}
}
