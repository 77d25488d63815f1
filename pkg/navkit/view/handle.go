// Package view turns routes into view-construction requests. The actual
// rendering layer is a collaborator outside this module; it consumes Handle
// values and observes coordinator state.
package view

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/meridianbank/navkit/pkg/navkit/route"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Handle is a request to construct one screen.
type Handle struct {
	Route    route.Route // nil for a tab's root screen
	Tab      route.Tab
	Title    string
	Metadata any // renderer-specific payload, unused by the core
}

// Builder maps routes to handles with localized titles. Build is total over
// every route variant; totality is pinned by tests.
type Builder struct {
	loc *i18n.Localizer
}

// NewBuilder loads the embedded message catalog and returns a builder for
// the given locale, falling back to English.
func NewBuilder(locale string) (*Builder, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.LoadMessageFileFS(localeFS, "locales/en.toml"); err != nil {
		return nil, err
	}
	return &Builder{loc: i18n.NewLocalizer(bundle, locale, "en")}, nil
}

// RootHandle returns the construction request for a tab's root screen.
func (b *Builder) RootHandle(tab route.Tab) Handle {
	return Handle{Tab: tab, Title: b.title(rootMessageID(tab), nil)}
}

// Build returns the construction request for a route.
func (b *Builder) Build(r route.Route) Handle {
	id, data := messageFor(r)
	return Handle{Route: r, Tab: r.Feature(), Title: b.title(id, data)}
}

func (b *Builder) title(id string, data map[string]string) string {
	msg, err := b.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		// A missing message is a catalog bug, not a navigation failure.
		return id
	}
	return msg
}

func rootMessageID(tab route.Tab) string {
	switch tab {
	case route.TabHome:
		return "home_root"
	case route.TabAccounts:
		return "accounts_list"
	case route.TabTransfer:
		return "transfer_root"
	case route.TabCards:
		return "cards_root"
	case route.TabMore:
		return "more_root"
	case route.TabAuth:
		return "login"
	}
	return "home_root"
}

func messageFor(r route.Route) (string, map[string]string) {
	switch v := r.(type) {
	case route.HomeRoot:
		return "home_root", nil
	case route.Notifications:
		return "notifications", nil
	case route.NotificationDetail:
		return "notification_detail", map[string]string{"ID": v.NotificationID}
	case route.AccountsList:
		return "accounts_list", nil
	case route.AccountDetail:
		return "account_detail", map[string]string{"ID": v.AccountID}
	case route.TransactionHistory:
		return "transaction_history", map[string]string{"ID": v.AccountID}
	case route.TransactionDetail:
		return "transaction_detail", map[string]string{"ID": v.TransactionID}
	case route.StatementDownload:
		return "statement_download", map[string]string{"ID": v.AccountID}
	case route.TransferRoot:
		return "transfer_root", nil
	case route.NewTransfer:
		return "new_transfer", nil
	case route.TransferConfirm:
		return "transfer_confirm", map[string]string{"ID": v.TransferID}
	case route.TransferHistory:
		return "transfer_history", nil
	case route.CardsRoot:
		return "cards_root", nil
	case route.CardDetail:
		return "card_detail", map[string]string{"ID": v.CardID}
	case route.CardLimits:
		return "card_limits", map[string]string{"ID": v.CardID}
	case route.CardPINChange:
		return "card_pin", map[string]string{"ID": v.CardID}
	case route.MoreRoot:
		return "more_root", nil
	case route.Profile:
		return "profile", nil
	case route.Settings:
		return "settings", nil
	case route.Support:
		return "support", nil
	case route.Login:
		return "login", nil
	case route.OTP:
		return "otp", nil
	case route.ForgotPassword:
		return "forgot_password", nil
	case route.SessionExpired:
		return "session_expired", nil
	}
	return "home_root", nil
}
