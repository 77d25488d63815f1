package deeplink

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/meridianbank/navkit/pkg/navkit/constants"
	"github.com/meridianbank/navkit/pkg/navkit/route"
)

// Parser validates URIs against one registered scheme and the per-feature
// route grammars. The zero value is not usable; use NewParser.
type Parser struct {
	scheme string
}

// NewParser returns a parser for the given scheme. An empty scheme selects
// the app default.
func NewParser(scheme string) *Parser {
	if scheme == "" {
		scheme = constants.DefaultScheme
	}
	return &Parser{scheme: scheme}
}

// Scheme returns the scheme this parser accepts.
func (p *Parser) Scheme() string { return p.scheme }

// Parse maps a raw URI onto a RootRoute. It is pure: same input, same
// output, no side effects. All failures are *ParseError values.
func (p *Parser) Parse(raw string) (route.RootRoute, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return route.RootRoute{}, &ParseError{Kind: KindInvalidScheme, URI: raw, Detail: "unparseable URI"}
	}
	if !strings.EqualFold(u.Scheme, p.scheme) {
		return route.RootRoute{}, &ParseError{Kind: KindInvalidScheme, URI: raw, Detail: "scheme " + u.Scheme}
	}

	// In <scheme>://<feature>/... form the feature lands in the host part.
	feature := u.Host
	if feature == "" {
		return route.RootRoute{}, &ParseError{Kind: KindUnknownRoute, URI: raw, Detail: "missing feature segment"}
	}
	tab, ok := route.TabFromSegment(strings.ToLower(feature))
	if !ok {
		return route.RootRoute{}, &ParseError{Kind: KindUnknownRoute, URI: raw, Detail: "feature " + feature}
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return route.RootRoute{Tab: tab}, nil
	}

	var sub route.Route
	var detail string
	switch tab {
	case route.TabHome:
		sub, detail = parseHome(segments)
	case route.TabAccounts:
		sub, detail = parseAccounts(segments)
	case route.TabTransfer:
		sub, detail = parseTransfer(segments)
	case route.TabCards:
		sub, detail = parseCards(segments)
	case route.TabMore:
		sub, detail = parseMore(segments)
	case route.TabAuth:
		sub, detail = parseAuth(segments)
	}
	if sub == nil {
		return route.RootRoute{}, &ParseError{Kind: KindMalformedPath, URI: raw, Detail: detail}
	}
	return route.RootRoute{Tab: tab, Sub: sub}, nil
}

// splitPath drops empty segments so trailing slashes are tolerated.
func splitPath(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// home: notifications | notifications/{id}
func parseHome(seg []string) (route.Route, string) {
	if seg[0] != "notifications" {
		return nil, "unexpected segment " + seg[0]
	}
	switch len(seg) {
	case 1:
		return route.Notifications{}, ""
	case 2:
		return route.NotificationDetail{NotificationID: seg[1]}, ""
	}
	return nil, "too many segments after notifications"
}

// accounts: {id} | {id}/transactions | {id}/transactions/{txID} |
// {id}/statement/{month}/{year}
func parseAccounts(seg []string) (route.Route, string) {
	id := seg[0]
	switch len(seg) {
	case 1:
		return route.AccountDetail{AccountID: id}, ""
	case 2:
		if seg[1] == "transactions" {
			return route.TransactionHistory{AccountID: id}, ""
		}
		return nil, "unexpected segment " + seg[1]
	case 3:
		if seg[1] == "transactions" {
			return route.TransactionDetail{TransactionID: seg[2]}, ""
		}
		return nil, "unexpected segment " + seg[1]
	case 4:
		if seg[1] != "statement" {
			return nil, "unexpected segment " + seg[1]
		}
		month, err := strconv.Atoi(seg[2])
		if err != nil || month < 1 || month > 12 {
			return nil, "bad statement month " + seg[2]
		}
		year, err := strconv.Atoi(seg[3])
		if err != nil || len(seg[3]) != 4 {
			return nil, "bad statement year " + seg[3]
		}
		return route.StatementDownload{AccountID: id, Month: month, Year: year}, ""
	}
	return nil, "too many segments"
}

// transfer: new | history | confirm/{id}
func parseTransfer(seg []string) (route.Route, string) {
	switch seg[0] {
	case "new":
		if len(seg) == 1 {
			return route.NewTransfer{}, ""
		}
	case "history":
		if len(seg) == 1 {
			return route.TransferHistory{}, ""
		}
	case "confirm":
		if len(seg) == 2 {
			return route.TransferConfirm{TransferID: seg[1]}, ""
		}
		return nil, "confirm requires a transfer id"
	default:
		return nil, "unexpected segment " + seg[0]
	}
	return nil, "too many segments after " + seg[0]
}

// cards: {id} | {id}/limits | {id}/pin
func parseCards(seg []string) (route.Route, string) {
	id := seg[0]
	switch len(seg) {
	case 1:
		return route.CardDetail{CardID: id}, ""
	case 2:
		switch seg[1] {
		case "limits":
			return route.CardLimits{CardID: id}, ""
		case "pin":
			return route.CardPINChange{CardID: id}, ""
		}
		return nil, "unexpected segment " + seg[1]
	}
	return nil, "too many segments"
}

// more: profile | settings | support
func parseMore(seg []string) (route.Route, string) {
	if len(seg) != 1 {
		return nil, "too many segments"
	}
	switch seg[0] {
	case "profile":
		return route.Profile{}, ""
	case "settings":
		return route.Settings{}, ""
	case "support":
		return route.Support{}, ""
	}
	return nil, "unexpected segment " + seg[0]
}

// auth: otp | forgot
func parseAuth(seg []string) (route.Route, string) {
	if len(seg) != 1 {
		return nil, "too many segments"
	}
	switch seg[0] {
	case "otp":
		return route.OTP{}, ""
	case "forgot":
		return route.ForgotPassword{}, ""
	}
	return nil, "unexpected segment " + seg[0]
}
