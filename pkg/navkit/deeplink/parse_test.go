package deeplink_test

import (
	"fmt"
	"strings"
	"testing"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/meridianbank/navkit/pkg/navkit/deeplink"
	"github.com/meridianbank/navkit/pkg/navkit/route"
)

// grammarSheet is the accepted grammar, one URI per line, with the route it
// must parse to. Rendering the whole sheet and diffing keeps failures
// readable when a grammar change shifts several rows at once.
var grammarSheet = []string{
	"bankapp://home => home",
	"bankapp://home/notifications => home:notifications",
	"bankapp://home/notifications/N42 => home:notification/N42",
	"bankapp://accounts => accounts",
	"bankapp://accounts/ACC123 => accounts:detail/ACC123",
	"bankapp://accounts/ACC123/transactions => accounts:transactions/ACC123",
	"bankapp://accounts/ACC123/transactions/TX9 => accounts:transaction/TX9",
	"bankapp://accounts/ACC123/statement/2/2026 => accounts:statement/ACC123",
	"bankapp://transfer => transfer",
	"bankapp://transfer/new => transfer:new",
	"bankapp://transfer/history => transfer:history",
	"bankapp://transfer/confirm/TR77 => transfer:confirm/TR77",
	"bankapp://cards => cards",
	"bankapp://cards/CARD9 => cards:detail/CARD9",
	"bankapp://cards/CARD9/limits => cards:limits/CARD9",
	"bankapp://cards/CARD9/pin => cards:pin/CARD9",
	"bankapp://more => more",
	"bankapp://more/profile => more:profile",
	"bankapp://more/settings => more:settings",
	"bankapp://more/support => more:support",
	"bankapp://auth => auth",
	"bankapp://auth/otp => auth:otp",
	"bankapp://auth/forgot => auth:forgot",
}

func TestParseAcceptsEntireGrammar(t *testing.T) {
	p := deeplink.NewParser("bankapp")

	var got []string
	for _, line := range grammarSheet {
		uri := strings.SplitN(line, " => ", 2)[0]
		rr, err := p.Parse(uri)
		if err != nil {
			got = append(got, fmt.Sprintf("%s => ERROR %v", uri, err))
			continue
		}
		got = append(got, fmt.Sprintf("%s => %s", uri, rr))
	}

	want := strings.Join(grammarSheet, "\n") + "\n"
	have := strings.Join(got, "\n") + "\n"
	if have != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(have),
			FromFile: "grammar",
			ToFile:   "parsed",
			Context:  2,
		})
		t.Errorf("grammar sheet mismatch:\n%s", diff)
	}
}

func TestParsePayloads(t *testing.T) {
	p := deeplink.NewParser("bankapp")

	rr, err := p.Parse("bankapp://accounts/ACC123/statement/2/2026")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := route.StatementDownload{AccountID: "ACC123", Month: 2, Year: 2026}
	if rr.Sub != route.Route(want) {
		t.Errorf("Sub = %#v, want %#v", rr.Sub, want)
	}

	rr, err = p.Parse("bankapp://home/notifications/N42")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rr.Sub != route.Route(route.NotificationDetail{NotificationID: "N42"}) {
		t.Errorf("Sub = %#v, want NotificationDetail N42", rr.Sub)
	}

	// Bare feature segment: tab selected, no sub-route.
	rr, err = p.Parse("bankapp://transfer")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rr.Tab != route.TabTransfer || rr.Sub != nil {
		t.Errorf("bare feature = %+v, want transfer tab with nil Sub", rr)
	}
}

func TestParseRejections(t *testing.T) {
	p := deeplink.NewParser("bankapp")

	tests := []struct {
		name string
		uri  string
		kind deeplink.ErrorKind
	}{
		{"wrong scheme", "otherapp://accounts/ACC123", deeplink.KindInvalidScheme},
		{"no scheme", "accounts/ACC123", deeplink.KindInvalidScheme},
		{"unknown feature", "bankapp://invalid", deeplink.KindUnknownRoute},
		{"empty feature", "bankapp://", deeplink.KindUnknownRoute},
		{"home stray segment", "bankapp://home/nonsense", deeplink.KindMalformedPath},
		{"notifications extra", "bankapp://home/notifications/N1/extra", deeplink.KindMalformedPath},
		{"accounts bad branch", "bankapp://accounts/ACC123/cheques", deeplink.KindMalformedPath},
		{"statement bad month", "bankapp://accounts/ACC123/statement/13/2026", deeplink.KindMalformedPath},
		{"statement short year", "bankapp://accounts/ACC123/statement/2/26", deeplink.KindMalformedPath},
		{"statement missing year", "bankapp://accounts/ACC123/statement/2", deeplink.KindMalformedPath},
		{"confirm without id", "bankapp://transfer/confirm", deeplink.KindMalformedPath},
		{"transfer stray", "bankapp://transfer/new/extra", deeplink.KindMalformedPath},
		{"cards bad branch", "bankapp://cards/CARD9/freeze", deeplink.KindMalformedPath},
		{"more stray", "bankapp://more/profile/extra", deeplink.KindMalformedPath},
		{"auth stray", "bankapp://auth/login/extra", deeplink.KindMalformedPath},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.uri)
			if err == nil {
				t.Fatalf("Parse(%q) accepted, want %v", tc.uri, tc.kind)
			}
			pe, ok := deeplink.IsParseError(err)
			if !ok {
				t.Fatalf("Parse(%q) returned %T, want *ParseError", tc.uri, err)
			}
			if pe.Kind != tc.kind {
				t.Errorf("Parse(%q) kind = %v, want %v", tc.uri, pe.Kind, tc.kind)
			}
		})
	}
}

func TestParseSchemeIsCaseInsensitive(t *testing.T) {
	p := deeplink.NewParser("bankapp")
	if _, err := p.Parse("BANKAPP://accounts/ACC123"); err != nil {
		t.Errorf("uppercase scheme rejected: %v", err)
	}
}

func TestParseIsPure(t *testing.T) {
	p := deeplink.NewParser("bankapp")
	first, err1 := p.Parse("bankapp://cards/CARD9/limits")
	second, err2 := p.Parse("bankapp://cards/CARD9/limits")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("repeated parse differs: %+v vs %+v", first, second)
	}
}
