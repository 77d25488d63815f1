package coordinator

import "github.com/meridianbank/navkit/pkg/navkit/route"

// ancestorsFor is the explicit ancestor-chain table used when a deep link
// reconstructs a screen: the returned routes are pushed, in order, before
// the target itself, so back-navigation from a deep-linked screen lands on
// the screen a user would have come from. The chain is fixed per route
// variant; there is no graph search, and a variant carrying no parent
// context gets an empty chain.
func ancestorsFor(r route.Route) []route.Route {
	switch v := r.(type) {
	case route.NotificationDetail:
		return []route.Route{route.Notifications{}}
	case route.TransactionHistory:
		return []route.Route{route.AccountDetail{AccountID: v.AccountID}}
	case route.StatementDownload:
		return []route.Route{route.AccountDetail{AccountID: v.AccountID}}
	case route.TransferConfirm:
		return []route.Route{route.NewTransfer{}}
	case route.CardLimits:
		return []route.Route{route.CardDetail{CardID: v.CardID}}
	case route.CardPINChange:
		return []route.Route{route.CardDetail{CardID: v.CardID}}
	}
	// TransactionDetail carries only the transaction ID, so it cannot name
	// its account's detail screen; it deep-links as a single screen.
	return nil
}
