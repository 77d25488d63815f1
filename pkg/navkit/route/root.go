package route

// Route is the union over every feature's destinations. It is sealed:
// only types in this package implement it.
type Route interface {
	// Feature reports which tab owns this destination.
	Feature() Tab

	sealed()
}

// RootRoute addresses a destination anywhere in the app: a tab, optionally
// with a destination inside that tab. Sub == nil means the feature's root.
type RootRoute struct {
	Tab Tab
	Sub Route
}

// String renders the root route in deep-link path form, without the scheme.
func (r RootRoute) String() string {
	if r.Sub == nil {
		return r.Tab.String()
	}
	return r.Tab.String() + ":" + variantName(r.Sub)
}

func variantName(r Route) string {
	switch v := r.(type) {
	case HomeRoot:
		return "root"
	case Notifications:
		return "notifications"
	case NotificationDetail:
		return "notification/" + v.NotificationID
	case AccountsList:
		return "list"
	case AccountDetail:
		return "detail/" + v.AccountID
	case TransactionHistory:
		return "transactions/" + v.AccountID
	case TransactionDetail:
		return "transaction/" + v.TransactionID
	case StatementDownload:
		return "statement/" + v.AccountID
	case TransferRoot:
		return "root"
	case NewTransfer:
		return "new"
	case TransferConfirm:
		return "confirm/" + v.TransferID
	case TransferHistory:
		return "history"
	case CardsRoot:
		return "root"
	case CardDetail:
		return "detail/" + v.CardID
	case CardLimits:
		return "limits/" + v.CardID
	case CardPINChange:
		return "pin/" + v.CardID
	case MoreRoot:
		return "root"
	case Profile:
		return "profile"
	case Settings:
		return "settings"
	case Support:
		return "support"
	case Login:
		return "login"
	case OTP:
		return "otp"
	case ForgotPassword:
		return "forgot"
	case SessionExpired:
		return "session-expired"
	}
	return "unknown"
}
