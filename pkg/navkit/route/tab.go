package route

// Tab identifies one of the app's six feature areas.
// The zero value is TabHome, the app's default tab.
type Tab int

const (
	TabHome Tab = iota
	TabAccounts
	TabTransfer
	TabCards
	TabMore
	TabAuth
)

// Tabs lists every feature area in display order.
var Tabs = []Tab{TabHome, TabAccounts, TabTransfer, TabCards, TabMore, TabAuth}

// String returns the tab's deep-link feature segment.
func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabAccounts:
		return "accounts"
	case TabTransfer:
		return "transfer"
	case TabCards:
		return "cards"
	case TabMore:
		return "more"
	case TabAuth:
		return "auth"
	}
	return "unknown"
}

// TabFromSegment maps a deep-link feature segment to its Tab.
// The second return value is false for unrecognized segments.
func TabFromSegment(segment string) (Tab, bool) {
	switch segment {
	case "home":
		return TabHome, true
	case "accounts":
		return TabAccounts, true
	case "transfer":
		return TabTransfer, true
	case "cards":
		return TabCards, true
	case "more":
		return TabMore, true
	case "auth":
		return TabAuth, true
	}
	return 0, false
}
