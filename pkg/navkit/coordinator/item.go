package coordinator

import (
	"github.com/google/uuid"

	"github.com/meridianbank/navkit/pkg/navkit/route"
)

// Item is one entry of a navigation stack or modal slot: a route plus a
// stable identity. The identity keys list diffing and modal presentation in
// the view layer, so two pushes of the same route are distinct items.
// Items are created when pushed or presented and discarded when popped or
// dismissed; they are never shared across coordinators.
type Item struct {
	ID    uuid.UUID
	Route route.Route
}

// NewItem wraps a route in a fresh identity.
func NewItem(r route.Route) Item {
	return Item{ID: uuid.New(), Route: r}
}
