package services

import (
	"context"
	"fmt"
	"time"
)

// Notification is one entry in the notification center.
type Notification struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
}

// Notifications serves the mock notification feed the Home deep links
// resolve against.
type Notifications struct {
	feed map[string]Notification
}

// NewNotifications seeds the mock feed.
func NewNotifications() *Notifications {
	created := time.Date(2026, 8, 22, 8, 0, 0, 0, time.UTC)
	feed := map[string]Notification{
		"N1": {ID: "N1", Title: "Card payment", Body: "Your card ending 9 was charged 42.50 EUR.", CreatedAt: created},
		"N2": {ID: "N2", Title: "Statement ready", Body: "Your July statement is available.", CreatedAt: created.Add(time.Hour)},
	}
	return &Notifications{feed: feed}
}

// List returns the whole feed.
func (n *Notifications) List(ctx context.Context) ([]Notification, error) {
	_ = ctx
	out := make([]Notification, 0, len(n.feed))
	for _, nt := range n.feed {
		out = append(out, nt)
	}
	return out, nil
}

// Get returns one notification by ID.
func (n *Notifications) Get(ctx context.Context, id string) (Notification, error) {
	_ = ctx
	nt, ok := n.feed[id]
	if !ok {
		return Notification{}, fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	return nt, nil
}
