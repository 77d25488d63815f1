package route

// HomeRoute is the closed set of Home destinations.
type HomeRoute interface {
	Route
	homeRoute()
}

// HomeRoot is the Home dashboard.
type HomeRoot struct{}

// Notifications is the notification center list.
type Notifications struct{}

// NotificationDetail shows a single notification.
type NotificationDetail struct {
	NotificationID string
}

func (HomeRoot) Feature() Tab           { return TabHome }
func (Notifications) Feature() Tab      { return TabHome }
func (NotificationDetail) Feature() Tab { return TabHome }

func (HomeRoot) sealed()           {}
func (Notifications) sealed()      {}
func (NotificationDetail) sealed() {}

func (HomeRoot) homeRoute()           {}
func (Notifications) homeRoute()      {}
func (NotificationDetail) homeRoute() {}
