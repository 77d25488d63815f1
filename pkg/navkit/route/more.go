package route

// MoreRoute is the closed set of More destinations.
type MoreRoute interface {
	Route
	moreRoute()
}

// MoreRoot is the More menu.
type MoreRoot struct{}

// Profile shows the user's profile.
type Profile struct{}

// Settings shows app settings.
type Settings struct{}

// Support shows contact and help options.
type Support struct{}

func (MoreRoot) Feature() Tab { return TabMore }
func (Profile) Feature() Tab  { return TabMore }
func (Settings) Feature() Tab { return TabMore }
func (Support) Feature() Tab  { return TabMore }

func (MoreRoot) sealed() {}
func (Profile) sealed()  {}
func (Settings) sealed() {}
func (Support) sealed()  {}

func (MoreRoot) moreRoute() {}
func (Profile) moreRoute()  {}
func (Settings) moreRoute() {}
func (Support) moreRoute()  {}
