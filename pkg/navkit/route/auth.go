package route

// AuthRoute is the closed set of Auth destinations.
type AuthRoute interface {
	Route
	authRoute()
}

// Login is the credential entry screen.
type Login struct{}

// OTP is the one-time-passcode entry screen.
type OTP struct{}

// ForgotPassword starts the password reset flow.
type ForgotPassword struct{}

// SessionExpired is the blocking interstitial shown after a server-side
// session expiry. It is presented full-screen by the app coordinator and
// offers only "log in again".
type SessionExpired struct{}

func (Login) Feature() Tab          { return TabAuth }
func (OTP) Feature() Tab            { return TabAuth }
func (ForgotPassword) Feature() Tab { return TabAuth }
func (SessionExpired) Feature() Tab { return TabAuth }

func (Login) sealed()          {}
func (OTP) sealed()            {}
func (ForgotPassword) sealed() {}
func (SessionExpired) sealed() {}

func (Login) authRoute()          {}
func (OTP) authRoute()            {}
func (ForgotPassword) authRoute() {}
func (SessionExpired) authRoute() {}
