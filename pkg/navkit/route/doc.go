// Package route defines the closed sets of navigable destinations for each
// feature area of the app, plus the root union that composes them.
//
// Each feature's destinations form a sealed union: an unexported marker
// method keeps the set closed, and every variant is a comparable value
// struct carrying exactly the identifiers needed to reconstruct its screen.
// Routes are never mutated after construction.
//
//	r := route.AccountDetail{AccountID: "ACC123"}
//	r.Feature() // route.TabAccounts
//
// RootRoute pairs a Tab with an optional feature sub-route. A nil Sub means
// "land on the feature's root screen".
package route
