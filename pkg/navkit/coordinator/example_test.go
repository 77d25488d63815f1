package coordinator_test

import (
	"context"
	"fmt"

	"github.com/meridianbank/navkit/pkg/navkit/coordinator"
	"github.com/meridianbank/navkit/pkg/navkit/deeplink"
	"github.com/meridianbank/navkit/pkg/navkit/route"
	"github.com/meridianbank/navkit/pkg/navkit/view"
)

// exampleAuth is always authenticated, so dispatch happens synchronously.
type exampleAuth struct{}

func (exampleAuth) Authenticated() bool { return true }
func (exampleAuth) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	ch <- true
	return ch
}
func (exampleAuth) Logout(context.Context) error { return nil }

// Example demonstrates a deep link replacing the Accounts stack.
func Example() {
	builder, _ := view.NewBuilder("en")
	app := coordinator.NewApp(coordinator.Options{
		Parser:     deeplink.NewParser("bankapp"),
		Auth:       exampleAuth{},
		Builder:    builder,
		DefaultTab: route.TabHome,
	})

	app.HandleDeepLink("bankapp://accounts/ACC123/transactions")

	st := app.State()
	fmt.Println("tab:", st.SelectedTab)
	accounts := app.Feature(route.TabAccounts)
	for _, r := range st.Features[route.TabAccounts].Stack {
		fmt.Println("screen:", accounts.Build(r).Title)
	}

	// Output:
	// tab: accounts
	// screen: Account ACC123
	// screen: Transactions
}

// Example_authGate demonstrates the pending-deep-link buffer: a link that
// arrives before login is held, then dispatched once on the transition to
// authenticated.
func Example_authGate() {
	builder, _ := view.NewBuilder("en")
	app := coordinator.NewApp(coordinator.Options{
		Parser:     deeplink.NewParser("bankapp"),
		Builder:    builder,
		DefaultTab: route.TabHome,
	})

	app.HandleDeepLink("bankapp://home/notifications/N42")
	fmt.Println("pending:", app.State().PendingDeepLink)
	fmt.Println("home stack:", len(app.State().Features[route.TabHome].Stack))

	// Output:
	// pending: bankapp://home/notifications/N42
	// home stack: 0
}
