package route

// AccountsRoute is the closed set of Accounts destinations.
type AccountsRoute interface {
	Route
	accountsRoute()
}

// AccountsList is the account overview list.
type AccountsList struct{}

// AccountDetail shows one account's balance and recent activity.
type AccountDetail struct {
	AccountID string
}

// TransactionHistory lists all transactions for an account.
type TransactionHistory struct {
	AccountID string
}

// TransactionDetail shows a single transaction.
type TransactionDetail struct {
	TransactionID string
}

// StatementDownload requests a monthly statement for an account.
type StatementDownload struct {
	AccountID string
	Month     int // 1..12
	Year      int
}

func (AccountsList) Feature() Tab       { return TabAccounts }
func (AccountDetail) Feature() Tab      { return TabAccounts }
func (TransactionHistory) Feature() Tab { return TabAccounts }
func (TransactionDetail) Feature() Tab  { return TabAccounts }
func (StatementDownload) Feature() Tab  { return TabAccounts }

func (AccountsList) sealed()       {}
func (AccountDetail) sealed()      {}
func (TransactionHistory) sealed() {}
func (TransactionDetail) sealed()  {}
func (StatementDownload) sealed()  {}

func (AccountsList) accountsRoute()       {}
func (AccountDetail) accountsRoute()      {}
func (TransactionHistory) accountsRoute() {}
func (TransactionDetail) accountsRoute()  {}
func (StatementDownload) accountsRoute()  {}
