package route

// TransferRoute is the closed set of Transfer destinations.
type TransferRoute interface {
	Route
	transferRoute()
}

// TransferRoot is the transfer landing screen.
type TransferRoot struct{}

// NewTransfer starts a new transfer flow.
type NewTransfer struct{}

// TransferConfirm is the confirmation step for a prepared transfer.
type TransferConfirm struct {
	TransferID string
}

// TransferHistory lists past transfers.
type TransferHistory struct{}

func (TransferRoot) Feature() Tab    { return TabTransfer }
func (NewTransfer) Feature() Tab     { return TabTransfer }
func (TransferConfirm) Feature() Tab { return TabTransfer }
func (TransferHistory) Feature() Tab { return TabTransfer }

func (TransferRoot) sealed()    {}
func (NewTransfer) sealed()     {}
func (TransferConfirm) sealed() {}
func (TransferHistory) sealed() {}

func (TransferRoot) transferRoute()    {}
func (NewTransfer) transferRoute()     {}
func (TransferConfirm) transferRoute() {}
func (TransferHistory) transferRoute() {}
