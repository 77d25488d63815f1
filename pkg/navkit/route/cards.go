package route

// CardsRoute is the closed set of Cards destinations.
type CardsRoute interface {
	Route
	cardsRoute()
}

// CardsRoot is the card overview list.
type CardsRoot struct{}

// CardDetail shows a single card.
type CardDetail struct {
	CardID string
}

// CardLimits shows and edits a card's spending limits.
type CardLimits struct {
	CardID string
}

// CardPINChange starts the PIN change flow for a card.
type CardPINChange struct {
	CardID string
}

func (CardsRoot) Feature() Tab     { return TabCards }
func (CardDetail) Feature() Tab    { return TabCards }
func (CardLimits) Feature() Tab    { return TabCards }
func (CardPINChange) Feature() Tab { return TabCards }

func (CardsRoot) sealed()     {}
func (CardDetail) sealed()    {}
func (CardLimits) sealed()    {}
func (CardPINChange) sealed() {}

func (CardsRoot) cardsRoute()     {}
func (CardDetail) cardsRoute()    {}
func (CardLimits) cardsRoute()    {}
func (CardPINChange) cardsRoute() {}
