package card

// List is an ordered run of cards: a stock pile, a board, or a hand.
// The engine never shuffles one itself — the host owns randomness —
// but test fixtures and the hand's board both need to pop/append cards.
type List []Card

func (ds *List) Init(cards []Card) {
	*ds = make([]Card, len(cards))
	copy(*ds, cards)
}

func (ds List) Count() int {
	return len(ds)
}

func (ds List) Bytes() []byte {
	return Cards2bytes(ds)
}

func (ds *List) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

func (ds *List) PopCard() Card {
	n := ds.Count()
	if n == 0 {
		return CardInvalid
	}
	c := (*ds)[n-1]
	*ds = (*ds)[:n-1]
	return c
}

func (ds *List) PopCards(size int) ([]Card, bool) {
	if size > ds.Count() {
		return nil, false
	}
	cards := make([]Card, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards, true
}
