package barrage

// TurnOrder is a circular cursor over the ordered tank list. Insertion
// order is turn order; advancing past the last tank wraps to the first.
type TurnOrder struct {
	tanks  []*Tank
	cursor int
}

// NewTurnOrder builds the turn order from the full tank list. An empty
// list is rejected with ErrEmptyTurnOrder so the cursor always points at
// a real tank.
func NewTurnOrder(tanks []*Tank) (*TurnOrder, error) {
	if len(tanks) == 0 {
		return nil, ErrEmptyTurnOrder
	}
	return &TurnOrder{tanks: tanks}, nil
}

// Current returns the active tank. Never nil once constructed.
func (o *TurnOrder) Current() *Tank {
	return o.tanks[o.cursor]
}

// Advance moves the cursor to the next tank in circular order and returns
// the new active tank. Called exactly once per fire release, after the
// release has been forwarded to the still-active tank.
func (o *TurnOrder) Advance() *Tank {
	o.cursor = (o.cursor + 1) % len(o.tanks)
	return o.tanks[o.cursor]
}

// Len returns the number of tanks in the order.
func (o *TurnOrder) Len() int {
	return len(o.tanks)
}
