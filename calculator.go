package calcx

// Calculator binds a Store to the five input operations. Each instance is
// independent; create one per session.
type Calculator struct {
	store *Store
}

// New creates a Calculator in the initial state.
func New() *Calculator {
	return &Calculator{store: NewStore(Initial())}
}

// NewWithStore creates a Calculator driving an existing Store.
func NewWithStore(store *Store) *Calculator {
	return &Calculator{store: store}
}

// Store returns the underlying Store.
func (c *Calculator) Store() *Store { return c.store }

// State returns the current State.
func (c *Calculator) State() State { return c.store.Get() }

// Subscribe is shorthand for Store().Subscribe.
func (c *Calculator) Subscribe(fn Observer) func() { return c.store.Subscribe(fn) }

// AddDigit applies AddDigit to the held state.
func (c *Calculator) AddDigit(d Digit) State {
	return c.store.Update(func(s State) State { return AddDigit(s, d) })
}

// RemoveDigit applies RemoveDigit to the held state.
func (c *Calculator) RemoveDigit() State {
	return c.store.Update(RemoveDigit)
}

// SetOperation applies SetOperation to the held state.
func (c *Calculator) SetOperation(op Operation) State {
	return c.store.Update(func(s State) State { return SetOperation(s, op) })
}

// SetResult applies SetResult to the held state.
func (c *Calculator) SetResult() State {
	return c.store.Update(SetResult)
}

// Clear resets the held state unconditionally.
func (c *Calculator) Clear() State {
	next := Clear()
	c.store.Set(next)
	return next
}
