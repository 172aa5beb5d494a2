package ticker

import (
	"github.com/younwookim/screenflow/internal/infrastructure/invariant"
)

type entry struct {
	name   string
	ticker Ticker
}

// Choreography folds a fixed set of named tickers and sub-phase flags into
// a single ready signal. It is ready exactly when every non-repeating ticker
// is done and every flag is set; the order in which the tickers completed
// does not matter.
type Choreography struct {
	entries []entry
	index   map[string]int
	flags   map[string]bool
	order   []string
}

// NewChoreography creates an empty choreography
func NewChoreography() *Choreography {
	return &Choreography{
		index: make(map[string]int),
		flags: make(map[string]bool),
	}
}

// Add registers a ticker under name. Repeating tickers are accepted but only
// ticked; they never hold back readiness.
func (c *Choreography) Add(name string, t Ticker) *Choreography {
	if !invariant.Check(t != nil, "choreography ticker must not be nil", "name", name) {
		return c
	}
	if i, ok := c.index[name]; ok {
		c.entries[i].ticker = t
		return c
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, entry{name: name, ticker: t})
	return c
}

// Flag registers a sub-phase completion flag, initially unset
func (c *Choreography) Flag(name string) *Choreography {
	if _, ok := c.flags[name]; !ok {
		c.order = append(c.order, name)
	}
	c.flags[name] = false
	return c
}

// SetFlag marks a sub-phase as complete or incomplete
func (c *Choreography) SetFlag(name string, v bool) {
	if !invariant.Check(c.hasFlag(name), "unknown choreography flag", "name", name) {
		return
	}
	c.flags[name] = v
}

// FlagSet reports whether the named flag is set
func (c *Choreography) FlagSet(name string) bool {
	return c.flags[name]
}

func (c *Choreography) hasFlag(name string) bool {
	_, ok := c.flags[name]
	return ok
}

// Ticker returns the ticker registered under name, or nil
func (c *Choreography) Ticker(name string) Ticker {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return c.entries[i].ticker
}

// Value returns the named ticker's output, or 0 if absent
func (c *Choreography) Value(name string) float64 {
	if t := c.Ticker(name); t != nil {
		return t.Value()
	}
	return 0
}

// Tick advances every ticker by dt and returns Ready()
func (c *Choreography) Tick(dt float64) bool {
	for _, e := range c.entries {
		e.ticker.Tick(dt)
	}
	return c.Ready()
}

// Ready reports whether every gating ticker is done and every flag set
func (c *Choreography) Ready() bool {
	for _, e := range c.entries {
		if e.ticker.Repeats() {
			continue
		}
		if !e.ticker.Done() {
			return false
		}
	}
	for _, name := range c.order {
		if !c.flags[name] {
			return false
		}
	}
	return true
}

// Pending returns the names of tickers and flags still holding readiness back
func (c *Choreography) Pending() []string {
	var pending []string
	for _, e := range c.entries {
		if !e.ticker.Repeats() && !e.ticker.Done() {
			pending = append(pending, e.name)
		}
	}
	for _, name := range c.order {
		if !c.flags[name] {
			pending = append(pending, name)
		}
	}
	return pending
}

// FastForward moves every ticker to its terminal value and sets every flag.
// Screens call it before transitioning mid-choreography so nothing is left
// half-way when the screen is destroyed.
func (c *Choreography) FastForward() {
	for _, e := range c.entries {
		e.ticker.Finish()
	}
	for _, name := range c.order {
		c.flags[name] = true
	}
}

// Reset rewinds every ticker and clears every flag
func (c *Choreography) Reset() {
	for _, e := range c.entries {
		e.ticker.Reset()
	}
	for _, name := range c.order {
		c.flags[name] = false
	}
}
