package clock

const (
	// DefaultTicks is the tick budget of a run when none is configured.
	DefaultTicks = 20
)

// Clock counts discrete simulation ticks up to a fixed budget.
// It carries no wall-clock notion; pacing is the caller's concern.
type Clock struct {
	total   int
	current int
}

// New creates a clock that yields ticks 0 through total-1.
func New(total int) *Clock {
	if total < 0 {
		total = 0
	}
	return &Clock{total: total}
}

// Next returns the next tick index, or false once the budget is spent.
func (c *Clock) Next() (int, bool) {
	if c.current >= c.total {
		return c.total, false
	}
	tick := c.current
	c.current++
	return tick, true
}

// Current returns the number of ticks already issued.
func (c *Clock) Current() int {
	return c.current
}

// Total returns the tick budget.
func (c *Clock) Total() int {
	return c.total
}

// Remaining returns how many ticks are left.
func (c *Clock) Remaining() int {
	return c.total - c.current
}

// Done reports whether every tick has been issued.
func (c *Clock) Done() bool {
	return c.current >= c.total
}
