package dtn

// Stats summarizes a run so far.
type Stats struct {
	Ticks         int     `json:"ticks"`
	TotalMessages int     `json:"totalMessages"`
	Delivered     int     `json:"delivered"`
	DeliveryRatio float64 `json:"deliveryRatio"`

	// AverageLatency is the mean number of ticks elapsed until delivery.
	AverageLatency float64 `json:"averageLatency"`

	// AverageHops is the mean hop count of delivered messages.
	AverageHops float64 `json:"averageHops"`

	Passes         int `json:"passes"`
	ActiveContacts int `json:"activeContacts"`
	PeakContacts   int `json:"peakContacts"`
}

type counters struct {
	passes       int
	lastContacts int
	peakContacts int
}

func (c *counters) observe(ev TickEvent) {
	for _, r := range ev.Relays {
		if r.Type == EventPass {
			c.passes++
		}
	}
	c.lastContacts = len(ev.Contacts)
	if c.lastContacts > c.peakContacts {
		c.peakContacts = c.lastContacts
	}
}

func computeStats(ticks int, store *MessageStore, c counters) Stats {
	st := Stats{
		Ticks:          ticks,
		TotalMessages:  store.Len(),
		Passes:         c.passes,
		ActiveContacts: c.lastContacts,
		PeakContacts:   c.peakContacts,
	}

	var latency, hops int
	for _, m := range store.messages {
		if !m.Delivered {
			continue
		}
		st.Delivered++
		latency += m.DeliveredAt + 1
		hops += m.Hops
	}

	if st.TotalMessages > 0 {
		st.DeliveryRatio = float64(st.Delivered) / float64(st.TotalMessages)
	}
	if st.Delivered > 0 {
		st.AverageLatency = float64(latency) / float64(st.Delivered)
		st.AverageHops = float64(hops) / float64(st.Delivered)
	}
	return st
}
