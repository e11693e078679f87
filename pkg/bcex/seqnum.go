package bcex

// seqResult classifies one inbound sequence number against the counter.
type seqResult uint8

const (
	// seqAccept: the expected next number (or the first of the session),
	// counter advanced.
	seqAccept seqResult = iota
	// seqDelayed: duplicate or out-of-order old frame. Counter untouched, the
	// frame is still dispatched.
	seqDelayed
	// seqGap: one or more frames were missed. There is no resume protocol, so
	// the session must terminate rather than run on stale state.
	seqGap
)

// sequenceGuard tracks the highest contiguous sequence number of the session.
// Only the receive loop touches it.
type sequenceGuard struct {
	last    int64
	started bool
}

func (g *sequenceGuard) check(seq int64) seqResult {
	if !g.started {
		g.started = true
		g.last = seq
		return seqAccept
	}
	switch {
	case seq == g.last+1:
		g.last = seq
		return seqAccept
	case seq > g.last+1:
		return seqGap
	default:
		return seqDelayed
	}
}

// missingRange is the inclusive range of sequence numbers lost when check
// returned seqGap for seq.
func (g *sequenceGuard) missingRange(seq int64) (from, to int64) {
	return g.last + 1, seq - 1
}
