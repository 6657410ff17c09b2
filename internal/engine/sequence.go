package engine

import "time"

// step is one beat of a narrative sequence: do runs, then the sequence
// waits hold before the next beat.
type step struct {
	do   func(t *tx)
	hold time.Duration
}

func outage(text string, hold time.Duration) step {
	return step{do: func(t *tx) { t.s().OutageText = text }, hold: hold}
}

// sequence replaces whatever sequence is running and plays the first beats.
func (t *tx) sequence(steps ...step) {
	t.m.pending = append([]step(nil), steps...)
	t.cancel(TimerSequence)
	t.advance()
}

// advance runs beats until one needs to wait.
func (t *tx) advance() {
	for len(t.m.pending) > 0 {
		st := t.m.pending[0]
		t.m.pending = t.m.pending[1:]
		if st.do != nil {
			st.do(t)
		}
		if st.hold > 0 {
			t.schedule(TimerSequence, st.hold)
			return
		}
	}
}

// halt drops the running sequence.
func (t *tx) halt() {
	t.m.pending = nil
	t.cancel(TimerSequence)
}
