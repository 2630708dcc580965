package hal

import "time"

const tickDur = time.Millisecond

// hostTime converts wall-clock progress between frames into millisecond ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step() { t.advance(time.Now()) }

// advance emits one tick per elapsed millisecond since the previous call.
// The first call emits a single tick.
func (t *hostTime) advance(now time.Time) {
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now

	n := uint64(t.acc / tickDur)
	if n == 0 {
		return
	}
	t.acc %= tickDur
	t.emit(n)
}

// emit drops ticks the consumer has not drained; only the latest sequence
// number matters to readers.
func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
