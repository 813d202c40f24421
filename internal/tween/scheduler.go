package tween

import "time"

// Scheduler is the shared animation clock. Every Tick advances all active
// states once. It is not safe for concurrent use; all calls are expected
// from the single loop that owns the display.
type Scheduler struct {
	active []*State
	ticks  uint64
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start begins tweening st toward to. An in-flight tween on st is cancelled
// and the new one continues from st's current value. The tween is anchored
// at the next Tick, so Start never changes what is on screen.
func (sc *Scheduler) Start(st *State, to float64) {
	if !st.active {
		sc.active = append(sc.active, st)
	}
	st.retarget(to)
}

// Cancel stops st where it is.
func (sc *Scheduler) Cancel(st *State) {
	if !st.active {
		return
	}
	st.settle()
	sc.compact()
}

// Tick advances every active state to now and returns how many are still
// animating.
func (sc *Scheduler) Tick(now time.Time) int {
	sc.ticks++
	for _, st := range sc.active {
		st.advance(now)
	}
	sc.compact()
	return len(sc.active)
}

// Active returns the number of animating states.
func (sc *Scheduler) Active() int {
	return len(sc.active)
}

// Ticks returns how many frames have been processed.
func (sc *Scheduler) Ticks() uint64 {
	return sc.ticks
}

func (sc *Scheduler) compact() {
	n := 0
	for _, st := range sc.active {
		if st.active {
			sc.active[n] = st
			n++
		}
	}
	for i := n; i < len(sc.active); i++ {
		sc.active[i] = nil
	}
	sc.active = sc.active[:n]
}
