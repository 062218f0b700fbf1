package animation

import "time"

// FrameTimer invokes a callback once after a fixed delay. Unlike
// time.AfterFunc it is driven by the host's frame loop, so it observes
// the package [Clock] and fires on the first [StepTickers] pass at or
// after the deadline. This keeps delayed work on the same cooperative
// schedule as every other animation primitive.
type FrameTimer struct {
	delay    time.Duration
	callback func()
	ticker   *Ticker
}

// NewFrameTimer creates an unarmed timer. Call Start to arm it.
func NewFrameTimer(delay time.Duration, callback func()) *FrameTimer {
	return &FrameTimer{
		delay:    delay,
		callback: callback,
	}
}

// Start arms the timer. Starting an armed timer is a no-op.
func (ft *FrameTimer) Start() {
	if ft.ticker != nil {
		return
	}
	ft.ticker = NewTicker(func(elapsed time.Duration) {
		if elapsed < ft.delay {
			return
		}
		ft.Stop()
		if ft.callback != nil {
			ft.callback()
		}
	})
	ft.ticker.Start()
}

// Stop disarms the timer. A stopped timer's callback never fires.
// Stop is idempotent.
func (ft *FrameTimer) Stop() {
	if ft.ticker == nil {
		return
	}
	ft.ticker.Stop()
	ft.ticker = nil
}

// IsArmed reports whether the timer is waiting to fire.
func (ft *FrameTimer) IsArmed() bool {
	return ft.ticker != nil
}
