package testing

import (
	"time"

	"github.com/go-drift/sizetransition/pkg/animation"
)

// Pump advances the fake clock by frame and steps all active tickers,
// n times. This simulates the host's frame loop under test control.
func Pump(clock *FakeClock, n int, frame time.Duration) {
	for i := 0; i < n; i++ {
		clock.Advance(frame)
		animation.StepTickers()
	}
}

// PumpUntilSettled pumps frames until no tickers remain active, up to
// maxFrames. Returns true if everything settled within the budget.
func PumpUntilSettled(clock *FakeClock, frame time.Duration, maxFrames int) bool {
	for i := 0; i < maxFrames; i++ {
		if !animation.HasActiveTickers() {
			return true
		}
		clock.Advance(frame)
		animation.StepTickers()
	}
	return !animation.HasActiveTickers()
}
