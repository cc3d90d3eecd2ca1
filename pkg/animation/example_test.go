package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/sizetransition/pkg/animation"
)

// This example shows how a config's shape selects the driver.
func ExampleConfig_IsSpring() {
	spring := animation.Config{Mass: 1, Damping: 25, Stiffness: 100}
	timed := animation.Config{Duration: 300 * time.Millisecond, Curve: animation.Ease}

	fmt.Println(spring.IsSpring())
	fmt.Println(timed.IsSpring())

	// Output:
	// true
	// false
}

// This example shows how to animate a live value on a frame loop.
func ExampleValue() {
	visibility := animation.NewValue(0)

	visibility.AnimateTo(1, animation.Config{Duration: 300 * time.Millisecond}, func(finished bool) {
		_ = finished // true on settle, false when superseded
	})

	// Each frame, the host pumps active tickers and reads the value:
	animation.StepTickers()
	_ = visibility.Value()

	visibility.Dispose()
}

// This example shows how to use spring physics for natural motion.
func ExampleSpringSimulation() {
	spring := animation.BouncySpring()
	sim := animation.NewSpringSimulation(
		spring,
		0,   // current position
		500, // initial velocity (e.g., from a fling gesture)
		300, // target position
	)

	// Step the simulation (typically done each frame)
	dt := 0.016 // ~60fps
	for !sim.Step(dt) {
	}

	fmt.Printf("Final position: %.0f\n", sim.Position())

	// Output:
	// Final position: 300
}

// This example shows how to map progress through breakpoints.
func ExampleInterpolate() {
	// Size leads: fully grown at progress 0.6.
	length := animation.Interpolate(0.3, []float64{0, 0.6}, []float64{0, 120}, animation.ExtrapolateClamp)
	fmt.Printf("Length at 0.3: %.0f\n", length)

	// Output:
	// Length at 0.3: 60
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	// The curve transforms linear progress to eased progress
	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
