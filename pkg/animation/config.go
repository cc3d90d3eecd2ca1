package animation

import (
	"math"
	"time"
)

// DefaultDuration is used by the duration driver when Config.Duration is unset.
const DefaultDuration = 300 * time.Millisecond

// Default spring parameters, applied when the corresponding Config field
// is unset on a spring-shaped config.
const (
	defaultSpringMass      = 1.0
	defaultSpringStiffness = 100.0
	defaultSpringDamping   = 10.0
)

// Config describes the motion of a single animation run.
//
// A config is either spring-shaped or duration-shaped. It is spring-shaped
// when Mass or DampingRatio is set; everything else runs the duration
// driver, including configs that set only Stiffness or Damping. That
// fallback is deliberate: a wrong curve degrades the visuals, a rejected
// config would break the UI.
//
//	// spring
//	animation.Config{Mass: 1, Damping: 25, Stiffness: 100}
//
//	// timed curve
//	animation.Config{Duration: 300 * time.Millisecond, Curve: animation.Ease}
//
// A Config is immutable for the duration of a run; the shape is resolved
// once when the run starts, not re-inspected per frame.
type Config struct {
	// Mass of the spring's attached object. Setting this marks the config
	// spring-shaped.
	Mass float64
	// Stiffness is the spring constant. Defaults to 100 on spring configs.
	Stiffness float64
	// Damping is the viscous damping coefficient. Defaults to 10 on spring
	// configs. Ignored when DampingRatio is set.
	Damping float64
	// DampingRatio expresses damping relative to critical damping
	// (1 = critically damped). Setting this marks the config spring-shaped.
	DampingRatio float64

	// Duration of the timed curve. Defaults to DefaultDuration.
	Duration time.Duration
	// Curve eases the timed progress. Defaults to Ease.
	Curve func(float64) float64
}

// IsSpring reports whether the config selects the spring driver.
func (c Config) IsSpring() bool {
	return c.Mass != 0 || c.DampingRatio != 0
}

// spring resolves the config into a full spring description,
// filling unset fields with defaults.
func (c Config) spring() SpringDescription {
	mass := c.Mass
	if mass <= 0 {
		mass = defaultSpringMass
	}
	stiffness := c.Stiffness
	if stiffness <= 0 {
		stiffness = defaultSpringStiffness
	}
	damping := c.Damping
	if c.DampingRatio > 0 {
		damping = 2 * c.DampingRatio * math.Sqrt(stiffness*mass)
	}
	if damping <= 0 {
		damping = defaultSpringDamping
	}
	return SpringDescription{Mass: mass, Stiffness: stiffness, Damping: damping}
}

// duration returns the effective duration for the timed driver.
func (c Config) duration() time.Duration {
	if c.Duration <= 0 {
		return DefaultDuration
	}
	return c.Duration
}

// curve returns the effective easing for the timed driver.
func (c Config) curve() func(float64) float64 {
	if c.Curve == nil {
		return Ease
	}
	return c.Curve
}
