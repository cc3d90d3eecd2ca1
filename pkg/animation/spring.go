package animation

import "math"

// SpringDescription defines the physical parameters of a damped spring.
type SpringDescription struct {
	// Mass of the attached object.
	Mass float64
	// Stiffness is the spring constant.
	Stiffness float64
	// Damping is the viscous damping coefficient.
	Damping float64
}

// IOSSpring returns the spring used for iOS-style snapping and bounce-back.
func IOSSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 170, Damping: 26}
}

// BouncySpring returns an underdamped spring with visible overshoot.
func BouncySpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 120, Damping: 14}
}

const (
	// restDisplacement and restSpeed are the thresholds below which a
	// simulation is considered settled and snaps to its target.
	restDisplacement = 1e-3
	restSpeed        = 1e-3

	// maxSpringSubstep keeps the integration stable for stiff springs
	// even when the host frame rate stalls.
	maxSpringSubstep = 1.0 / 240
)

// SpringSimulation advances a damped spring toward a target position.
//
// The simulation is stepped with wall-clock deltas, typically once per
// frame. When both displacement and speed drop below rest thresholds the
// position snaps to the target exactly and the simulation reports done.
type SpringSimulation struct {
	desc     SpringDescription
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity, heading toward target.
func NewSpringSimulation(desc SpringDescription, position, velocity, target float64) *SpringSimulation {
	if desc.Mass <= 0 {
		desc.Mass = 1
	}
	s := &SpringSimulation{
		desc:     desc,
		position: position,
		velocity: velocity,
		target:   target,
	}
	s.checkRest()
	return s
}

// Step advances the simulation by dt seconds and returns true once the
// spring has settled at its target. Step is a no-op after settling.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}
	// Semi-implicit Euler with substepping for stability.
	for dt > 0 && !s.done {
		h := dt
		if h > maxSpringSubstep {
			h = maxSpringSubstep
		}
		dt -= h

		displacement := s.position - s.target
		accel := (-s.desc.Stiffness*displacement - s.desc.Damping*s.velocity) / s.desc.Mass
		s.velocity += accel * h
		s.position += s.velocity * h
		s.checkRest()
	}
	return s.done
}

func (s *SpringSimulation) checkRest() {
	if math.Abs(s.position-s.target) < restDisplacement && math.Abs(s.velocity) < restSpeed {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// IsDone returns true once the spring has settled at its target.
func (s *SpringSimulation) IsDone() bool {
	return s.done
}
