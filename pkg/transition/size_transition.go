// Package transition implements a container that animates its size and
// opacity to follow dynamically changing content, including content that
// disappears entirely and reappears.
//
// The package is framework-independent: the host's render loop feeds it
// content and layout measurements, and reads back an animated style each
// frame. See [State] for the protocol.
package transition

import (
	"fmt"

	"github.com/go-drift/sizetransition/pkg/animation"
	"github.com/go-drift/sizetransition/pkg/core"
	"github.com/go-drift/sizetransition/pkg/platform"
)

// Axis selects which dimension the transition drives. The other
// dimension is left to normal layout.
type Axis int

const (
	// AxisVertical drives the container's height.
	AxisVertical Axis = iota
	// AxisHorizontal drives the container's width.
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Phase is the direction of the most recently started visibility
// transition. It is set synchronously when a transition starts, before
// the animation begins advancing, and says nothing about the
// instantaneous progress value.
type Phase int

const (
	// PhaseEntering means the container is showing (or fully shown).
	PhaseEntering Phase = iota
	// PhaseExiting means the container is hiding (or fully hidden).
	PhaseExiting
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseExiting:
		return "exiting"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ResizePolicy decides whether a content resize animates or snaps.
// It receives the newly measured length and the current length.
type ResizePolicy func(newLength, oldLength float64) bool

// ResizeAlways animates every content resize.
func ResizeAlways(newLength, oldLength float64) bool { return true }

// Ranges holds the visibility-progress breakpoints of the style
// derivation. The defaults are tuned constants, not derived values;
// override them through [SizeTransition.Ranges] if a different overlap
// is needed.
type Ranges struct {
	// SizeLeadEnd is the progress at which size is fully grown when
	// SizeFirst is set. Size animates through [0, SizeLeadEnd].
	SizeLeadEnd float64
	// OpacityLagStart is the progress at which opacity starts following
	// when SizeFirst is set. Opacity animates through [OpacityLagStart, 1].
	OpacityLagStart float64
	// OpacityFadeStart offsets opacity when SizeFirst is not set, so a
	// nearly-collapsed container does not show a ghost of its content.
	// Opacity animates through [OpacityFadeStart, 1].
	OpacityFadeStart float64
}

// DefaultRanges are the breakpoints used when SizeTransition.Ranges is nil.
var DefaultRanges = Ranges{
	SizeLeadEnd:      0.6,
	OpacityLagStart:  0.4,
	OpacityFadeStart: 0.3,
}

// SizeTransition is the immutable per-render configuration of a size
// transition container. Pass it to [NewState] once, then to
// [State.Update] on every subsequent render cycle.
type SizeTransition struct {
	// Child is the content payload. Nil (or whatever Present rejects)
	// means no content, which triggers the exit transition.
	Child any
	// Axis selects the driven dimension.
	Axis Axis
	// Motion is the animation config for visibility and resize runs.
	Motion animation.Config
	// AnimateResize decides whether content resizes animate. Nil means
	// resizes snap to the new length without animating.
	AnimateResize ResizePolicy
	// SizeFirst makes size lead and opacity follow during transitions.
	// When false, size and opacity track progress together.
	SizeFirst bool
	// Ranges overrides the style breakpoints. Nil uses DefaultRanges.
	Ranges *Ranges
	// Present overrides the content presence test. Nil means non-nil
	// children are present.
	Present func(child any) bool
}

func (w SizeTransition) present() func(any) bool {
	if w.Present != nil {
		return w.Present
	}
	return func(child any) bool { return child != nil }
}

func (w SizeTransition) ranges() Ranges {
	if w.Ranges != nil {
		return *w.Ranges
	}
	return DefaultRanges
}

// Style is the rendered appearance of the container for one frame.
type Style struct {
	// Opacity in [0, 1].
	Opacity float64
	// Length is the driven dimension's extent in layout units.
	Length float64
	// Axis says which dimension Length applies to.
	Axis Axis
}

// State is the live state machine behind a size transition container.
//
// The host owns one State per container and calls, from its main
// context only:
//
//   - [State.Update] once per render cycle with the current config,
//   - [State.HandleLayout] whenever the content subtree is measured,
//   - [State.Style] and [State.Child] when drawing a frame,
//   - [State.Dispose] when the container goes away.
//
// Animated values advance on the frame pump ([animation.StepTickers]);
// the exit-completion cleanup is marshaled back to the main context
// through the platform dispatch.
type State struct {
	core.ChangeNotifier

	widget     SizeTransition
	hasContent bool
	phase      Phase

	visibility *animation.Value
	length     *animation.Value
	cell       *core.PersistedCell[any]

	dispatch func(func())
	unsubs   []func()
}

// NewState mounts a container with its initial config. When content is
// present at mount the container starts fully shown; no animation runs.
func NewState(w SizeTransition) *State {
	s := &State{
		widget:   w,
		phase:    PhaseExiting,
		cell:     core.NewPersistedCell[any](w.present()),
		dispatch: platform.DispatchOrRun,
	}
	progress := 0.0
	if w.present()(w.Child) {
		s.hasContent = true
		s.phase = PhaseEntering
		s.cell.Current(w.Child)
		progress = 1
	}
	s.visibility = animation.NewValue(progress)
	s.length = animation.NewValue(0)

	forward := func() { s.NotifyListeners() }
	s.unsubs = append(s.unsubs,
		s.visibility.AddListener(forward),
		s.length.AddListener(forward),
		s.cell.AddListener(forward),
	)
	return s
}

// Update applies the config for the current render cycle. A change in
// content presence since the previous cycle starts a visibility
// transition; an unchanged presence only refreshes the config.
func (s *State) Update(w SizeTransition) {
	s.widget = w
	present := w.present()
	if present(w.Child) {
		s.cell.Current(w.Child)
	}

	has := present(w.Child)
	if has == s.hasContent {
		return
	}
	s.hasContent = has

	if has {
		s.phase = PhaseEntering
		s.visibility.AnimateTo(1, w.Motion, nil)
		return
	}

	s.phase = PhaseExiting
	s.visibility.AnimateTo(0, w.Motion, func(finished bool) {
		if !finished {
			return
		}
		// The persisted content may only be dropped once the collapse
		// has visually completed, and only on the main context.
		s.dispatch(s.cell.Reset)
	})
}

// HandleLayout feeds a measured content length into the container.
// The first measurement after the container was empty snaps directly so
// content does not visibly grow from zero on its initial layout pass;
// later resizes animate when the resize policy allows it.
func (s *State) HandleLayout(measured float64) {
	// Measurements come from rendered content; anything arriving while
	// neither live nor persisted content renders is dropped.
	if !s.hasContent && !s.cell.Has() {
		return
	}
	if measured < 0 {
		measured = 0
	}
	current := s.length.Value()
	if measured == current {
		return
	}
	policy := s.widget.AnimateResize
	if current == 0 || policy == nil || !policy(measured, current) {
		s.length.Set(measured)
		return
	}
	s.length.AnimateTo(measured, s.widget.Motion, nil)
}

// Style derives the container's rendered opacity and length from the
// current visibility progress and measured length. Pure; call it every
// frame.
func (s *State) Style() Style {
	w := s.widget
	r := w.ranges()
	progress := s.visibility.Value()
	length := s.length.Value()

	var sizeRange, opacityRange []float64
	if w.SizeFirst {
		sizeRange = []float64{0, r.SizeLeadEnd}
		opacityRange = []float64{r.OpacityLagStart, 1}
	} else {
		sizeRange = []float64{0, 1}
		opacityRange = []float64{r.OpacityFadeStart, 1}
	}

	return Style{
		Axis:    w.Axis,
		Opacity: animation.Interpolate(progress, opacityRange, []float64{0, 1}, animation.ExtrapolateClamp),
		Length:  animation.Interpolate(progress, sizeRange, []float64{0, length}, animation.ExtrapolateClamp),
	}
}

// Child returns what the host should render and measure: the live
// content when present, otherwise the persisted copy kept alive for the
// exit animation. Nil once the exit has completed and the cell was reset.
func (s *State) Child() any {
	return s.cell.Read(s.widget.Child)
}

// Phase returns the direction of the most recent visibility transition.
func (s *State) Phase() Phase {
	return s.phase
}

// Progress returns the current visibility progress in [0, 1].
func (s *State) Progress() float64 {
	return s.visibility.Value()
}

// IsAnimating returns true while visibility or length is animating.
func (s *State) IsAnimating() bool {
	return s.visibility.IsAnimating() || s.length.IsAnimating()
}

// Dispose releases the state's animated values and listeners.
// In-flight runs are interrupted; their settle callbacks fire with
// finished=false, so no reset is triggered by disposal.
func (s *State) Dispose() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	s.visibility.Dispose()
	s.length.Dispose()
}
