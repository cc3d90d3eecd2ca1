// Command sizedemo is an interactive host for the size transition
// container. It plays the rendering/layout collaborator: its update
// loop pumps the animation tickers, drains main-context dispatches,
// reports content measurements, and draws the container from the
// animated style.
//
// Controls:
//
//	space  toggle content presence
//	r      resize the content while visible
//	s      switch between spring and timed motion
package main

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/sizetransition/pkg/animation"
	"github.com/go-drift/sizetransition/pkg/platform"
	"github.com/go-drift/sizetransition/pkg/transition"
)

const (
	screenWidth  = 480
	screenHeight = 360

	panelX     = 80
	panelY     = 60
	panelWidth = 320
)

// panel is the content payload: a colored block with an intrinsic height.
type panel struct {
	height float64
	fill   color.RGBA
}

var (
	springMotion = animation.Config{Mass: 1, Stiffness: 180, Damping: 22}
	timedMotion  = animation.Config{Duration: 300 * time.Millisecond, Curve: animation.EaseInOut}
)

type game struct {
	state *transition.State

	showing bool
	content panel
	spring  bool

	queueMu sync.Mutex
	queue   []func()
}

func newGame() *game {
	g := &game{
		showing: true,
		spring:  true,
		content: panel{height: 120, fill: color.RGBA{R: 66, G: 133, B: 244, A: 255}},
	}
	platform.RegisterDispatch(g.enqueue)
	g.state = transition.NewState(g.widget())
	return g
}

// enqueue collects dispatched callbacks; Update drains them on the
// game loop goroutine, which is this host's main context.
func (g *game) enqueue(cb func()) {
	g.queueMu.Lock()
	g.queue = append(g.queue, cb)
	g.queueMu.Unlock()
}

func (g *game) drainDispatches() {
	g.queueMu.Lock()
	pending := g.queue
	g.queue = nil
	g.queueMu.Unlock()
	for _, cb := range pending {
		cb()
	}
}

func (g *game) widget() transition.SizeTransition {
	motion := timedMotion
	if g.spring {
		motion = springMotion
	}
	w := transition.SizeTransition{
		Axis:          transition.AxisVertical,
		Motion:        motion,
		AnimateResize: transition.ResizeAlways,
		SizeFirst:     true,
	}
	if g.showing {
		w.Child = g.content
	}
	return w
}

func (g *game) Update() error {
	g.drainDispatches()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.showing = !g.showing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.showing {
		if g.content.height == 120 {
			g.content.height = 200
		} else {
			g.content.height = 120
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.spring = !g.spring
	}

	g.state.Update(g.widget())

	// The rendered child (live or persisted) reports its measurement.
	if child, ok := g.state.Child().(panel); ok {
		g.state.HandleLayout(child.height)
	}

	animation.StepTickers()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 32, A: 255})

	style := g.state.Style()
	if child, ok := g.state.Child().(panel); ok && style.Length > 0 {
		// Premultiplied alpha: scale the channels along with A.
		fill := color.RGBA{
			R: uint8(float64(child.fill.R) * style.Opacity),
			G: uint8(float64(child.fill.G) * style.Opacity),
			B: uint8(float64(child.fill.B) * style.Opacity),
			A: uint8(255 * style.Opacity),
		}
		vector.DrawFilledRect(screen, panelX, panelY, panelWidth, float32(style.Length), fill, false)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"space: toggle   r: resize   s: motion (%s)\nphase: %s  progress: %.2f  length: %.0f",
		motionName(g.spring), g.state.Phase(), g.state.Progress(), style.Length))
}

func motionName(spring bool) string {
	if spring {
		return "spring"
	}
	return "timed"
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("size transition demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
