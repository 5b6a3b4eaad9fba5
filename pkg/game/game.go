// Package game ties the input sampler, the first-person controller, the maze
// geometry and the session together and advances them one frame at a time.
package game

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/leterax/go-maze/internal/config"
	"github.com/leterax/go-maze/pkg/input"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/leterax/go-maze/pkg/player"
	"github.com/leterax/go-maze/pkg/session"
	"github.com/leterax/go-maze/pkg/world"
)

// Game is the application context. It is created once at startup and owned by
// whatever runs the frame loop; Step must be called from that loop only.
type Game struct {
	cfg    config.Config
	log    logrus.FieldLogger
	layout *maze.Layout
	world  *world.World

	input      *input.Sampler
	controller *player.Controller
	session    *session.Session

	// notifier presents wins to the player, may be nil
	notifier session.Notifier

	frames uint64
}

// New builds the world from layout and places the player at its spawn.
// A nil layout uses the built-in maze.
func New(cfg config.Config, layout *maze.Layout, log logrus.FieldLogger) (*Game, error) {
	if layout == nil {
		layout = maze.Default()
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	if err := layout.Validate(); err != nil {
		return nil, err
	}
	wld, err := layout.Build()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		layout:  layout,
		world:   wld,
		input:   input.NewSampler(cfg.Window.Width, cfg.Window.Height),
		session: session.New(log),
	}

	goal := player.Goal{Center: layout.Win.Center, Radius: layout.Win.Radius}
	g.controller = player.New(cfg.Controller.PlayerConfig(), g.input, wld, layout.Spawn, goal)
	g.controller.SetViewport(cfg.Window.Width, cfg.Window.Height)
	g.controller.OnWin.AddListener(g.handleWin)

	if g.controller.Collides(layout.Spawn) {
		log.WithField("spawn", layout.Spawn).Warn("Spawn point overlaps geometry")
	}

	log.WithFields(logrus.Fields{
		"maze":        layout.Name,
		"boxes":       wld.Len(),
		"fingerprint": fmt.Sprintf("%016x", wld.Fingerprint()),
		"session":     g.session.ID(),
	}).Info("Game created")

	return g, nil
}

// handleWin is called by the controller when the player enters the goal
func (g *Game) handleWin(w player.Win) {
	if !g.session.Win() {
		return
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "session",
		Message:  "goal reached",
		Level:    sentry.LevelInfo,
		Data: map[string]interface{}{
			"session":  g.session.ID().String(),
			"distance": w.Distance,
		},
	})
}

// Step advances the game by dt seconds and returns the camera pose to render.
// While the session is won the controller is frozen but the pose is still returned.
func (g *Game) Step(dt float32) player.Pose {
	g.frames++
	g.input.Drain()

	if g.session.Playing() {
		g.controller.Update(dt)
	}

	// the controller has read this frame's deltas
	g.input.Update(dt)

	g.dispatchNotices()
	return g.controller.Pose()
}

// dispatchNotices forwards pending win notices without blocking
func (g *Game) dispatchNotices() {
	for {
		select {
		case n := <-g.session.Notices():
			if g.notifier != nil {
				g.notifier.NotifyWin(n)
			}
		default:
			return
		}
	}
}

// Acknowledge ends a won session: the session restarts and the player goes
// back to the spawn point. It returns false while the session is still playing.
func (g *Game) Acknowledge() bool {
	if g.session.Playing() {
		return false
	}
	g.session.Reset()
	g.controller.Reset(g.layout.Spawn)
	return true
}

// SetNotifier sets the UI that presents wins
func (g *Game) SetNotifier(n session.Notifier) {
	g.notifier = n
}

// Resize updates the viewport used for pointer centring and look sensitivity
func (g *Game) Resize(width, height int) {
	g.input.SetViewport(width, height)
	g.controller.SetViewport(width, height)
}

// Input returns the sampler event sources push into
func (g *Game) Input() *input.Sampler {
	return g.input
}

func (g *Game) Controller() *player.Controller {
	return g.controller
}

func (g *Game) Session() *session.Session {
	return g.session
}

func (g *Game) World() *world.World {
	return g.world
}

func (g *Game) Layout() *maze.Layout {
	return g.layout
}

// Frames returns the number of steps taken
func (g *Game) Frames() uint64 {
	return g.frames
}

// Spawn returns the layout's spawn point
func (g *Game) Spawn() mgl32.Vec3 {
	return g.layout.Spawn
}
