// Package game assembles the reel machine, its background and panels onto one scheduler timeline
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/audio"
	"github.com/lixenwraith/reelspin/background"
	"github.com/lixenwraith/reelspin/config"
	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/metrics"
	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/reel"
	"github.com/lixenwraith/reelspin/render"
	"github.com/lixenwraith/reelspin/tween"
	"github.com/lixenwraith/reelspin/ui"
)

// Game owns every timeline component
// All methods run on the main loop goroutine
type Game struct {
	cfg config.Config
	log *zap.Logger

	sched   *engine.Scheduler
	tweens  *tween.Manager
	driver  *engine.FrameDriver
	session *engine.Session

	pool    *reel.Pool
	reels   *reel.ReelSet
	clouds  *background.Manager
	metrics *metrics.Metrics
	sound   Sound

	win      *ui.WinPanel
	balance  *ui.BalancePanel
	paytable *ui.Paytable
	button   *ui.Button

	width, height int
	mouseDown     bool
	stopTimer     *engine.Timer
}

// New builds the machine from a validated configuration
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		log:   zap.NewNop(),
		clock: engine.NewMonotonicTimeProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sound == nil {
		o.sound = &silence{muted: !cfg.Audio.Enabled}
	}

	g := &Game{
		cfg:     cfg,
		log:     o.log,
		sound:   o.sound,
		session: engine.NewSession(),
		win:     ui.NewWinPanel(),
		balance: ui.NewBalancePanel(cfg.Balance),
	}

	// Tween manager registers first so tweens apply before reels move in each step
	g.sched = engine.NewScheduler(cfg.Timing.Tick)
	g.tweens = tween.NewManager(g.sched)
	g.driver = engine.NewFrameDriver(g.sched, o.clock, parameter.MaxFrameDelta)

	rng := newRand(cfg.Seed)
	layout := cfg.ReelLayout()

	pool, err := reel.NewPool(cfg.Kinds(), layout.Reels, layout.Rows, rng)
	if err != nil {
		return nil, fmt.Errorf("creating symbol pool: %w", err)
	}
	g.pool = pool
	g.metrics = metrics.New(pool, g.sched.Now)

	listeners := reel.Listeners{g.win, audio.NewListener(g.sound), g.metrics, newLogListener(g.log)}
	listeners = append(listeners, o.listeners...)

	g.reels, err = reel.NewReelSet(pool, g.sched, g.tweens, g.session, layout,
		reel.WithLogger(g.log),
		reel.WithTiming(cfg.ReelTiming()),
		reel.WithListener(listeners),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reels: %w", err)
	}

	g.clouds = background.NewManager(g.sched, cloudConfig(cfg.Clouds), rng)
	g.clouds.EnableMovement(true)

	g.paytable = ui.NewPaytable(cfg.Kinds())
	g.button = ui.NewButton(parameter.ButtonLabel, parameter.ButtonHint, g.onButton)
	g.session.OnChange(func(_, to engine.SessionState) {
		g.button.SetEnabled(to == engine.StateStopped)
	})

	g.log.Info("game ready",
		zap.Int("reels", layout.Reels),
		zap.Int("rows", layout.Rows),
		zap.Int("symbols", len(cfg.Symbols)),
		zap.Uint64("seed", cfg.Seed),
	)
	return g, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func cloudConfig(c config.Clouds) background.Config {
	bc := background.DefaultConfig()
	bc.Count = c.Count
	bc.MinX, bc.MaxX = c.MinX, c.MaxX
	bc.MinY, bc.MaxY = c.MinY, c.MaxY
	bc.MinSpeed, bc.MaxSpeed = c.MinSpeed, c.MaxSpeed
	bc.MinScale, bc.MaxScale = c.MinScale, c.MaxScale
	return bc
}

// Scheduler returns the game timeline
func (g *Game) Scheduler() *engine.Scheduler { return g.sched }

// Session returns the STOPPED/SPINNING holder
func (g *Game) Session() *engine.Session { return g.session }

// Reels returns the reel set
func (g *Game) Reels() *reel.ReelSet { return g.reels }

// Pool returns the symbol pool
func (g *Game) Pool() *reel.Pool { return g.pool }

// Clouds returns the background field
func (g *Game) Clouds() *background.Manager { return g.clouds }

// Button returns the spin button
func (g *Game) Button() *ui.Button { return g.button }

// WinPanel returns the outcome panel
func (g *Game) WinPanel() *ui.WinPanel { return g.win }

// Metrics returns the spin collectors
func (g *Game) Metrics() *metrics.Metrics { return g.metrics }

// Paused reports whether the timeline is frozen
func (g *Game) Paused() bool { return g.driver.IsPaused() }

// Press starts a spin and schedules its stop after the dwell
// Refused unless the session is STOPPED
func (g *Game) Press() bool {
	if g.session.State() != engine.StateStopped || g.driver.IsPaused() {
		return false
	}
	if !g.reels.StartSpin() {
		return false
	}
	if g.stopTimer != nil {
		g.stopTimer.Stop()
	}
	g.stopTimer = g.sched.After(g.cfg.Timing.SpinDwell, func() {
		g.stopTimer = nil
		g.reels.StopSpin()
	})
	return true
}

func (g *Game) onButton() {
	if g.Press() {
		g.sound.PlayClick()
	}
}

// TogglePause freezes or resumes the timeline, returns the new paused state
func (g *Game) TogglePause() bool {
	paused := g.driver.TogglePause()
	if paused {
		g.sound.StopSpinLoop()
	} else if g.reels.Spinning() {
		g.sound.StartSpinLoop()
	}
	g.log.Debug("pause toggled", zap.Bool("paused", paused))
	return paused
}

// ToggleMute flips audio output, returns the new muted state
func (g *Game) ToggleMute() bool {
	return g.sound.ToggleMute()
}

// Resize re-lays out the screen and moves the button hit area
func (g *Game) Resize(width, height int) {
	g.width, g.height = width, height
	l := render.NewLayout(width, height, g.cfg.Layout.Reels, g.cfg.Layout.Rows)
	g.button.Bounds = l.ButtonRect(runewidth.StringWidth(g.button.Label))
}

// Frame advances the timeline by the real time since the previous frame
// and returns the context for drawing it
func (g *Game) Frame() render.RenderContext {
	g.driver.Frame()

	ctx := render.NewRenderContext(g.width, g.height, g.cfg.Layout.Reels, g.cfg.Layout.Rows)
	ctx.FrameNumber = g.driver.FrameNumber()
	ctx.IsPaused = g.driver.IsPaused()
	ctx.Muted = g.sound.Muted()
	return ctx
}

// Step advances the timeline by n ticks regardless of pause, used by headless runs
func (g *Game) Step(n int) {
	for i := 0; i < n; i++ {
		g.sched.Step()
	}
}

// RunFor steps until d of timeline time has passed
func (g *Game) RunFor(d time.Duration) {
	g.Step(int((d + g.sched.TickInterval() - 1) / g.sched.TickInterval()))
}

// Close stops pending work and returns every token to the pool
func (g *Game) Close() {
	if g.stopTimer != nil {
		g.stopTimer.Stop()
		g.stopTimer = nil
	}
	g.sound.StopSpinLoop()
	g.reels.Close()
	g.clouds.Close()
	g.tweens.Close()
}
