package background

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/scene"
)

// Variants is the number of cloud art shapes
const Variants = 3

// Config bounds random cloud placement, scale bounds are in tenths
type Config struct {
	Count              int
	MinX, MaxX         int
	MinY, MaxY         int
	MinSpeed, MaxSpeed int
	MinScale, MaxScale int

	WorldWidth float64
	Bleed      float64
	Width      float64
}

// DefaultConfig returns the tuned cloud field
func DefaultConfig() Config {
	return Config{
		Count:      parameter.CloudCount,
		MinX:       parameter.CloudMinX,
		MaxX:       parameter.CloudMaxX,
		MinY:       parameter.CloudMinY,
		MaxY:       parameter.CloudMaxY,
		MinSpeed:   parameter.CloudMinSpeed,
		MaxSpeed:   parameter.CloudMaxSpeed,
		MinScale:   parameter.CloudMinScale,
		MaxScale:   parameter.CloudMaxScale,
		WorldWidth: parameter.WorldWidth,
		Bleed:      parameter.CloudBleed,
		Width:      parameter.CloudWidth,
	}
}

// Manager owns the cloud field and drifts it every scheduler tick
type Manager struct {
	scene.Node
	cfg    Config
	clouds []*Cloud
	cancel func()
}

// NewManager places cfg.Count clouds at random and starts them drifting
func NewManager(sched *engine.Scheduler, cfg Config, rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	m := &Manager{
		Node:   *scene.NewNode("clouds"),
		cfg:    cfg,
		clouds: make([]*Cloud, 0, max(cfg.Count, 0)),
	}
	for i := 0; i < cfg.Count; i++ {
		c := newCloud(i,
			rng.IntN(Variants),
			float64(randInt(rng, cfg.MinX, cfg.MaxX)),
			float64(randInt(rng, cfg.MinY, cfg.MaxY)),
			float64(randInt(rng, cfg.MinSpeed, cfg.MaxSpeed)),
			float64(randInt(rng, cfg.MinScale, cfg.MaxScale))/10,
		)
		m.AddChild(&c.Node)
		m.clouds = append(m.clouds, c)
	}

	m.cancel = sched.OnTick(func(time.Duration) { m.Update() })
	return m
}

// randInt draws floor(rand*hi)+lo, so results span lo..lo+hi-1 rather than lo..hi
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	return rng.IntN(hi) + lo
}

// Clouds returns the managed clouds
func (m *Manager) Clouds() []*Cloud { return m.clouds }

// EnableMovement starts or freezes every cloud
func (m *Manager) EnableMovement(on bool) {
	for _, c := range m.clouds {
		c.SetMoving(on)
	}
}

// Update drifts every cloud once
func (m *Manager) Update() {
	for _, c := range m.clouds {
		c.Update(m.cfg.WorldWidth, m.cfg.Bleed, m.cfg.Width)
	}
}

// Close detaches the field from the scheduler
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
