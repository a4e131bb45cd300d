// Package metrics exports spin statistics to prometheus on a private registry
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lixenwraith/reelspin/reel"
)

const (
	namespace   = "reelspin"
	labelSymbol = "symbol"
	labelReel   = "reel"
)

// PoolStats is the read side of the symbol pool sampled after every spin
type PoolStats interface {
	Kinds() []reel.Kind
	IdleCount(kindID int) int
	InPlayCount(kindID int) int
}

// Metrics records reel set events
// Callbacks run on the game timeline, collectors are read concurrently by the HTTP handler
type Metrics struct {
	reel.NopListener

	registry *prometheus.Registry
	pool     PoolStats
	now      func() time.Duration

	spins        prometheus.Counter
	winningSpins prometheus.Counter
	wins         *prometheus.CounterVec
	settle       *prometheus.HistogramVec
	spinDuration prometheus.Histogram
	poolIdle     *prometheus.GaugeVec
	poolInPlay   *prometheus.GaugeVec

	spinStart time.Duration
	requested map[int]time.Duration
}

// New registers all collectors, now reads timeline time and pool may be nil
func New(pool PoolStats, now func() time.Duration) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry:  reg,
		pool:      pool,
		now:       now,
		requested: make(map[int]time.Duration),

		spins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "spins_total", Help: "Spins started",
		}),
		winningSpins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "winning_spins_total", Help: "Spins with at least one matched symbol",
		}),
		wins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "symbol_wins_total", Help: "Matched symbols by kind",
		}, []string{labelSymbol}),
		settle: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "reel_settle_seconds", Help: "Timeline time from stop request to settled",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 12),
		}, []string{labelReel}),
		spinDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "spin_duration_seconds", Help: "Timeline time from spin start to idle, presentation included",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		poolIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "pool_idle_tokens", Help: "Idle symbol tokens by kind",
		}, []string{labelSymbol}),
		poolInPlay: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "pool_in_play_tokens", Help: "Symbol tokens held by reels by kind",
		}, []string{labelSymbol}),
	}

	reg.MustRegister(
		m.spins, m.winningSpins, m.wins, m.settle, m.spinDuration, m.poolIdle, m.poolInPlay,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.samplePool()
	return m
}

// Registry returns the private registry for exposition
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) SpinStarted(string) {
	m.spins.Inc()
	m.spinStart = m.now()
	clear(m.requested)
}

func (m *Metrics) ReelStopRequested(reelIndex int, at time.Duration) {
	m.requested[reelIndex] = at
}

func (m *Metrics) ReelSettled(reelIndex int, at time.Duration) {
	from, ok := m.requested[reelIndex]
	if !ok {
		return
	}
	m.settle.WithLabelValues(strconv.Itoa(reelIndex)).Observe((at - from).Seconds())
}

func (m *Metrics) SpinResolved(_ string, _ [][]string, wins []reel.Win) {
	if len(wins) > 0 {
		m.winningSpins.Inc()
	}
	for _, w := range wins {
		m.wins.WithLabelValues(w.Symbol).Inc()
	}
}

func (m *Metrics) SpinFinished(string) {
	m.spinDuration.Observe((m.now() - m.spinStart).Seconds())
	m.samplePool()
}

func (m *Metrics) samplePool() {
	if m.pool == nil {
		return
	}
	for _, k := range m.pool.Kinds() {
		m.poolIdle.WithLabelValues(k.Name).Set(float64(m.pool.IdleCount(k.ID)))
		m.poolInPlay.WithLabelValues(k.Name).Set(float64(m.pool.InPlayCount(k.ID)))
	}
}
