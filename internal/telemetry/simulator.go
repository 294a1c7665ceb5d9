package telemetry

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/five82/floorboard/internal/floor"
	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/state"
)

// Element ids written by the simulator.
const (
	ClockID      = "current-time"
	ProductionID = "realtime-prod"
	CPUID        = "cpu-load"
)

// ClockLayout formats the header clock.
const ClockLayout = "2006-01-02 15:04:05"

// Ambient is one canned background log line.
type Ambient struct {
	Severity logsink.Severity
	Message  string
}

// AmbientMessages is the set of background log lines picked from at random.
var AmbientMessages = []Ambient{
	{logsink.SeverityInfo, "PLC heartbeat received from Line 1"},
	{logsink.SeverityInfo, "Quality inspection batch uploaded"},
	{logsink.SeverityInfo, "MES database sync completed"},
	{logsink.SeverityWarn, "Line 2 cycle time above target"},
	{logsink.SeverityWarn, "Welding station temperature high"},
}

// Config tunes the simulated feeds.
type Config struct {
	ClockEvery        time.Duration
	WIPEvery          time.Duration
	AmbientMin        time.Duration
	AmbientMax        time.Duration
	ProductionChance  float64
	InitialProduction int64
	Stations          []floor.Station
}

// DefaultConfig returns the stock cadence: clock every second, WIP every four
// and ambient events every two to three seconds.
func DefaultConfig() Config {
	return Config{
		ClockEvery:        time.Second,
		WIPEvery:          4 * time.Second,
		AmbientMin:        2 * time.Second,
		AmbientMax:        3 * time.Second,
		ProductionChance:  0.3,
		InitialProduction: 1284,
		Stations:          floor.Stations(),
	}
}

// Simulator moves the dashboard's numeric fields. It never touches plans or
// navigation state.
type Simulator struct {
	target state.Target
	sink   logsink.Sink
	cfg    Config
	now    func() time.Time

	mu         sync.Mutex
	rng        *rand.Rand
	production int64
	stations   []floor.Station
	cpu        int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithClock overrides the time source used for the header clock.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// WithRand sets the random source. Tests pass a seeded PCG.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// NewSimulator returns a simulator writing to target and sink. Zero periods
// and a nil station list take their defaults.
func NewSimulator(target state.Target, sink logsink.Sink, cfg Config, opts ...Option) *Simulator {
	def := DefaultConfig()
	if cfg.ClockEvery <= 0 {
		cfg.ClockEvery = def.ClockEvery
	}
	if cfg.WIPEvery <= 0 {
		cfg.WIPEvery = def.WIPEvery
	}
	if cfg.AmbientMin <= 0 {
		cfg.AmbientMin = def.AmbientMin
	}
	if cfg.AmbientMax < cfg.AmbientMin {
		cfg.AmbientMax = max(def.AmbientMax, cfg.AmbientMin)
	}
	if cfg.ProductionChance < 0 || cfg.ProductionChance > 1 {
		cfg.ProductionChance = def.ProductionChance
	}
	if cfg.Stations == nil {
		cfg.Stations = def.Stations
	}

	s := &Simulator{
		target:     target,
		sink:       sink,
		cfg:        cfg,
		now:        time.Now,
		production: max(cfg.InitialProduction, 0),
		stations:   append([]floor.Station(nil), cfg.Stations...),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return s
}

// Config returns the effective configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Prime writes the initial values of every field so the first frame is not
// blank.
func (s *Simulator) Prime() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.SetText(ClockID, s.now().Format(ClockLayout))
	s.target.SetText(ProductionID, humanize.Comma(s.production))
	s.target.SetText(CPUID, strconv.Itoa(s.cpu)+"%")
	for _, st := range s.stations {
		s.target.SetText(st.ElementID(), humanize.Comma(int64(st.WIP)))
	}
}

// TickClock refreshes the clock and, with the configured chance, adds one to
// the production counter.
func (s *Simulator) TickClock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.SetText(ClockID, s.now().Format(ClockLayout))
	if s.rng.Float64() < s.cfg.ProductionChance {
		s.production++
		s.target.SetText(ProductionID, humanize.Comma(s.production))
	}
}

// TickWIP moves every station counter by a delta in [-2, 2], never below zero.
func (s *Simulator) TickWIP() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stations {
		delta := s.rng.IntN(5) - 2
		s.stations[i].WIP = max(s.stations[i].WIP+delta, 0)
		s.target.SetText(s.stations[i].ElementID(), humanize.Comma(int64(s.stations[i].WIP)))
	}
}

// TickAmbient appends one canned log line and rolls the CPU gauge.
func (s *Simulator) TickAmbient() {
	s.mu.Lock()
	msg := AmbientMessages[s.rng.IntN(len(AmbientMessages))]
	s.cpu = s.rng.IntN(101)
	s.target.SetText(CPUID, strconv.Itoa(s.cpu)+"%")
	s.mu.Unlock()

	if s.sink != nil {
		s.sink.Log(msg.Severity, msg.Message)
	}
}

// AmbientPeriod draws the delay before the next ambient tick.
func (s *Simulator) AmbientPeriod() time.Duration {
	span := s.cfg.AmbientMax - s.cfg.AmbientMin
	if span <= 0 {
		return s.cfg.AmbientMin
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.AmbientMin + time.Duration(s.rng.Int64N(int64(span)+1))
}

// Production returns the production counter.
func (s *Simulator) Production() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.production
}

// Stations returns a copy of the station counters.
func (s *Simulator) Stations() []floor.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]floor.Station(nil), s.stations...)
}

// CPU returns the last CPU gauge reading.
func (s *Simulator) CPU() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cpu
}

// Start primes the fields and schedules the clock, WIP and ambient tasks on a
// new scheduler bound to ctx.
func (s *Simulator) Start(ctx context.Context) *Scheduler {
	s.Prime()
	sched := NewScheduler(ctx)
	sched.Every("clock", Fixed(s.cfg.ClockEvery), s.TickClock)
	sched.Every("wip", Fixed(s.cfg.WIPEvery), s.TickWIP)
	sched.Every("ambient", s.AmbientPeriod, s.TickAmbient)
	return sched
}
