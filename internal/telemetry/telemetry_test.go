package telemetry

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/floorboard/internal/floor"
	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/state"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestTickClock_ProductionNonDecreasing(t *testing.T) {
	board := state.NewBoard()
	fixed := time.Date(2026, 1, 20, 9, 30, 0, 0, time.UTC)
	sim := NewSimulator(board, nil, DefaultConfig(), WithRand(seeded()), WithClock(func() time.Time { return fixed }))
	sim.Prime()
	assert.Equal(t, "1,284", board.Text(ProductionID))

	prev := sim.Production()
	for range 500 {
		sim.TickClock()
		cur := sim.Production()
		require.GreaterOrEqual(t, cur, prev)
		require.LessOrEqual(t, cur-prev, int64(1))
		prev = cur
	}
	assert.Greater(t, prev, int64(1284), "500 ticks at 0.3 should produce something")
	assert.Equal(t, "2026-01-20 09:30:00", board.Text(ClockID))
}

func TestTickClock_ZeroChanceNeverProduces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProductionChance = 0
	sim := NewSimulator(state.NewBoard(), nil, cfg, WithRand(seeded()))
	for range 100 {
		sim.TickClock()
	}
	assert.Equal(t, int64(1284), sim.Production())
}

func TestTickWIP_BoundedAndNonNegative(t *testing.T) {
	board := state.NewBoard()
	cfg := DefaultConfig()
	cfg.Stations = []floor.Station{{Name: "Cutting", WIP: 1}, {Name: "Welding", WIP: 0}, {Name: "Painting", WIP: 40}}
	sim := NewSimulator(board, nil, cfg, WithRand(seeded()))

	prev := sim.Stations()
	for range 1000 {
		sim.TickWIP()
		cur := sim.Stations()
		for i := range cur {
			require.GreaterOrEqual(t, cur[i].WIP, 0)
			d := cur[i].WIP - prev[i].WIP
			require.True(t, d >= -2 && d <= 2, "delta %d out of range", d)
		}
		prev = cur
	}
	assert.Equal(t, humanize.Comma(int64(prev[0].WIP)), board.Text("wip-cutting"))
}

func TestTickAmbient_LogsCannedMessageAndCPU(t *testing.T) {
	board := state.NewBoard()
	sink := logsink.NewPanel()
	sim := NewSimulator(board, sink, DefaultConfig(), WithRand(seeded()))

	for range 50 {
		sim.TickAmbient()
		require.GreaterOrEqual(t, sim.CPU(), 0)
		require.LessOrEqual(t, sim.CPU(), 100)
	}
	require.Equal(t, 50, sink.Len())
	for _, e := range sink.Entries() {
		assert.Contains(t, AmbientMessages, Ambient{Severity: e.Severity, Message: e.Message})
	}
	assert.Equal(t, strconv.Itoa(sim.CPU())+"%", board.Text(CPUID))
}

func TestAmbientPeriod_WithinBounds(t *testing.T) {
	sim := NewSimulator(state.NewBoard(), nil, DefaultConfig(), WithRand(seeded()))
	for range 200 {
		d := sim.AmbientPeriod()
		require.GreaterOrEqual(t, d, 2*time.Second)
		require.LessOrEqual(t, d, 3*time.Second)
	}
}

func TestNewSimulator_FillsDefaults(t *testing.T) {
	sim := NewSimulator(state.NewBoard(), nil, Config{AmbientMin: 5 * time.Second})
	cfg := sim.Config()
	assert.Equal(t, time.Second, cfg.ClockEvery)
	assert.Equal(t, 4*time.Second, cfg.WIPEvery)
	assert.Equal(t, 5*time.Second, cfg.AmbientMax)
	assert.Len(t, cfg.Stations, 5)
}

func TestTaskStop_HaltsRuns(t *testing.T) {
	sched := NewScheduler(context.Background())
	defer sched.StopAll()

	var n atomic.Int64
	task := sched.Every("fast", Fixed(time.Millisecond), func() { n.Add(1) })

	require.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)
	task.Stop()
	task.Stop()
	stopped := n.Load()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, n.Load())
	assert.Equal(t, stopped, task.Runs())
	assert.Equal(t, "fast", task.Name())
}

func TestScheduler_ContextCancelStopsAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sched := NewScheduler(ctx)

	a := sched.Every("a", Fixed(time.Millisecond), func() {})
	b := sched.Every("b", Fixed(time.Hour), func() {})
	cancel()
	sched.Wait()

	for _, task := range []*Task{a, b} {
		select {
		case <-task.Done():
		default:
			t.Fatalf("task %s still running after cancel", task.Name())
		}
	}
	assert.Len(t, sched.Tasks(), 2)
}

func TestStart_SchedulesFeeds(t *testing.T) {
	board := state.NewBoard()
	cfg := DefaultConfig()
	cfg.ClockEvery = time.Millisecond
	cfg.WIPEvery = time.Millisecond
	cfg.AmbientMin = time.Millisecond
	cfg.AmbientMax = 2 * time.Millisecond
	sink := logsink.NewPanel()
	sim := NewSimulator(board, sink, cfg, WithRand(seeded()))

	sched := sim.Start(context.Background())
	require.Eventually(t, func() bool { return sink.Len() > 0 }, time.Second, time.Millisecond)
	sched.StopAll()

	after := sink.Len()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, sink.Len())
	assert.NotEmpty(t, board.Text(ClockID))
	assert.Len(t, sched.Tasks(), 3)
}
