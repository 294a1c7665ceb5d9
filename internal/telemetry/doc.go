// Package telemetry drives the simulated plant feeds shown on the dashboard.
//
// # Overview
//
// Nothing here reads a real data source. A Simulator owns the numbers the
// dashboard displays (clock, production counter, station WIP, CPU load) and
// writes their formatted text to the render target. A Scheduler runs each feed
// on its own goroutine:
//
//	┌───────────────┐
//	│ Scheduler     │
//	│  ├─ clock     │ every 1s   -> current-time, realtime-prod
//	│  ├─ wip       │ every 4s   -> wip-<station>
//	│  └─ ambient   │ every 2-3s -> system log, cpu-load
//	└───────┬───────┘
//	        v
//	  state.Target  <- UI reads a snapshot on its own tick
//
// # Cancellation
//
// Every started job returns a *Task. Task.Stop ends one feed; cancelling the
// context given to NewScheduler, or calling StopAll, ends all of them. Both
// wait for the goroutines to exit, so nothing writes to the target afterwards.
//
// # Determinism
//
// Randomness comes from a *rand.Rand passed with WithRand. Tests seed a PCG
// and call the Tick methods directly instead of waiting on timers.
package telemetry
