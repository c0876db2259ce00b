package sandbox

import (
	"time"
)

// debugStatsInterval is how many ticks pass between stats log lines in
// debug mode.
const debugStatsInterval = 300

// FrameStats holds loop counters and timings. Timings are only collected in
// debug mode.
type FrameStats struct {
	Ticks  uint64
	Frames uint64
	Events uint64

	UpdateTime time.Duration // summed OnUpdate time since the last report
	DrawTime   time.Duration // summed OnDraw time since the last report
	Dropped    uint64        // events ignored: out-of-range buttons, resizes, unknown kinds
}

// Stats returns a snapshot of the loop counters.
func (a *App) Stats() FrameStats {
	return a.stats
}

// timed runs fn and, in debug mode, adds its duration to *acc.
func (a *App) timed(acc *time.Duration, fn func() error) error {
	if !a.cfg.Debug {
		return fn()
	}
	start := time.Now()
	err := fn()
	*acc += time.Since(start)
	return err
}

// debugLog reports per-interval averages and resets the timings.
func (a *App) debugLog() {
	if !a.cfg.Debug || a.stats.Ticks == 0 || a.stats.Ticks%debugStatsInterval != 0 {
		return
	}
	n := time.Duration(debugStatsInterval)
	a.log.Debug("frame stats",
		"ticks", a.stats.Ticks,
		"frames", a.stats.Frames,
		"events", a.stats.Events,
		"dropped", a.stats.Dropped,
		"update_avg", a.stats.UpdateTime/n,
		"draw_avg", a.stats.DrawTime/n,
	)
	a.stats.UpdateTime = 0
	a.stats.DrawTime = 0
}
