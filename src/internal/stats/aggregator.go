// Package stats keeps the live health record of the simulated bot.
package stats

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/shourov-bot/bot-panel/src/internal/models"
)

// ErrRestartPending is returned by ScheduleRestart under PolicyReject while a
// restart has not completed yet.
var ErrRestartPending = errors.New("restart already pending")

// RestartPolicy decides what a restart request does while another is pending.
type RestartPolicy int

const (
	// PolicyReplace cancels the pending restart and schedules a new one.
	PolicyReplace RestartPolicy = iota
	// PolicyReject refuses the new restart.
	PolicyReject
)

// Patch is a partial BotStats. Nil fields are left unchanged by Apply.
type Patch struct {
	Status        *models.BotStatus
	Uptime        *string
	ActiveThreads *int
	TotalMessages *int
	CPUUsage      *int
	MemoryUsage   *int
}

// Aggregator owns the BotStats singleton and its restart timer.
type Aggregator struct {
	mu       sync.Mutex
	stats    models.BotStats
	rnd      *rand.Rand
	policy   RestartPolicy
	restart  *time.Timer
	onStatus StatusHook
	// generation invalidates callbacks of timers that were stopped too late.
	generation uint64
}

// StatusHook observes status transitions. It runs with the aggregator lock
// held and must not call back into the aggregator.
type StatusHook func(prev, next models.BotStatus)

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithRand sets the random source used by Read.
func WithRand(r *rand.Rand) Option {
	return func(a *Aggregator) {
		a.rnd = r
	}
}

// WithRestartPolicy sets the restart policy.
func WithRestartPolicy(p RestartPolicy) Option {
	return func(a *Aggregator) {
		a.policy = p
	}
}

// WithStatusHook registers a hook called on every status change.
func WithStatusHook(hook StatusHook) Option {
	return func(a *Aggregator) {
		a.onStatus = hook
	}
}

// NewAggregator creates an aggregator with the bot online and zeroed counters.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		stats: models.BotStats{
			Status: models.BotStatusOnline,
			Uptime: models.ZeroUptime,
		},
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Read refreshes the simulated telemetry and returns the new record.
// Every call mutates the record: cpu lands in [10,40), memory in [100,300)
// and the message counter grows by [0,5).
func (a *Aggregator) Read() models.BotStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.CPUUsage = a.rnd.Intn(30) + 10
	a.stats.MemoryUsage = a.rnd.Intn(200) + 100
	a.stats.TotalMessages += a.rnd.Intn(5)
	return a.stats
}

// Snapshot returns the record without refreshing telemetry.
func (a *Aggregator) Snapshot() models.BotStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Apply merges the non-nil fields of p and returns the new record.
func (a *Aggregator) Apply(p Patch) models.BotStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applyLocked(p)
}

func (a *Aggregator) applyLocked(p Patch) models.BotStats {
	if p.Status != nil {
		prev := a.stats.Status
		a.stats.Status = *p.Status
		if a.onStatus != nil && prev != *p.Status {
			a.onStatus(prev, *p.Status)
		}
	}
	if p.Uptime != nil {
		a.stats.Uptime = *p.Uptime
	}
	if p.ActiveThreads != nil {
		a.stats.ActiveThreads = *p.ActiveThreads
	}
	if p.TotalMessages != nil {
		a.stats.TotalMessages = *p.TotalMessages
	}
	if p.CPUUsage != nil {
		a.stats.CPUUsage = *p.CPUUsage
	}
	if p.MemoryUsage != nil {
		a.stats.MemoryUsage = *p.MemoryUsage
	}
	return a.stats
}

// SetStatus applies a status transition and cancels any pending restart.
func (a *Aggregator) SetStatus(status models.BotStatus) models.BotStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	return a.applyLocked(Patch{Status: &status})
}

// ScheduleRestart moves the bot to restarting now and back online with a
// zero uptime after delay. onDone, when not nil, runs after the transition
// outside the aggregator lock. Under PolicyReplace a pending restart is
// cancelled first, so only the latest callback fires.
func (a *Aggregator) ScheduleRestart(delay time.Duration, onDone func(models.BotStats)) (models.BotStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.restart != nil && a.policy == PolicyReject {
		return a.stats, ErrRestartPending
	}
	a.cancelLocked()

	restarting := models.BotStatusRestarting
	result := a.applyLocked(Patch{Status: &restarting})

	gen := a.generation
	a.restart = time.AfterFunc(delay, func() {
		a.mu.Lock()
		if a.generation != gen {
			a.mu.Unlock()
			return
		}
		a.restart = nil
		a.generation++
		online := models.BotStatusOnline
		uptime := models.ZeroUptime
		stats := a.applyLocked(Patch{Status: &online, Uptime: &uptime})
		a.mu.Unlock()

		if onDone != nil {
			onDone(stats)
		}
	})

	return result, nil
}

// RestartPending reports whether a restart has been scheduled and not completed.
func (a *Aggregator) RestartPending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.restart != nil
}

// CancelRestart drops a pending restart. The status stays as it is.
func (a *Aggregator) CancelRestart() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancelLocked()
}

func (a *Aggregator) cancelLocked() bool {
	if a.restart == nil {
		return false
	}
	a.restart.Stop()
	a.restart = nil
	a.generation++
	return true
}

// Close cancels any pending restart.
func (a *Aggregator) Close() {
	a.CancelRestart()
}
