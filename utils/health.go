package utils

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pinger is anything the health monitor can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every probed service answered.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Services {
		if !ok {
			return false
		}
	}
	return true
}

// HealthMonitor probes its registered services on a cron schedule and keeps
// the latest snapshot.
type HealthMonitor struct {
	mu      sync.RWMutex
	checks  map[string]Pinger
	current HealthStatus
	timeout time.Duration
	logger  *zap.Logger
	cron    *cron.Cron
}

func NewHealthMonitor(logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{
		checks:  make(map[string]Pinger),
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Register adds a named service to probe.
func (m *HealthMonitor) Register(name string, p Pinger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks[name] = p
}

// Check probes every service once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	m.mu.RLock()
	names := make([]string, 0, len(m.checks))
	for name := range m.checks {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)

	status := HealthStatus{Services: make(map[string]bool, len(names))}
	for _, name := range names {
		m.mu.RLock()
		p := m.checks[name]
		m.mu.RUnlock()

		pctx, cancel := context.WithTimeout(ctx, m.timeout)
		err := p.Ping(pctx)
		cancel()
		if err != nil {
			m.logger.Warn("health check failed", zap.String("service", name), zap.Error(err))
		}
		status.Services[name] = err == nil
	}
	status.CheckedAt = time.Now()

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start runs an initial check and then one per schedule tick.
func (m *HealthMonitor) Start(schedule string) error {
	m.Check(context.Background())

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() { m.Check(context.Background()) }); err != nil {
		return err
	}
	m.cron = c
	c.Start()
	m.logger.Info("health monitor started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (m *HealthMonitor) Stop() {
	if m.cron != nil {
		<-m.cron.Stop().Done()
	}
}
