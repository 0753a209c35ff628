package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Liyana-shirin/hospital-management-system-frontent/metrics"
)

// Monitor periodically checks whether the hospital API answers at all, so
// the home page can warn before a user walks into a dead login form. It is a
// fixed-interval timer with no backoff; Start and Stop are explicit so tests
// run Check directly and never start the scheduler.
type Monitor struct {
	client    *Client
	scheduler *gocron.Scheduler

	mu          sync.RWMutex
	up          bool
	lastChecked time.Time
}

func NewMonitor(client *Client) *Monitor {
	return &Monitor{client: client}
}

// Check pings the backend once and records the result.
func (m *Monitor) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.client.Ping(ctx)
	up := err == nil
	if err != nil {
		log.Printf("[Monitor] hospital API check failed: %v", err)
	}

	m.mu.Lock()
	m.up = up
	m.lastChecked = time.Now()
	m.mu.Unlock()

	metrics.SetUpstreamUp(up)
}

// Start runs one check immediately, then every minute until Stop.
func (m *Monitor) Start() {
	m.Check()

	m.scheduler = gocron.NewScheduler(time.Local)
	m.scheduler.Every(1).Minutes().Do(m.Check)
	m.scheduler.StartAsync()
	log.Println("[Monitor] hospital API availability check started")
}

func (m *Monitor) Stop() {
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
}

// Status returns the last observation and when it was taken. Before the
// first check the zero time is returned.
func (m *Monitor) Status() (bool, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.up, m.lastChecked
}
