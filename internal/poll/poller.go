// Package poll keeps the client's view of the backend session fresh by
// polling the auth status endpoint on a fixed interval.
package poll

import (
	"context"
	"sync"
	"time"

	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/models"
)

// API is the slice of the backend client the poller depends on.
type API interface {
	AuthStatus(ctx context.Context) (*models.AuthStatus, error)
}

// Poller polls the auth status endpoint and retains the most recent
// successful reading. A failed poll keeps the previous reading; the
// poller never backs off or gives up.
type Poller struct {
	api      API
	interval time.Duration
	logger   logger.Logger
	onChange func(models.AuthStatus)

	mu      sync.RWMutex
	latest  *models.AuthStatus
	lastErr error

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller creates a stopped poller. onChange may be nil; when set it
// runs on the polling goroutine whenever a reading differs from the
// previous one.
func NewPoller(client API, interval time.Duration, log logger.Logger, onChange func(models.AuthStatus)) *Poller {
	return &Poller{
		api:      client,
		interval: interval,
		logger:   log.WithFields(map[string]interface{}{"component": "auth_poller"}),
		onChange: onChange,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start polls once immediately, then on every tick until Stop is
// called or ctx is done. The polling goroutine is guaranteed to exit
// on either signal.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		defer close(p.done)

		p.poll(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("Auth poller stopping: context done", nil)
				return
			case <-p.stop:
				p.logger.Info("Auth poller stopping", nil)
				return
			case <-ticker.C:
				p.poll(ctx)
			}
		}
	}()
}

// Stop terminates the polling goroutine and waits for it to exit.
// Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

func (p *Poller) poll(ctx context.Context) {
	status, err := p.api.AuthStatus(ctx)
	if err != nil {
		p.mu.Lock()
		p.lastErr = err
		p.mu.Unlock()
		p.logger.WithError(err).Warn("Auth status poll failed", nil)
		return
	}

	p.mu.Lock()
	changed := p.latest == nil || *p.latest != *status
	p.latest = status
	p.lastErr = nil
	p.mu.Unlock()

	if changed && p.onChange != nil {
		p.onChange(*status)
	}
}

// Latest returns the most recent successful reading, or nil if none
// has succeeded yet, together with the error of the last failed poll.
func (p *Poller) Latest() (*models.AuthStatus, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return nil, p.lastErr
	}
	status := *p.latest
	return &status, p.lastErr
}
