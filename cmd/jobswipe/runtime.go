// cmd/jobswipe/runtime.go
package main

import (
	"context"
	"sync"

	"jobswipe-client/internal/apply"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/models"
	"jobswipe-client/internal/profile"
)

// runtime tracks the application sessions opened on behalf of the UI
// layer, one per right-swiped job.
type runtime struct {
	coordinator *apply.Coordinator
	store       *profile.Store
	logger      logger.Logger

	mu       sync.Mutex
	sessions map[string]*apply.Session
}

func newRuntime(coordinator *apply.Coordinator, store *profile.Store, log logger.Logger) *runtime {
	return &runtime{
		coordinator: coordinator,
		store:       store,
		logger:      log.WithFields(map[string]interface{}{"component": "runtime"}),
		sessions:    make(map[string]*apply.Session),
	}
}

// OpenSession starts a new application session for the job, seeded
// from the current profile. Start runs inline so a previously rejected
// application resumes in its correction round.
func (r *runtime) OpenSession(ctx context.Context, job models.Job) *apply.Session {
	session := apply.NewSession(r.coordinator, job, r.store.Snapshot(), r.logger)
	session.Start(ctx)

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// CloseSession cancels and forgets a session. Sessions already in a
// terminal state are just forgotten.
func (r *runtime) CloseSession(id string) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return
	}

	switch session.State() {
	case apply.StateDone, apply.StateCancelled:
	default:
		if err := session.Cancel(); err != nil {
			r.logger.WithError(err).Warn("Session cancel failed during close", nil)
		}
	}
}

// Close cancels every open session. Called on shutdown.
func (r *runtime) Close() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.CloseSession(id)
	}
}
