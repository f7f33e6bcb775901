package apply

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/common/metrics"
	"jobswipe-client/internal/models"
)

// State is the lifecycle phase of an application session.
type State string

const (
	// StateDrafting: the user is editing the snapshot. Submit, field
	// edits, resume attachment and cancel are legal.
	StateDrafting State = "drafting"

	// StateSubmitting: exactly one submit call is in flight. No edits,
	// no second submit. Cancel is legal and discards the late result.
	StateSubmitting State = "submitting"

	// StateCorrecting: the backend rejected one field; the session
	// waits for a corrected value. SubmitCorrection and cancel are
	// legal.
	StateCorrecting State = "correcting"

	// Terminal states.
	StateDone      State = "done"
	StateCancelled State = "cancelled"
)

// Session owns one job application attempt end to end. All methods are
// safe for concurrent use; at most one submit is ever in flight.
type Session struct {
	ID string

	coordinator *Coordinator
	job         models.Job
	logger      logger.Logger

	mu       sync.Mutex
	state    State
	epoch    int
	snapshot models.ApplicantProfile
	pending  *models.ApplicationError
	last     *models.ApplicationResult
}

// NewSession creates a session in the drafting state with a snapshot
// prefilled from the stored profile.
func NewSession(coordinator *Coordinator, job models.Job, profile models.ApplicantProfile, log logger.Logger) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:          id,
		coordinator: coordinator,
		job:         job,
		logger: log.WithFields(map[string]interface{}{
			"component": "apply_session",
			"sessionId": id,
			"jobId":     job.ID,
		}),
		state:    StateDrafting,
		snapshot: coordinator.Prefill(profile),
	}
	return s
}

// Start checks for a previously reported, unresolved rejection for
// this job before the form is shown. A correctable one moves the
// session straight into the correction round; a non-correctable one is
// surfaced as a failure and the session stays in drafting. A lookup
// failure is logged and ignored so the form still opens.
func (s *Session) Start(ctx context.Context) {
	pending, err := s.coordinator.FetchPendingError(ctx, s.job, s.snapshot)
	if err != nil {
		s.logger.WithError(err).Warn("Pending error lookup failed; continuing to draft", nil)
		return
	}
	if pending == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDrafting {
		return
	}
	if pending.Correctable() {
		s.pending = pending
		s.state = StateCorrecting
		s.logger.Info("Resuming previously rejected application", map[string]interface{}{
			"fieldName": pending.FieldName,
		})
		return
	}
	s.last = models.FailureResult(pending.Message)
	s.logger.Warn("Previous rejection is not correctable", map[string]interface{}{
		"errorType": pending.ErrorType,
	})
}

// SetField applies a local edit to the draft. Legal only while
// drafting.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDrafting {
		return errors.NewSessionStateInvalidError(string(s.state), "set_field")
	}
	s.snapshot.SetField(name, value)
	return nil
}

// AttachResume uploads the file and stores the returned reference in
// the draft. On upload failure the draft keeps its previous resume
// reference and the error is returned for display.
func (s *Session) AttachResume(ctx context.Context, filename string, r io.Reader) error {
	s.mu.Lock()
	if s.state != StateDrafting && s.state != StateCorrecting {
		state := s.state
		s.mu.Unlock()
		return errors.NewSessionStateInvalidError(string(state), "attach_resume")
	}
	snapshot := s.snapshot.Clone()
	epoch := s.epoch
	s.mu.Unlock()

	updated, err := s.coordinator.AttachResume(ctx, snapshot, filename, r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	s.snapshot.Resume = updated.Resume
	return nil
}

// Submit sends the draft. Legal only while drafting; a session already
// submitting rejects the call, which is what bounds the system to one
// in-flight submit. The call blocks for the attempt and returns its
// result, or nil if the session was cancelled while the call was in
// flight.
func (s *Session) Submit(ctx context.Context) (*models.ApplicationResult, error) {
	s.mu.Lock()
	if s.state != StateDrafting {
		state := s.state
		s.mu.Unlock()
		return nil, errors.NewSessionStateInvalidError(string(state), "submit")
	}
	return s.submitLocked(ctx)
}

// SubmitCorrection merges the corrected value into the snapshot and
// immediately resubmits. Legal only while correcting.
func (s *Session) SubmitCorrection(ctx context.Context, value string) (*models.ApplicationResult, error) {
	s.mu.Lock()
	if s.state != StateCorrecting || s.pending == nil {
		state := s.state
		s.mu.Unlock()
		return nil, errors.NewSessionStateInvalidError(string(state), "submit_correction")
	}
	s.snapshot = s.coordinator.Resolve(s.snapshot, *s.pending, value)
	s.pending = nil
	metrics.CorrectionRoundsTotal.Inc()
	return s.submitLocked(ctx)
}

// submitLocked runs one attempt. Called with the lock held; releases
// it for the duration of the network call.
func (s *Session) submitLocked(ctx context.Context) (*models.ApplicationResult, error) {
	s.state = StateSubmitting
	epoch := s.epoch
	job := s.job
	snapshot := s.snapshot.Clone()
	s.mu.Unlock()

	submitCtx, cancel := context.WithTimeout(ctx, s.coordinator.config.SubmitTimeout)
	defer cancel()
	result := s.coordinator.Submit(submitCtx, job, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.logger.Info("Discarding submit result after cancellation", nil)
		return nil, nil
	}

	s.last = result
	switch result.Outcome {
	case models.OutcomeSuccess:
		s.state = StateDone
	case models.OutcomePendingCorrection:
		s.pending = result.Error
		s.state = StateCorrecting
	default:
		s.state = StateDrafting
	}
	return result, nil
}

// Cancel abandons the session. Legal while drafting, correcting or
// submitting; a submit in flight keeps running but its result is
// discarded when it lands.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateDrafting, StateSubmitting, StateCorrecting:
		s.epoch++
		s.state = StateCancelled
		s.pending = nil
		s.logger.Info("Session cancelled", nil)
		return nil
	default:
		return errors.NewSessionStateInvalidError(string(s.state), "cancel")
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a deep copy of the working draft.
func (s *Session) Snapshot() models.ApplicantProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// Pending returns the rejection currently awaiting a corrected value,
// or nil.
func (s *Session) Pending() *models.ApplicationError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	pending := *s.pending
	return &pending
}

// LastResult returns the outcome of the most recent attempt, or nil if
// none has completed.
func (s *Session) LastResult() *models.ApplicationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
