// Package apply drives one job application from initial submission
// through zero or more field correction rounds to a terminal outcome.
package apply

import (
	"context"
	"io"
	"time"

	"jobswipe-client/internal/api"
	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/common/metrics"
	"jobswipe-client/internal/common/observability"
	"jobswipe-client/internal/models"
)

// API is the slice of the backend client the coordinator depends on.
type API interface {
	Apply(ctx context.Context, req models.ApplicationRequest) (*api.ApplyResponse, error)
	ApplicationErrors(ctx context.Context, jobID int, userID string) ([]models.ApplicationError, error)
	UploadResume(ctx context.Context, userID, filename string, r io.Reader) (string, error)
}

type Coordinator struct {
	config *Config
	api    API
	obs    *observability.Observability
	logger logger.Logger
}

func NewCoordinator(config *Config, client API, obs *observability.Observability, log logger.Logger) *Coordinator {
	return &Coordinator{
		config: config,
		api:    client,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{"component": "apply"}),
	}
}

// Prefill seeds a working snapshot from the stored profile. Missing
// fields default to empty values; an empty profile is fine.
func (c *Coordinator) Prefill(p models.ApplicantProfile) models.ApplicantProfile {
	snapshot := p.Clone()
	if snapshot.Answers == nil {
		snapshot.Answers = map[string]string{}
	}
	return snapshot
}

// Submit sends one application attempt. Exactly one network call per
// invocation, no internal retries. Every failure mode comes back as an
// ApplicationResult; no error escapes to the presentation layer.
func (c *Coordinator) Submit(ctx context.Context, job models.Job, snapshot models.ApplicantProfile) *models.ApplicationResult {
	start := time.Now()
	req := models.ApplicationRequest{
		JobID:    job.ID,
		UserInfo: snapshot.Clone(),
	}

	resp, err := c.api.Apply(ctx, req)
	if err != nil {
		result := models.FailureResult(failureMessage(err))
		c.record(ctx, result, time.Since(start))
		return result
	}

	result := c.interpret(resp)
	c.record(ctx, result, time.Since(start))
	return result
}

// interpret applies the selection policy: the first structured error
// wins, later ones wait for subsequent rounds.
func (c *Coordinator) interpret(resp *api.ApplyResponse) *models.ApplicationResult {
	if len(resp.Errors) > 0 {
		first := resp.Errors[0]
		if !first.Correctable() {
			msg := first.Message
			if msg == "" {
				msg = first.ErrorType
			}
			return models.FailureResult(msg)
		}
		return models.PendingCorrectionResult(first)
	}

	if resp.Status == "error" {
		return models.FailureResult(resp.Message)
	}
	return models.SuccessResult(resp.Message)
}

// FetchPendingError checks for a previously reported, unresolved error
// for this (job, user) pair. Idempotent and side-effect free; queried
// before showing the submission form.
func (c *Coordinator) FetchPendingError(ctx context.Context, job models.Job, profile models.ApplicantProfile) (*models.ApplicationError, error) {
	appErrs, err := c.api.ApplicationErrors(ctx, job.ID, profile.UserID)
	if err != nil {
		return nil, err
	}
	if len(appErrs) == 0 {
		return nil, nil
	}
	first := appErrs[0]
	return &first, nil
}

// Resolve merges one corrected value into the snapshot. Pure: no
// network call, identical inputs yield identical snapshots, so it can
// safely run again if the following submit fails for another reason.
func (c *Coordinator) Resolve(snapshot models.ApplicantProfile, appErr models.ApplicationError, value string) models.ApplicantProfile {
	out := snapshot.Clone()
	out.SetField(appErr.FieldName, value)
	return out
}

// AttachResume uploads the file and returns a snapshot carrying the
// new resume reference. On failure the returned snapshot is the input
// unchanged; a failed upload never clears a previously attached
// resume.
func (c *Coordinator) AttachResume(ctx context.Context, snapshot models.ApplicantProfile, filename string, r io.Reader) (models.ApplicantProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.UploadTimeout)
	defer cancel()

	ref, err := c.api.UploadResume(ctx, snapshot.UserID, filename, r)
	if err != nil {
		return snapshot, err
	}

	out := snapshot.Clone()
	out.Resume = ref
	return out, nil
}

func (c *Coordinator) record(ctx context.Context, result *models.ApplicationResult, elapsed time.Duration) {
	metrics.SubmissionsTotal.WithLabelValues(string(result.Outcome)).Inc()
	if c.obs != nil {
		c.obs.RecordSubmission(ctx, string(result.Outcome))
		c.obs.RecordSubmissionDuration(ctx, elapsed, string(result.Outcome))
	}
}

// failureMessage surfaces the typed error's user-facing message.
func failureMessage(err error) string {
	if stdErr, ok := err.(*errors.StandardError); ok {
		return stdErr.Message
	}
	return err.Error()
}
