// Package profile holds the single authoritative ApplicantProfile for
// the session. Readers share one store handle; screens never reach for
// an ambient global.
package profile

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/common/metrics"
	"jobswipe-client/internal/models"
)

// API is the slice of the backend client the store depends on.
type API interface {
	Profile(ctx context.Context, userID string) (*models.ApplicantProfile, error)
	SaveProfile(ctx context.Context, profile models.ApplicantProfile) error
}

// Cache is an optional second-level fallback holding the last known
// good profile. cache.RedisClient satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Store struct {
	api    API
	cache  Cache
	ttl    time.Duration
	logger logger.Logger

	mu      sync.RWMutex
	current models.ApplicantProfile
	loadErr *errors.StandardError

	saves sync.WaitGroup
}

func NewStore(api API, cache Cache, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		api:    api,
		cache:  cache,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "profile-store"}),
	}
}

// DefaultProfile is the fixed fallback used when neither the backend
// nor the cache can produce a profile. Keeping the app usable offline
// is a deliberate availability-over-consistency choice.
func DefaultProfile(userID string) models.ApplicantProfile {
	return models.ApplicantProfile{
		UserID:         userID,
		Name:           "Alex Morgan",
		Email:          "alex.morgan@example.com",
		Phone:          "5550100123",
		GraduationYear: "2027",
		Degree:         "Computer Science",
		Answers: map[string]string{
			"strengths":   "Proficient in Python, React, and cloud technologies",
			"why_company": "I admire your innovative approach to changing lives through technology",
		},
		JobAlerts: true,
		AutoApply: true,
	}
}

func cacheKey(userID string) string {
	return "profile:" + userID
}

// Load fetches the profile from the backend, falling back first to the
// cached last-known copy and then to the fixed default. The store is
// usable after Load regardless of outcome; Err reports what happened.
func (s *Store) Load(ctx context.Context, userID string) models.ApplicantProfile {
	fetched, err := s.api.Profile(ctx, userID)
	if err == nil {
		fetched.UserID = userID
		s.mu.Lock()
		s.current = fetched.Clone()
		s.loadErr = nil
		s.mu.Unlock()
		s.writeCache(ctx, *fetched)
		return fetched.Clone()
	}

	loadErr := s.classifyLoadError(userID, err)
	s.logger.Warn("profile load failed, using fallback", map[string]interface{}{
		"userId": userID,
		"code":   string(loadErr.Code),
		"error":  loadErr.Details,
	})

	fallback, fromCache := s.readCache(ctx, userID)
	if !fromCache {
		fallback = DefaultProfile(userID)
	}

	s.mu.Lock()
	s.current = fallback.Clone()
	s.loadErr = loadErr
	s.mu.Unlock()
	return fallback
}

func (s *Store) classifyLoadError(userID string, err error) *errors.StandardError {
	if errors.IsCode(err, errors.ErrCodeRequestTimeout) {
		return errors.NewProfileLoadTimeoutError(userID)
	}
	if stdErr, ok := err.(*errors.StandardError); ok && stdErr.Code == errors.ErrCodeMalformedResponse {
		return &errors.StandardError{
			Code:      errors.ErrCodeProfileLoadFailed,
			Message:   stdErr.Message,
			Details:   stdErr.Details,
			Retryable: true,
			Timestamp: time.Now().UTC(),
		}
	}
	return errors.NewProfileLoadFailedError(userID, err)
}

// Save applies the profile optimistically and persists it in the
// background. Persistence failure is logged, never rolled back: local
// state is the session's source of truth, the backend is eventually
// consistent with it.
func (s *Store) Save(ctx context.Context, p models.ApplicantProfile) {
	snapshot := p.Clone()

	s.mu.Lock()
	s.current = snapshot.Clone()
	s.mu.Unlock()

	s.writeCache(ctx, snapshot)

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()

		saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.api.SaveProfile(saveCtx, snapshot); err != nil {
			metrics.ProfileSavesTotal.WithLabelValues("failure").Inc()
			s.logger.Error("profile persistence failed, keeping optimistic copy", map[string]interface{}{
				"userId": snapshot.UserID,
				"error":  err.Error(),
			})
			return
		}
		metrics.ProfileSavesTotal.WithLabelValues("success").Inc()
	}()
}

// Flush waits for in-flight background saves. Shutdown and tests use
// it; normal operation never blocks on persistence.
func (s *Store) Flush() {
	s.saves.Wait()
}

// Snapshot returns a deep copy of the current profile for one
// submission attempt.
func (s *Store) Snapshot() models.ApplicantProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Err reports the most recent load failure, nil after a clean load.
func (s *Store) Err() *errors.StandardError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Store) writeCache(ctx context.Context, p models.ApplicantProfile) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(p.UserID), data, s.ttl); err != nil {
		s.logger.Debug("profile cache write failed", map[string]interface{}{
			"userId": p.UserID,
			"error":  err.Error(),
		})
	}
}

func (s *Store) readCache(ctx context.Context, userID string) (models.ApplicantProfile, bool) {
	if s.cache == nil {
		return models.ApplicantProfile{}, false
	}
	val, err := s.cache.Get(ctx, cacheKey(userID))
	if err != nil {
		return models.ApplicantProfile{}, false
	}
	var p models.ApplicantProfile
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return models.ApplicantProfile{}, false
	}
	if p.Answers == nil {
		p.Answers = map[string]string{}
	}
	return p, true
}
