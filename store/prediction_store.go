package store

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"campaign-prediction-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxPlatformLen = 50

	defaultTimeout = 5 * time.Second

	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// ValidationError reports a caller-supplied field that is missing or
// violates its length/format constraint. Not retryable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the underlying database (unreachable,
// timed out, or rejected the write). Callers may retry with backoff; the
// store never retries internally since inserts carry no idempotency key.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PredictionStore owns durable, insert-only storage of prediction records.
// It holds no state beyond the database handle, so multiple stores (e.g.
// one per test) can coexist.
type PredictionStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func New(db *gorm.DB, timeout time.Duration) *PredictionStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PredictionStore{db: db, timeout: timeout}
}

// CreateParams holds the caller-supplied fields of a prediction. ID and
// CreatedAt are store-assigned and cannot be provided.
type CreateParams struct {
	Caption                string
	Content                string
	Platform               string
	PostDate               string
	PostTime               string
	Followers              int64
	AdBoost                bool
	PredLikes              float64
	PredComments           float64
	PredShares             float64
	PredClicks             float64
	PredTimingQualityScore float64
}

// Create validates the params, applies documented defaults and precision,
// and inserts a single row. The record is durable once Create returns nil.
func (s *PredictionStore) Create(ctx context.Context, p CreateParams) (*models.Prediction, error) {
	if p.Caption == "" {
		return nil, &ValidationError{Field: "caption", Reason: "required"}
	}
	if p.Platform == "" {
		return nil, &ValidationError{Field: "platform", Reason: "required"}
	}
	if utf8.RuneCountInString(p.Platform) > MaxPlatformLen {
		return nil, &ValidationError{Field: "platform", Reason: fmt.Sprintf("exceeds %d characters", MaxPlatformLen)}
	}
	if p.PostDate == "" {
		return nil, &ValidationError{Field: "post_date", Reason: "required"}
	}
	if _, err := time.Parse(dateLayout, p.PostDate); err != nil {
		return nil, &ValidationError{Field: "post_date", Reason: "must be YYYY-MM-DD"}
	}
	if p.PostTime == "" {
		return nil, &ValidationError{Field: "post_time", Reason: "required"}
	}
	postTime, err := normalizeTime(p.PostTime)
	if err != nil {
		return nil, &ValidationError{Field: "post_time", Reason: "must be HH:MM or HH:MM:SS"}
	}
	if p.Followers < 0 {
		return nil, &ValidationError{Field: "followers", Reason: "must be non-negative"}
	}

	record := models.Prediction{
		ID:                     uuid.NewString(),
		Caption:                p.Caption,
		Content:                p.Content,
		Platform:               p.Platform,
		PostDate:               p.PostDate,
		PostTime:               postTime,
		Followers:              p.Followers,
		AdBoost:                p.AdBoost,
		PredLikes:              round2(p.PredLikes),
		PredComments:           round2(p.PredComments),
		PredShares:             round2(p.PredShares),
		PredClicks:             round2(p.PredClicks),
		PredTimingQualityScore: round4(p.PredTimingQualityScore),
		CreatedAt:              time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, &StorageError{Op: "create", Err: err}
	}
	return &record, nil
}

// ListRecent returns predictions ordered newest first. Ties on created_at
// break on id so the order is deterministic. limit <= 0 returns all rows.
func (s *PredictionStore) ListRecent(ctx context.Context, limit int) ([]models.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := s.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.Prediction
	if err := query.Find(&rows).Error; err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return rows, nil
}

// normalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func normalizeTime(v string) (string, error) {
	if t, err := time.Parse(timeLayout, v); err == nil {
		return t.Format(timeLayout), nil
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", err
	}
	return t.Format(timeLayout), nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
