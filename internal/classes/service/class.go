package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	classerrors "fitbook/internal/classes/errors"
	"fitbook/internal/classes/repository"
	"fitbook/pkg/config"
	apperrors "fitbook/pkg/errors"
	"fitbook/pkg/model"
	"fitbook/pkg/timezone"
)

type ClassService interface {
	ListUpcoming(ctx context.Context) ([]*model.FitnessClass, error)
	ShiftTimezone(ctx context.Context, timezoneName string) ([]*model.FitnessClass, error)
}

type classService struct {
	repo repository.ClassRepository
	cfg  *config.Config
}

func NewClassService(repo repository.ClassRepository, cfg *config.Config) ClassService {
	return &classService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *classService) ListUpcoming(ctx context.Context) ([]*model.FitnessClass, error) {
	classes, err := s.repo.FindUpcoming(ctx, time.Now().UTC())
	if err != nil {
		s.cfg.Log.Error("Failed to list upcoming classes", "error", err)
		return nil, apperrors.Internal("Failed to retrieve classes", err)
	}

	s.cfg.Log.Info("Retrieved upcoming classes", "count", len(classes))
	return classes, nil
}

// ShiftTimezone rewrites every stored start time: the wall clock of the
// stored value is treated as local time in the configured default timezone
// and converted to the target zone. All sessions are rewritten, past ones
// included, inside a single transaction so a failure leaves the catalog
// untouched. Returns the post-shift upcoming sessions.
func (s *classService) ShiftTimezone(ctx context.Context, timezoneName string) ([]*model.FitnessClass, error) {
	if timezoneName == "" {
		return nil, apperrors.InvalidInput("Timezone parameter is required").
			WithDetails(map[string]any{"field": "timezone"})
	}

	target, err := timezone.Load(timezoneName)
	if err != nil {
		s.cfg.Log.Warn("Rejected unrecognized timezone", "timezone", timezoneName)
		return nil, apperrors.InvalidTimezone(timezoneName)
	}

	source := s.cfg.DefaultLocation()

	var shifted int
	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		classes, err := s.repo.FindAll(sessCtx)
		if err != nil {
			return apperrors.Internal("Failed to load classes for timezone shift", err)
		}

		for _, class := range classes {
			newStart := timezone.Reinterpret(class.StartTime.UTC(), source, target)
			if err := s.repo.UpdateStartTime(sessCtx, class.ID, newStart); err != nil {
				if errors.Is(err, classerrors.ErrNotFound) {
					return apperrors.Internal("Class disappeared during timezone shift", err)
				}
				return apperrors.Internal("Failed to update class start time", err)
			}
		}

		shifted = len(classes)
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Timezone shift failed, no classes modified",
			"timezone", timezoneName,
			"error", err,
		)
		return nil, err
	}

	s.cfg.Log.Info("Shifted class times to new timezone",
		"timezone", timezoneName,
		"classes", shifted,
	)

	return s.ListUpcoming(ctx)
}
