package performance

import (
	"context"
	"fmt"

	"github.com/fitpro-app/fitpro/internal/profile"
	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/codes"
)

type profileRepo interface {
	Get(ctx context.Context, userID string) (*profile.UserProfile, error)
	AddTrainingLog(ctx context.Context, userID string, tl profile.TrainingLog) (int, error)
	AddNutritionLog(ctx context.Context, userID string, nl profile.NutritionDayLog) (int, error)
	UpdateWeight(ctx context.Context, userID string, weightKg float64) error
}

// Service persists incoming domain logs and feeds them through the
// state store: log appended first, then the event applied against the
// fresh profile snapshot.
type Service struct {
	repo  profileRepo
	store *Store
}

func NewService(repo profileRepo, store *Store) *Service {
	return &Service{
		repo:  repo,
		store: store,
	}
}

func (s *Service) CurrentState() State {
	return s.store.State()
}

func (s *Service) Subscribe(fn Subscriber) func() {
	return s.store.Subscribe(fn)
}

func (s *Service) LogTraining(ctx context.Context, userID string, tl profile.TrainingLog) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.log.training")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	id, err := s.repo.AddTrainingLog(ctx, userID, tl)
	if err != nil {
		return State{}, fmt.Errorf("add training log: %w", err)
	}
	tl.ID = id

	prof, err := s.repo.Get(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("get profile: %w", err)
	}

	state, err := s.store.ProcessEvent(NewTrainingLoggedEvent(tl), *prof)
	if err != nil {
		return State{}, fmt.Errorf("process training event: %w", err)
	}
	return state, nil
}

func (s *Service) LogNutrition(ctx context.Context, userID string, nl profile.NutritionDayLog) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.log.nutrition")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	id, err := s.repo.AddNutritionLog(ctx, userID, nl)
	if err != nil {
		return State{}, fmt.Errorf("add nutrition log: %w", err)
	}
	nl.ID = id

	prof, err := s.repo.Get(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("get profile: %w", err)
	}

	state, err := s.store.ProcessEvent(NewNutritionLoggedEvent(nl), *prof)
	if err != nil {
		return State{}, fmt.Errorf("process nutrition event: %w", err)
	}
	return state, nil
}

func (s *Service) UpdateBody(ctx context.Context, userID string, bu BodyUpdate) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.update.body")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if bu.WeightKg > 0 {
		if err := s.repo.UpdateWeight(ctx, userID, bu.WeightKg); err != nil {
			return State{}, fmt.Errorf("update weight: %w", err)
		}
	}

	prof, err := s.repo.Get(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("get profile: %w", err)
	}

	state, err := s.store.ProcessEvent(NewBodyUpdatedEvent(bu), *prof)
	if err != nil {
		return State{}, fmt.Errorf("process body event: %w", err)
	}
	return state, nil
}

func (s *Service) LogSleep(ctx context.Context, userID string, sr SleepReport) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.log.sleep")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	prof, err := s.repo.Get(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("get profile: %w", err)
	}

	state, err := s.store.ProcessEvent(NewSleepLoggedEvent(sr), *prof)
	if err != nil {
		return State{}, fmt.Errorf("process sleep event: %w", err)
	}
	return state, nil
}

func (s *Service) LogScan(ctx context.Context, userID string, sc ScanReport) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.log.scan")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	prof, err := s.repo.Get(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("get profile: %w", err)
	}

	state, err := s.store.ProcessEvent(NewScanAnalyzedEvent(sc), *prof)
	if err != nil {
		return State{}, fmt.Errorf("process scan event: %w", err)
	}
	return state, nil
}
