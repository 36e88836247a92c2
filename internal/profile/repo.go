package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitpro-app/fitpro/internal/db"
	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"
	"github.com/fitpro-app/fitpro/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

// Repo reads and writes profiles and their domain logs. Every call
// runs inside a transaction carrying the RLS user context, so the
// database itself scopes rows to the requesting user.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
	}
}

type UpdateParams struct {
	Name          *string  `json:"name,omitempty"`
	Goal          *Goal    `json:"goal,omitempty"`
	CurrentWeight *float64 `json:"currentWeight,omitempty"`
	HeightCm      *float64 `json:"heightCm,omitempty"`
	HighIntensity *bool    `json:"highIntensity,omitempty"`
	HotWeather    *bool    `json:"hotWeather,omitempty"`
}

// Get loads the full profile aggregate: the profile row plus all the
// domain logs the scoring functions consume.
func (r *Repo) Get(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var prof UserProfile
	err = db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT
				id, email, name, goal, current_weight, height_cm,
				high_intensity, hot_weather, training_start_date, created_at,
				subscription_status, subscription_tier, advanced_health
			FROM profiles
			WHERE id = $1
		`, userID).Scan(
			&prof.ID, &prof.Email, &prof.Name, &prof.Goal, &prof.CurrentWeight, &prof.HeightCm,
			&prof.HighIntensity, &prof.HotWeather, &prof.TrainingStartDate, &prof.CreatedAt,
			&prof.SubscriptionStatus, &prof.SubscriptionTier, &prof.AdvancedHealth,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile row: %w", err)
		}

		if prof.TrainingLogs, err = trainingLogs(ctx, tx, userID); err != nil {
			return err
		}
		if prof.NutritionLogs, err = nutritionLogs(ctx, tx, userID); err != nil {
			return err
		}
		if prof.DailyLogs, err = dailyLogs(ctx, tx, userID); err != nil {
			return err
		}
		if prof.Supplements, err = supplements(ctx, tx, userID); err != nil {
			return err
		}
		if prof.SupplementLogs, err = supplementLogs(ctx, tx, userID); err != nil {
			return err
		}
		if prof.HealthActivityLogs, err = healthActivityLogs(ctx, tx, userID); err != nil {
			return err
		}
		if prof.Records, err = personalRecords(ctx, tx, userID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *Repo) Update(ctx context.Context, userID string, params UpdateParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE profiles SET
				name = COALESCE($2, name),
				goal = COALESCE($3, goal),
				current_weight = COALESCE($4, current_weight),
				height_cm = COALESCE($5, height_cm),
				high_intensity = COALESCE($6, high_intensity),
				hot_weather = COALESCE($7, hot_weather)
			WHERE id = $1
		`, userID, params.Name, params.Goal, params.CurrentWeight,
			params.HeightCm, params.HighIntensity, params.HotWeather,
		)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}

func (r *Repo) UpdateWeight(ctx context.Context, userID string, weightKg float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.updateWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE profiles SET current_weight = $2 WHERE id = $1`,
			userID, weightKg,
		)
		if err != nil {
			return fmt.Errorf("update weight: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}

func (r *Repo) AddTrainingLog(ctx context.Context, userID string, tl TrainingLog) (id int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.addTrainingLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO training_log (user_id, date, status, exercises)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, userID, tl.Date, tl.Status, tl.Exercises).Scan(&id)
	})
	if pkg.IsForeignKeyViolationError(err) {
		return 0, ErrProfileNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("add training log: %w", err)
	}
	return id, nil
}

func (r *Repo) AddNutritionLog(ctx context.Context, userID string, nl NutritionDayLog) (id int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.addNutritionLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO nutrition_log
				(user_id, date, status, meals, planned_calories, actual_calories, water_intake_ml)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, userID, nl.Date, nl.Status, nl.Meals,
			nl.PlannedCalories, nl.ActualCalories, nl.WaterIntakeMl,
		).Scan(&id)
	})
	if pkg.IsForeignKeyViolationError(err) {
		return 0, ErrProfileNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("add nutrition log: %w", err)
	}
	return id, nil
}

// AddDailyLog upserts by date: one row per calendar day.
func (r *Repo) AddDailyLog(ctx context.Context, userID string, dl DailyLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.addDailyLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO daily_log
				(user_id, date, workout_score, nutrition_score, sleep_hours, mood, readiness)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, date) DO UPDATE SET
				workout_score = EXCLUDED.workout_score,
				nutrition_score = EXCLUDED.nutrition_score,
				sleep_hours = EXCLUDED.sleep_hours,
				mood = EXCLUDED.mood,
				readiness = EXCLUDED.readiness
		`, userID, dl.Date, dl.WorkoutScore, dl.NutritionScore,
			dl.SleepHours, dl.Mood, dl.Readiness,
		)
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("add daily log: %w", err)
		}
		return nil
	})
}

func (r *Repo) AddSupplementLog(ctx context.Context, userID string, sl SupplementLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.addSupplementLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithUserContext(ctx, r.pool, userID, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO supplement_log (user_id, date, supplement_id, consumed)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, date, supplement_id) DO UPDATE SET
				consumed = EXCLUDED.consumed
		`, userID, sl.Date, sl.SupplementID, sl.Consumed)
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("add supplement log: %w", err)
		}
		return nil
	})
}

func trainingLogs(ctx context.Context, tx pgx.Tx, userID string) ([]TrainingLog, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, date, status, exercises
		FROM training_log
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query training logs: %w", err)
	}
	defer rows.Close()

	var logs []TrainingLog
	for rows.Next() {
		var tl TrainingLog
		if err := rows.Scan(&tl.ID, &tl.Date, &tl.Status, &tl.Exercises); err != nil {
			return nil, fmt.Errorf("scan training log: %w", err)
		}
		logs = append(logs, tl)
	}
	return logs, rows.Err()
}

func nutritionLogs(ctx context.Context, tx pgx.Tx, userID string) ([]NutritionDayLog, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, date, status, meals, planned_calories, actual_calories, water_intake_ml
		FROM nutrition_log
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query nutrition logs: %w", err)
	}
	defer rows.Close()

	var logs []NutritionDayLog
	for rows.Next() {
		var nl NutritionDayLog
		if err := rows.Scan(
			&nl.ID, &nl.Date, &nl.Status, &nl.Meals,
			&nl.PlannedCalories, &nl.ActualCalories, &nl.WaterIntakeMl,
		); err != nil {
			return nil, fmt.Errorf("scan nutrition log: %w", err)
		}
		logs = append(logs, nl)
	}
	return logs, rows.Err()
}

func dailyLogs(ctx context.Context, tx pgx.Tx, userID string) ([]DailyLog, error) {
	rows, err := tx.Query(ctx, `
		SELECT date, workout_score, nutrition_score, sleep_hours, mood, readiness
		FROM daily_log
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query daily logs: %w", err)
	}
	defer rows.Close()

	var logs []DailyLog
	for rows.Next() {
		var dl DailyLog
		if err := rows.Scan(
			&dl.Date, &dl.WorkoutScore, &dl.NutritionScore,
			&dl.SleepHours, &dl.Mood, &dl.Readiness,
		); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}
		logs = append(logs, dl)
	}
	return logs, rows.Err()
}

func supplements(ctx context.Context, tx pgx.Tx, userID string) ([]Supplement, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, category, essential, active
		FROM supplement
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query supplements: %w", err)
	}
	defer rows.Close()

	var stack []Supplement
	for rows.Next() {
		var s Supplement
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Essential, &s.Active); err != nil {
			return nil, fmt.Errorf("scan supplement: %w", err)
		}
		stack = append(stack, s)
	}
	return stack, rows.Err()
}

func supplementLogs(ctx context.Context, tx pgx.Tx, userID string) ([]SupplementLog, error) {
	rows, err := tx.Query(ctx, `
		SELECT date, supplement_id, consumed
		FROM supplement_log
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query supplement logs: %w", err)
	}
	defer rows.Close()

	var logs []SupplementLog
	for rows.Next() {
		var sl SupplementLog
		if err := rows.Scan(&sl.Date, &sl.SupplementID, &sl.Consumed); err != nil {
			return nil, fmt.Errorf("scan supplement log: %w", err)
		}
		logs = append(logs, sl)
	}
	return logs, rows.Err()
}

func healthActivityLogs(ctx context.Context, tx pgx.Tx, userID string) ([]HealthActivityLog, error) {
	rows, err := tx.Query(ctx, `
		SELECT date, modules
		FROM health_activity_log
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query health activity logs: %w", err)
	}
	defer rows.Close()

	var logs []HealthActivityLog
	for rows.Next() {
		var al HealthActivityLog
		if err := rows.Scan(&al.Date, &al.ModulesInteracted); err != nil {
			return nil, fmt.Errorf("scan health activity log: %w", err)
		}
		logs = append(logs, al)
	}
	return logs, rows.Err()
}

func personalRecords(ctx context.Context, tx pgx.Tx, userID string) ([]PersonalRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT exercise, value, date
		FROM personal_record
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}
	defer rows.Close()

	var records []PersonalRecord
	for rows.Next() {
		var pr PersonalRecord
		if err := rows.Scan(&pr.Exercise, &pr.Value, &pr.Date); err != nil {
			return nil, fmt.Errorf("scan personal record: %w", err)
		}
		records = append(records, pr)
	}
	return records, rows.Err()
}
