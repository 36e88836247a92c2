package subscription

import (
	"context"

	"github.com/fitpro-app/fitpro/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type RemoteStatus struct {
	Status string `json:"status"`
	Tier   string `json:"tier"`
}

// Checker reads the authoritative subscription row for the polling
// widget. Failures are soft: the caller gets nil and skips the update
// for this cycle.
type Checker struct {
	db *pgxpool.Pool
}

func NewChecker(db *pgxpool.Pool) *Checker {
	return &Checker{
		db: db,
	}
}

func (c *Checker) LatestStatus(ctx context.Context, userID string) *RemoteStatus {
	ctx, span := tracing.GlobalTracer.Start(ctx, "subscription.checker.latestStatus")
	defer span.End()

	var status, tier string
	err := c.db.QueryRow(ctx, `
		SELECT subscription_status, subscription_tier
		FROM profiles
		WHERE id = $1
	`, userID).Scan(&status, &tier)
	if err != nil {
		log.Warnf("subscription status check for %s failed: %s", userID, err)
		span.RecordError(err)
		return nil
	}

	return &RemoteStatus{
		Status: status,
		Tier:   tier,
	}
}
