package performance

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitpro-app/fitpro/internal/profile"
)

// ErrInvalidEventPayload marks an event whose payload does not match
// the shape its type requires. Callers can log-and-ignore instead of
// crashing on a bad payload.
var ErrInvalidEventPayload = errors.New("invalid event payload")

// EventType can be one of:
//   - training_logged
//   - nutrition_logged
//   - body_updated
//   - sleep_logged
//   - scan_analyzed
type EventType string

const (
	EventTypeTrainingLogged  EventType = "training_logged"
	EventTypeNutritionLogged EventType = "nutrition_logged"
	EventTypeBodyUpdated     EventType = "body_updated"
	EventTypeSleepLogged     EventType = "sleep_logged"
	EventTypeScanAnalyzed    EventType = "scan_analyzed"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeTrainingLogged,
		EventTypeNutritionLogged,
		EventTypeBodyUpdated,
		EventTypeSleepLogged,
		EventTypeScanAnalyzed:
		return true
	default:
		return false
	}
}

type BodyUpdate struct {
	WeightKg float64 `json:"weightKg"`
}

type SleepReport struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type ScanReport struct {
	Date   string `json:"date"`
	Source string `json:"source"`
}

// Event carries one domain occurrence into the state reducer. The
// payload shape is fixed per type and checked by Validate.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any
}

func NewTrainingLoggedEvent(tl profile.TrainingLog) Event {
	return Event{Type: EventTypeTrainingLogged, Timestamp: time.Now(), Payload: tl}
}

func NewNutritionLoggedEvent(nl profile.NutritionDayLog) Event {
	return Event{Type: EventTypeNutritionLogged, Timestamp: time.Now(), Payload: nl}
}

func NewBodyUpdatedEvent(bu BodyUpdate) Event {
	return Event{Type: EventTypeBodyUpdated, Timestamp: time.Now(), Payload: bu}
}

func NewSleepLoggedEvent(sr SleepReport) Event {
	return Event{Type: EventTypeSleepLogged, Timestamp: time.Now(), Payload: sr}
}

func NewScanAnalyzedEvent(sc ScanReport) Event {
	return Event{Type: EventTypeScanAnalyzed, Timestamp: time.Now(), Payload: sc}
}

// Validate checks the payload against the shape the event type
// requires. Unknown event types pass: they reduce to a no-op.
func (e Event) Validate() error {
	switch e.Type {
	case EventTypeTrainingLogged:
		if _, ok := e.Payload.(profile.TrainingLog); !ok {
			return fmt.Errorf("%w: %s requires a training log", ErrInvalidEventPayload, e.Type)
		}
	case EventTypeNutritionLogged:
		if _, ok := e.Payload.(profile.NutritionDayLog); !ok {
			return fmt.Errorf("%w: %s requires a nutrition day log", ErrInvalidEventPayload, e.Type)
		}
	case EventTypeBodyUpdated:
		if e.Payload == nil {
			return nil
		}
		if _, ok := e.Payload.(BodyUpdate); !ok {
			return fmt.Errorf("%w: %s requires a body update", ErrInvalidEventPayload, e.Type)
		}
	case EventTypeSleepLogged:
		if e.Payload == nil {
			return nil
		}
		if _, ok := e.Payload.(SleepReport); !ok {
			return fmt.Errorf("%w: %s requires a sleep report", ErrInvalidEventPayload, e.Type)
		}
	case EventTypeScanAnalyzed:
		if e.Payload == nil {
			return nil
		}
		if _, ok := e.Payload.(ScanReport); !ok {
			return fmt.Errorf("%w: %s requires a scan report", ErrInvalidEventPayload, e.Type)
		}
	}
	return nil
}
