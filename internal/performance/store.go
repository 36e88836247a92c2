package performance

import (
	"sync"

	"github.com/fitpro-app/fitpro/internal/profile"
)

// Subscriber receives the post-merge state after every applied event.
type Subscriber func(State)

type subscription struct {
	fn Subscriber
}

// Store owns the performance state and its subscriber list. The mutex
// serializes event application, so concurrent submissions (two clients
// of the same session) apply in some total order instead of racing.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []*subscription
}

func NewStore() *Store {
	return &Store{
		state: DefaultState(),
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and immediately invokes it with the current
// state, then again after every applied event. The returned function
// removes this registration only. Subscribing the same callback twice
// registers it twice.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	current := s.state
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.subs {
			if s.subs[i] == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// ProcessEvent reduces the event into the state and notifies all
// subscribers with the post-merge state, synchronously, in
// registration order. An invalid payload leaves the state untouched
// and notifies nobody. Notification runs outside the lock: state
// transitions are totally ordered, but fan-outs of concurrently
// applied events may interleave.
func (s *Store) ProcessEvent(event Event, prof profile.UserProfile) (State, error) {
	s.mu.Lock()
	next, err := reduce(s.state, event, prof)
	if err != nil {
		s.mu.Unlock()
		return next, err
	}
	s.state = next
	subs := make([]*subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return next, nil
}
