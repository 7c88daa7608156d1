package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/louvor-app/worship-planner/internal/models"
	"github.com/louvor-app/worship-planner/internal/repository"
)

// SlotKey is the fixed name of the durable state slot.
const SlotKey = "worship-planner-storage"

// Listener is invoked with a snapshot of the new state after every mutation.
type Listener func(models.State)

// Store is an observable state container owning all domain collections.
// Every mutation computes a new snapshot from the old one, installs it,
// persists the full state to the slot and then notifies listeners. Mutations
// on absent ids are silent no-ops; none of the mutation methods returns a
// value.
type Store struct {
	mu    sync.RWMutex
	state models.State

	slot repository.StateSlot
	log  *logrus.Logger

	// seq numbers each installed snapshot; pmu serializes slot writes and
	// persistedSeq drops any write older than one already persisted, so an
	// older snapshot can never overwrite a newer one in the slot.
	seq          uint64
	pmu          sync.Mutex
	persistedSeq uint64

	lmu       sync.Mutex
	listeners []Listener
}

// New builds a store seeded from the slot's persisted state, falling back to
// the fixed seed dataset when the slot is empty. A corrupt payload is logged
// and treated the same as an empty slot.
func New(ctx context.Context, slot repository.StateSlot, log *logrus.Logger) (*Store, error) {
	s := &Store{slot: slot, log: log}

	payload, err := slot.Load(ctx)
	switch {
	case err == repository.ErrSlotEmpty:
		s.state = SeedState()
	case err != nil:
		return nil, err
	default:
		var state models.State
		if jsonErr := json.Unmarshal(payload, &state); jsonErr != nil {
			log.WithError(jsonErr).Warn("persisted state is unreadable, falling back to seed data")
			s.state = SeedState()
		} else {
			s.state = state
		}
	}
	return s, nil
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, l)
	idx := len(s.listeners) - 1
	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		s.listeners[idx] = nil
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// mutate runs fn against a copy of the state, installs the result, persists
// it and notifies listeners. Persistence is synchronous with the mutation;
// a write that raced behind a newer snapshot is dropped rather than allowed
// to regress the slot. If a write fails the in-memory state has already
// advanced and the durable copy falls behind until the next successful
// write.
func (s *Store) mutate(fn func(*models.State)) {
	s.mu.Lock()
	next := s.state.Clone()
	fn(&next)
	s.state = next
	s.seq++
	seq := s.seq
	snapshot := next.Clone()
	s.mu.Unlock()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.log.WithError(err).Error("failed to serialize state")
	} else {
		s.pmu.Lock()
		if seq > s.persistedSeq {
			if err := s.slot.Save(context.Background(), payload); err != nil {
				s.log.WithError(err).Error("failed to persist state")
			} else {
				s.persistedSeq = seq
			}
		}
		s.pmu.Unlock()
	}

	s.lmu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.lmu.Unlock()
	for _, l := range listeners {
		if l != nil {
			l(snapshot)
		}
	}
}

// SetCurrentUser replaces the active user unconditionally; nil clears it.
func (s *Store) SetCurrentUser(user *models.User) {
	s.mutate(func(st *models.State) {
		if user == nil {
			st.CurrentUser = nil
			return
		}
		u := *user
		st.CurrentUser = &u
	})
}

func (s *Store) AddUser(user models.User) {
	s.mutate(func(st *models.State) {
		st.Users = append(st.Users, user)
	})
}

func (s *Store) UpdateUser(id string, patch models.UserPatch) {
	s.mutate(func(st *models.State) {
		for i := range st.Users {
			if st.Users[i].ID == id {
				patch.Apply(&st.Users[i])
				return
			}
		}
	})
}

func (s *Store) AddSong(song models.Song) {
	s.mutate(func(st *models.State) {
		st.Songs = append(st.Songs, song)
	})
}

func (s *Store) UpdateSong(id string, patch models.SongPatch) {
	s.mutate(func(st *models.State) {
		for i := range st.Songs {
			if st.Songs[i].ID == id {
				patch.Apply(&st.Songs[i])
				return
			}
		}
	})
}

func (s *Store) DeleteSong(id string) {
	s.mutate(func(st *models.State) {
		for i := range st.Songs {
			if st.Songs[i].ID == id {
				st.Songs = append(st.Songs[:i], st.Songs[i+1:]...)
				return
			}
		}
	})
}

func (s *Store) AddService(service models.ServiceEvent) {
	s.mutate(func(st *models.State) {
		st.Services = append(st.Services, service)
	})
}

func (s *Store) UpdateService(id string, patch models.ServicePatch) {
	s.mutate(func(st *models.State) {
		for i := range st.Services {
			if st.Services[i].ID == id {
				patch.Apply(&st.Services[i])
				return
			}
		}
	})
}

func (s *Store) DeleteService(id string) {
	s.mutate(func(st *models.State) {
		for i := range st.Services {
			if st.Services[i].ID == id {
				st.Services = append(st.Services[:i], st.Services[i+1:]...)
				return
			}
		}
	})
}

func (s *Store) AddRehearsal(rehearsal models.Rehearsal) {
	s.mutate(func(st *models.State) {
		st.Rehearsals = append(st.Rehearsals, rehearsal)
	})
}

func (s *Store) UpdateRehearsal(id string, patch models.RehearsalPatch) {
	s.mutate(func(st *models.State) {
		for i := range st.Rehearsals {
			if st.Rehearsals[i].ID == id {
				patch.Apply(&st.Rehearsals[i])
				return
			}
		}
	})
}

func (s *Store) DeleteRehearsal(id string) {
	s.mutate(func(st *models.State) {
		for i := range st.Rehearsals {
			if st.Rehearsals[i].ID == id {
				st.Rehearsals = append(st.Rehearsals[:i], st.Rehearsals[i+1:]...)
				return
			}
		}
	})
}

func (s *Store) AddNotification(notification models.Notification) {
	s.mutate(func(st *models.State) {
		st.Notifications = append(st.Notifications, notification)
	})
}

// MarkNotificationRead sets the read flag of one notification; all other
// fields and notifications are untouched.
func (s *Store) MarkNotificationRead(id string) {
	s.mutate(func(st *models.State) {
		for i := range st.Notifications {
			if st.Notifications[i].ID == id {
				st.Notifications[i].Read = true
				return
			}
		}
	})
}
