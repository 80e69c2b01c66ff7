// Package memory keeps clients, artists and appointments in process memory.
// It enforces the same email uniqueness and foreign-key rules as the
// PostgreSQL schema and is used for local runs (DB_DRIVER=memory) and tests.
package memory

import (
	"sort"
	"sync"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type Store struct {
	mu sync.RWMutex
	// txMu serializes appointment transactions
	txMu sync.Mutex

	clients      map[uint]models.Client
	artists      map[uint]models.Artist
	appointments map[uint]models.Appointment

	lastClientID      uint
	lastArtistID      uint
	lastAppointmentID uint
}

func NewStore() *Store {
	return &Store{
		clients:      make(map[uint]models.Client),
		artists:      make(map[uint]models.Artist),
		appointments: make(map[uint]models.Appointment),
	}
}

func (s *Store) Clients() *ClientRepository {
	return &ClientRepository{s: s}
}

func (s *Store) Artists() *ArtistRepository {
	return &ArtistRepository{s: s}
}

func (s *Store) Appointments() *AppointmentRepository {
	return &AppointmentRepository{s: s}
}

// referenced reports whether any appointment matches pred. Callers hold mu.
func (s *Store) referenced(pred func(models.Appointment) bool) bool {
	for _, ap := range s.appointments {
		if pred(ap) {
			return true
		}
	}
	return false
}

func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
