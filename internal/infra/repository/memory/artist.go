package memory

import (
	"context"

	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type ArtistRepository struct {
	s *Store
}

func (r *ArtistRepository) List(_ context.Context) ([]models.Artist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Artist, 0, len(r.s.artists))
	for _, id := range sortedIDs(r.s.artists) {
		out = append(out, cloneArtist(r.s.artists[id]))
	}
	return out, nil
}

func (r *ArtistRepository) GetByID(_ context.Context, id uint) (*models.Artist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a = cloneArtist(a)
	return &a, nil
}

func (r *ArtistRepository) Create(_ context.Context, a *models.Artist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastArtistID++
	a.ID = r.s.lastArtistID
	r.s.artists[a.ID] = cloneArtist(*a)
	return nil
}

func (r *ArtistRepository) Update(_ context.Context, a *models.Artist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.artists[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.artists[a.ID] = cloneArtist(*a)
	return nil
}

func (r *ArtistRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.artists[id]; !ok {
		return domain.ErrNotFound
	}
	if r.s.referenced(func(ap models.Appointment) bool { return ap.ArtistID == id }) {
		return domain.ErrHasAppointments
	}

	delete(r.s.artists, id)
	return nil
}

func cloneArtist(a models.Artist) models.Artist {
	a.Style = cloneStr(a.Style)
	return a
}

var _ domain.Repository = (*ArtistRepository)(nil)
