package memory

import (
	"context"

	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type ClientRepository struct {
	s *Store
}

func (r *ClientRepository) List(_ context.Context) ([]models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Client, 0, len(r.s.clients))
	for _, id := range sortedIDs(r.s.clients) {
		out = append(out, cloneClient(r.s.clients[id]))
	}
	return out, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id uint) (*models.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c = cloneClient(c)
	return &c, nil
}

func (r *ClientRepository) Create(_ context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(c.Email, 0) {
		return domain.ErrEmailTaken
	}

	r.s.lastClientID++
	c.ID = r.s.lastClientID
	r.s.clients[c.ID] = cloneClient(*c)
	return nil
}

func (r *ClientRepository) Update(_ context.Context, c *models.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(c.Email, c.ID) {
		return domain.ErrEmailTaken
	}

	r.s.clients[c.ID] = cloneClient(*c)
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrNotFound
	}
	if r.s.referenced(func(ap models.Appointment) bool { return ap.ClientID == id }) {
		return domain.ErrHasAppointments
	}

	delete(r.s.clients, id)
	return nil
}

func (r *ClientRepository) emailTaken(email string, exceptID uint) bool {
	for id, c := range r.s.clients {
		if id != exceptID && c.Email == email {
			return true
		}
	}
	return false
}

func cloneClient(c models.Client) models.Client {
	c.Phone = cloneStr(c.Phone)
	return c
}

var _ domain.Repository = (*ClientRepository)(nil)
