package memory

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type AppointmentRepository struct {
	s *Store
}

// RunInTx serializes fn against other transactions. Writes made by fn
// before it fails are not undone.
func (r *AppointmentRepository) RunInTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r)
}

func (r *AppointmentRepository) List(_ context.Context) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.s.appointments))
	for _, id := range sortedIDs(r.s.appointments) {
		ap := cloneAppointment(r.s.appointments[id])
		ap.Client = cloneClient(r.s.clients[ap.ClientID])
		ap.Artist = cloneArtist(r.s.artists[ap.ArtistID])
		out = append(out, ap)
	}
	return out, nil
}

func (r *AppointmentRepository) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ap = cloneAppointment(ap)
	return &ap, nil
}

func (r *AppointmentRepository) LockArtist(_ context.Context, artistID uint) error {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.artists[artistID]; !ok {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *AppointmentRepository) ClientExists(_ context.Context, clientID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.clients[clientID]
	return ok, nil
}

func (r *AppointmentRepository) ListForArtistOnDate(
	_ context.Context,
	artistID uint,
	date time.Time,
) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	day := domain.FormatDate(date)

	var out []models.Appointment
	for _, id := range sortedIDs(r.s.appointments) {
		ap := r.s.appointments[id]
		if ap.ArtistID == artistID && domain.FormatDate(ap.Date) == day {
			out = append(out, cloneAppointment(ap))
		}
	}
	return out, nil
}

func (r *AppointmentRepository) Create(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[ap.ClientID]; !ok {
		return domain.ErrClientNotFound
	}
	if _, ok := r.s.artists[ap.ArtistID]; !ok {
		return domain.ErrArtistNotFound
	}

	r.s.lastAppointmentID++
	ap.ID = r.s.lastAppointmentID
	r.s.appointments[ap.ID] = cloneAppointment(*ap)
	return nil
}

func (r *AppointmentRepository) Update(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}

	stored.Date = ap.Date
	stored.StartTime = ap.StartTime
	stored.EndTime = ap.EndTime
	stored.Description = cloneStr(ap.Description)
	stored.ImageURL = cloneStr(ap.ImageURL)
	r.s.appointments[ap.ID] = stored
	return nil
}

func (r *AppointmentRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

// cloneAppointment copies the row without its joined relations.
func cloneAppointment(ap models.Appointment) models.Appointment {
	ap.Description = cloneStr(ap.Description)
	ap.ImageURL = cloneStr(ap.ImageURL)
	ap.Client = models.Client{}
	ap.Artist = models.Artist{}
	return ap
}

var _ domain.Repository = (*AppointmentRepository)(nil)
