package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

func seed(t *testing.T, s *Store) (models.Client, models.Artist, models.Appointment) {
	t.Helper()
	ctx := context.Background()

	c := models.Client{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, s.Clients().Create(ctx, &c))

	a := models.Artist{Name: "Leo"}
	require.NoError(t, s.Artists().Create(ctx, &a))

	ap := models.Appointment{
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		ClientID:  c.ID,
		ArtistID:  a.ID,
	}
	require.NoError(t, s.Appointments().Create(ctx, &ap))

	return c, a, ap
}

func TestClientRepository_UniqueEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c, _, _ := seed(t, s)

	dup := models.Client{Name: "Otra", Email: c.Email}
	assert.ErrorIs(t, s.Clients().Create(ctx, &dup), client.ErrEmailTaken)

	other := models.Client{Name: "Bea", Email: "bea@example.com"}
	require.NoError(t, s.Clients().Create(ctx, &other))
	other.Email = c.Email
	assert.ErrorIs(t, s.Clients().Update(ctx, &other), client.ErrEmailTaken)

	// own email is not a collision
	c.Name = "Ana María"
	assert.NoError(t, s.Clients().Update(ctx, &c))
}

func TestDelete_RestrictedByAppointments(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c, a, ap := seed(t, s)

	assert.ErrorIs(t, s.Clients().Delete(ctx, c.ID), client.ErrHasAppointments)
	assert.ErrorIs(t, s.Artists().Delete(ctx, a.ID), artist.ErrHasAppointments)

	require.NoError(t, s.Appointments().Delete(ctx, ap.ID))
	assert.NoError(t, s.Clients().Delete(ctx, c.ID))
	assert.NoError(t, s.Artists().Delete(ctx, a.ID))
}

func TestAppointmentRepository_ListJoinsRelations(t *testing.T) {
	s := NewStore()
	c, a, _ := seed(t, s)

	aps, err := s.Appointments().List(context.Background())
	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Equal(t, c.Name, aps[0].Client.Name)
	assert.Equal(t, a.Name, aps[0].Artist.Name)
}

func TestAppointmentRepository_CreateChecksReferences(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c, a, _ := seed(t, s)

	missingClient := models.Appointment{ClientID: c.ID + 10, ArtistID: a.ID}
	assert.ErrorIs(t, s.Appointments().Create(ctx, &missingClient), appointment.ErrClientNotFound)

	missingArtist := models.Appointment{ClientID: c.ID, ArtistID: a.ID + 10}
	assert.ErrorIs(t, s.Appointments().Create(ctx, &missingArtist), appointment.ErrArtistNotFound)
}

func TestAppointmentRepository_ListForArtistOnDate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, a, ap := seed(t, s)

	same, err := s.Appointments().ListForArtistOnDate(ctx, a.ID, ap.Date)
	require.NoError(t, err)
	assert.Len(t, same, 1)

	other, err := s.Appointments().ListForArtistOnDate(ctx, a.ID, ap.Date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, other)
}
