package artist

import (
	"context"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Artist, error)
	GetByID(ctx context.Context, id uint) (*models.Artist, error)
	Create(ctx context.Context, a *models.Artist) error
	Update(ctx context.Context, a *models.Artist) error

	// Delete returns ErrHasAppointments while appointments reference the
	// artist.
	Delete(ctx context.Context, id uint) error
}
