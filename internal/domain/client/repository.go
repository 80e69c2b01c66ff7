package client

import (
	"context"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)

	GetByID(ctx context.Context, id uint) (*models.Client, error)

	// Create and Update return ErrEmailTaken when the email belongs to
	// another client.
	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error

	// Delete returns ErrHasAppointments while appointments reference the
	// client.
	Delete(ctx context.Context, id uint) error
}
