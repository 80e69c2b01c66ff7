package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type Repository interface {
	// RunInTx runs fn inside a single transaction. fn must only use the
	// repository it receives.
	RunInTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Read --------
	// List returns every appointment with Client and Artist loaded.
	List(ctx context.Context) ([]models.Appointment, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Conflict check --------
	// LockArtist takes a write lock on the artist row until the
	// transaction ends. Returns ErrArtistNotFound if it does not exist.
	LockArtist(
		ctx context.Context,
		artistID uint,
	) error

	ClientExists(
		ctx context.Context,
		clientID uint,
	) (bool, error)

	ListForArtistOnDate(
		ctx context.Context,
		artistID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Write --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
