package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/dto"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/validators"
)

// UpdateAppointmentInput holds the fields to replace; nil fields keep their
// stored value. descripcion and imagen_url can be cleared with null.
type UpdateAppointmentInput struct {
	Date      *string `json:"fecha"`
	StartTime *string `json:"hora_inicio"`
	EndTime   *string `json:"hora_fin"`

	Description dto.OptionalString `json:"descripcion" validate:"omitempty,max=200"`
	ImageURL    dto.OptionalString `json:"imagen_url" validate:"omitempty,max=200"`
}

func (in UpdateAppointmentInput) reschedules() bool {
	return in.Date != nil || in.StartTime != nil || in.EndTime != nil
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies in to the appointment. When the date or times change the
// new slot must still be a valid interval and must not overlap the artist's
// other appointments on that date.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	var (
		updated  *models.Appointment
		conflict *models.Appointment
		slot     domain.Interval
		artistID uint
	)

	err := uc.repo.RunInTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := validators.Struct(in); err != nil {
			return err
		}

		if in.Date != nil {
			if ap.Date, err = domain.ParseDate(*in.Date); err != nil {
				return err
			}
		}
		if in.StartTime != nil {
			if ap.StartTime, err = domain.ParseClock(*in.StartTime); err != nil {
				return err
			}
		}
		if in.EndTime != nil {
			if ap.EndTime, err = domain.ParseClock(*in.EndTime); err != nil {
				return err
			}
		}
		ap.Description = in.Description.Apply(ap.Description)
		ap.ImageURL = in.ImageURL.Apply(ap.ImageURL)

		if in.reschedules() {
			slot = domain.IntervalOf(ap)
			artistID = ap.ArtistID
			if !slot.Valid() {
				return domain.ErrInvalidInterval
			}

			if err := tx.LockArtist(ctx, ap.ArtistID); err != nil {
				return err
			}

			existing, err := tx.ListForArtistOnDate(ctx, ap.ArtistID, ap.Date)
			if err != nil {
				return err
			}

			if conflict = domain.FindOverlap(existing, slot, ap.ID); conflict != nil {
				return domain.ErrOverlap
			}
		}

		if err := tx.Update(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrOverlap) {
			recordConflict(uc.audit, "update", artistID, slot, conflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "cita",
		EntityID: &updated.ID,
	})

	return updated, nil
}
