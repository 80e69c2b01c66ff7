package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/metrics"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Date      string `json:"fecha" validate:"required"`
	StartTime string `json:"hora_inicio" validate:"required"`
	EndTime   string `json:"hora_fin" validate:"required"`
	ClientID  uint   `json:"cliente_id" validate:"required"`
	ArtistID  uint   `json:"tatuador_id" validate:"required"`

	Description *string `json:"descripcion" validate:"omitempty,max=200"`
	ImageURL    *string `json:"imagen_url" validate:"omitempty,max=200"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	in.Date = strings.TrimSpace(in.Date)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(in.EndTime)
	if err != nil {
		return nil, err
	}

	slot := domain.Interval{Start: start, End: end}
	if !slot.Valid() {
		return nil, domain.ErrInvalidInterval
	}

	ap := &models.Appointment{
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ClientID:    in.ClientID,
		ArtistID:    in.ArtistID,
	}

	// --------------------------------------------------
	// 3️⃣ Conflito + criação na mesma transação
	// --------------------------------------------------
	var conflict *models.Appointment

	err = uc.repo.RunInTx(ctx, func(tx domain.Repository) error {
		if err := tx.LockArtist(ctx, in.ArtistID); err != nil {
			return err
		}

		ok, err := tx.ClientExists(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrClientNotFound
		}

		existing, err := tx.ListForArtistOnDate(ctx, in.ArtistID, date)
		if err != nil {
			return err
		}

		if conflict = domain.FindOverlap(existing, slot, 0); conflict != nil {
			return domain.ErrOverlap
		}

		return tx.Create(ctx, ap)
	})

	if err != nil {
		if errors.Is(err, domain.ErrOverlap) {
			recordConflict(uc.audit, "create", in.ArtistID, slot, conflict)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	metrics.AppointmentsCreatedTotal.Inc()

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "cita",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func recordConflict(
	d *audit.Dispatcher,
	operation string,
	artistID uint,
	slot domain.Interval,
	existing *models.Appointment,
) {
	metrics.AppointmentConflictsTotal.WithLabelValues(operation).Inc()

	meta := map[string]any{
		"operation":   operation,
		"tatuador_id": artistID,
		"hora_inicio": slot.Start,
		"hora_fin":    slot.End,
	}
	if existing != nil {
		meta["cita_existente"] = existing.ID
	}

	d.Dispatch(audit.Event{
		Action:   "appointment_conflict",
		Entity:   "cita",
		Metadata: meta,
	})
}
