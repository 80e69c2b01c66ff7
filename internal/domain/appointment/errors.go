package appointment

import "github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"

var (
	ErrNotFound        = httperr.NotFoundErr("Cita no encontrada")
	ErrOverlap         = httperr.Conflict("El tatuador ya tiene una cita en ese horario")
	ErrInvalidFormat   = httperr.Validation("Formato de fecha u hora inválido")
	ErrInvalidInterval = httperr.Validation("La hora de inicio debe ser anterior a la hora de fin")

	// referenced entities missing on create
	ErrClientNotFound = httperr.Validation("El cliente indicado no existe")
	ErrArtistNotFound = httperr.Validation("El tatuador indicado no existe")
)
