package artist

import "github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"

var (
	ErrNotFound        = httperr.NotFoundErr("Tatuador no encontrado")
	ErrHasAppointments = httperr.Conflict("El tatuador tiene citas registradas")
)
