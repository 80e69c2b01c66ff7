package client

import "github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"

var (
	ErrNotFound        = httperr.NotFoundErr("Cliente no encontrado")
	ErrEmailTaken      = httperr.Conflict("Email ya existe")
	ErrHasAppointments = httperr.Conflict("El cliente tiene citas registradas")
)
