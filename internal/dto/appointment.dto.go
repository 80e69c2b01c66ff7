package dto

import (
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID          uint    `json:"id"`
	ClientID    uint    `json:"cliente_id"`
	ArtistID    uint    `json:"tatuador_id"`
	Date        string  `json:"fecha"`
	StartTime   string  `json:"hora_inicio"`
	EndTime     string  `json:"hora_fin"`
	Description *string `json:"descripcion"`
	ImageURL    *string `json:"imagen_url"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		ClientID:    ap.ClientID,
		ArtistID:    ap.ArtistID,
		Date:        domain.FormatDate(ap.Date),
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Description: ap.Description,
		ImageURL:    ap.ImageURL,
	}
}

// AppointmentListDTO embeds summaries of the client and artist.
type AppointmentListDTO struct {
	ID          uint             `json:"id"`
	ClientID    uint             `json:"cliente_id"`
	Client      ClientSummaryDTO `json:"cliente"`
	ArtistID    uint             `json:"tatuador_id"`
	Artist      ArtistDTO        `json:"tatuador"`
	Date        string           `json:"fecha"`
	StartTime   string           `json:"hora_inicio"`
	EndTime     string           `json:"hora_fin"`
	Description *string          `json:"descripcion"`
	ImageURL    *string          `json:"imagen_url"`
}

func NewAppointmentListDTO(ap *models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		ClientID:    ap.ClientID,
		Client:      ClientSummaryDTO{ID: ap.Client.ID, Name: ap.Client.Name},
		ArtistID:    ap.ArtistID,
		Artist:      NewArtistDTO(&ap.Artist),
		Date:        domain.FormatDate(ap.Date),
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Description: ap.Description,
		ImageURL:    ap.ImageURL,
	}
}
