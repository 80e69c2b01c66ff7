package dto

import "github.com/BruksfildServices01/tattoo-scheduler/internal/models"

type ClientDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"nombre"`
	Email string  `json:"email"`
	Phone *string `json:"telefono"`
}

func NewClientDTO(c *models.Client) ClientDTO {
	return ClientDTO{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// ClientSummaryDTO is the client as embedded in an appointment listing.
type ClientSummaryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}
