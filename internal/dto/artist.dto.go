package dto

import "github.com/BruksfildServices01/tattoo-scheduler/internal/models"

type ArtistDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"nombre"`
	Style *string `json:"estilo"`
}

func NewArtistDTO(a *models.Artist) ArtistDTO {
	return ArtistDTO{
		ID:    a.ID,
		Name:  a.Name,
		Style: a.Style,
	}
}
