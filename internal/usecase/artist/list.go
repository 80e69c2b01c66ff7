package artist

import (
	"context"

	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type ListArtists struct {
	repo domain.Repository
}

func NewListArtists(repo domain.Repository) *ListArtists {
	return &ListArtists{repo: repo}
}

func (uc *ListArtists) Execute(ctx context.Context) ([]models.Artist, error) {
	return uc.repo.List(ctx)
}
