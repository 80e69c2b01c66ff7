package artist

import (
	"context"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
)

type DeleteArtist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteArtist(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteArtist {
	return &DeleteArtist{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteArtist) Execute(ctx context.Context, id uint) (uint, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "artist_deleted",
		Entity:   "tatuador",
		EntityID: &id,
	})

	return id, nil
}
