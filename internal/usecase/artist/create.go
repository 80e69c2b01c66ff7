package artist

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/validators"
)

type CreateArtistInput struct {
	Name  string  `json:"nombre" validate:"required,max=120"`
	Style *string `json:"estilo" validate:"omitempty,max=200"`
}

type CreateArtist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateArtist(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateArtist {
	return &CreateArtist{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateArtist) Execute(
	ctx context.Context,
	in CreateArtistInput,
) (*models.Artist, error) {

	in.Name = strings.TrimSpace(in.Name)

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	a := &models.Artist{
		Name:  in.Name,
		Style: in.Style,
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "artist_created",
		Entity:   "tatuador",
		EntityID: &a.ID,
	})

	return a, nil
}
