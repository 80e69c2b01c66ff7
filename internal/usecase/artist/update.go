package artist

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/dto"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/validators"
)

type UpdateArtistInput struct {
	Name  *string            `json:"nombre" validate:"omitempty,max=120"`
	Style dto.OptionalString `json:"estilo" validate:"omitempty,max=200"`
}

type UpdateArtist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateArtist(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateArtist {
	return &UpdateArtist{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateArtist) Execute(
	ctx context.Context,
	id uint,
	in UpdateArtistInput,
) (*models.Artist, error) {

	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.Validation("nombre no puede estar vacío")
		}
		a.Name = name
	}
	a.Style = in.Style.Apply(a.Style)

	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "artist_updated",
		Entity:   "tatuador",
		EntityID: &a.ID,
	})

	return a, nil
}
