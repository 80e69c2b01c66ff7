package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/dto"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/validators"
)

// UpdateClientInput holds the fields to replace; nil fields keep their
// stored value. telefono can be cleared with null.
type UpdateClientInput struct {
	Name  *string            `json:"nombre" validate:"omitempty,max=120"`
	Email *string            `json:"email" validate:"omitempty,max=120"`
	Phone dto.OptionalString `json:"telefono" validate:"omitempty,max=30"`
}

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	id uint,
	in UpdateClientInput,
) (*models.Client, error) {

	c, err := uc.repo.GetByID(ctx, id)
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
		c.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, httperr.Validation("email no puede estar vacío")
		}
		c.Email = email
	}
	c.Phone = in.Phone.Apply(c.Phone)

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "cliente",
		EntityID: &c.ID,
	})

	return c, nil
}
