package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/validators"
)

type CreateClientInput struct {
	Name  string  `json:"nombre" validate:"required,max=120"`
	Email string  `json:"email" validate:"required,max=120"`
	Phone *string `json:"telefono" validate:"omitempty,max=30"`
}

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	c := &models.Client{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "cliente",
		EntityID: &c.ID,
	})

	return c, nil
}
