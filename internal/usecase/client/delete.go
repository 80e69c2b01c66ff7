package client

import (
	"context"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the client. Clients with appointments are kept and
// domain.ErrHasAppointments is returned.
func (uc *DeleteClient) Execute(ctx context.Context, id uint) (uint, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "cliente",
		EntityID: &id,
	})

	return id, nil
}
