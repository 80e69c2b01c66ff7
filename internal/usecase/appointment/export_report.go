package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/appointment"
)

type ExportReport struct {
	repo domain.Repository
}

func NewExportReport(repo domain.Repository) *ExportReport {
	return &ExportReport{repo: repo}
}

// Execute returns the XML report of all appointments grouped by artist.
func (uc *ExportReport) Execute(ctx context.Context) ([]byte, error) {
	aps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildReport(aps).Document()
}
