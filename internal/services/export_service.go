package services

import (
	"context"
	"time"

	"github.com/cvlm/crm-backend/internal/export"
	"github.com/cvlm/crm-backend/internal/utils"
)

type ExportService interface {
	// ExportCSV renders the whole collection and returns the bytes
	// with the dated artifact filename.
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

type exportService struct {
	collection *Collection
	now        func() time.Time
}

func NewExportService(collection *Collection) ExportService {
	return &exportService{collection: collection, now: time.Now}
}

func (s *exportService) ExportCSV(_ context.Context) ([]byte, string, error) {
	const op = "ExportService.ExportCSV"

	data, err := export.Marshal(s.collection.All())
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to render export", err)
	}
	return data, export.Filename(s.now()), nil
}
