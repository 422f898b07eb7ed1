package extractor

import (
	"context"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/utils"
)

// Extractor turns a raw text blob into a structured candidate record,
// or fails with a displayable message. It never returns a partial
// silent result.
type Extractor interface {
	Extract(ctx context.Context, rawText string) (*models.ExtractedRecord, error)
	Close() error
}

// Disabled returns an Extractor that fails every call with the given
// configuration error. Used when the provider cannot be constructed at
// startup so the failure surfaces per attempt instead of crashing the
// service.
func Disabled(cause error) Extractor {
	return disabled{cause: cause}
}

type disabled struct {
	cause error
}

func (d disabled) Extract(context.Context, string) (*models.ExtractedRecord, error) {
	return nil, utils.E(utils.CodeUnavailable, "Extractor", "extraction provider is not configured", d.cause)
}

func (d disabled) Close() error { return nil }
