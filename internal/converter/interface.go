package converter

import (
	"context"
	"converter/pkg/domain"
)

// Converter is the service every front-end calls to convert values and to
// list what can be converted.
//
//go:generate mockgen -package mockconverter -source=interface.go -destination=mock/mockconverter.go *
type Converter interface {
	// Convert resolves the names in c and converts its value.
	// Category and unit names are matched case-insensitively and empty units
	// select the category's default unit. A result that is not finite is
	// rejected with serrors.ErrUnprocessable.
	Convert(ctx context.Context, c domain.Conversion) (*domain.Result, error)
	// Catalog describes every category in display order.
	Catalog(ctx context.Context) []domain.CategoryInfo
}
