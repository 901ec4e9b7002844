package pipeline

import (
	"context"

	"github.com/spendsnap/spendsnap/pkg/models"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package pipeline_test -source=interfaces.go

type Extractor interface {
	ExtractFromText(ctx context.Context, text string) (*models.ExtractedTransaction, error)
	ExtractFromImage(ctx context.Context, imageBase64 string, mimeType string) (*models.ExtractedTransaction, error)
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

type Budget interface {
	CreateTransaction(ctx context.Context, tx *models.BudgetTransaction) (string, error)
}
