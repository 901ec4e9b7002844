package pipeline

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/spendsnap/spendsnap/pkg/accounts"
	"github.com/spendsnap/spendsnap/pkg/common"
	"github.com/spendsnap/spendsnap/pkg/models"
)

const DefaultMinConfidence = 0.4

type Config struct {
	Registry      *accounts.Registry
	Extractor     Extractor
	Geocoder      Geocoder
	Budget        Budget
	MinConfidence float64
}

// Pipeline is the non-interactive path: filter, extract, resolve, enrich,
// persist, without any chat round-trip.
type Pipeline struct {
	registry      *accounts.Registry
	extractor     Extractor
	geocoder      Geocoder
	budget        Budget
	minConfidence float64
}

func NewPipeline(cfg *Config) *Pipeline {
	minConfidence := cfg.MinConfidence
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}

	return &Pipeline{
		registry:      cfg.Registry,
		extractor:     cfg.Extractor,
		geocoder:      cfg.Geocoder,
		budget:        cfg.Budget,
		minConfidence: minConfidence,
	}
}

func (p *Pipeline) Process(ctx context.Context, payload Payload) Result {
	logger := zerolog.Ctx(ctx)

	account, ok := p.registry.ByPackageID(payload.PackageID)
	if !ok {
		logger.Info().
			Str("package_id", payload.PackageID).
			Msg("skipping payload from unregistered app")

		return Result{
			Reason: "source app is not allow-listed",
			Err:    errors.Wrapf(common.ErrSourceNotAllowed, "package %s", payload.PackageID),
		}
	}

	ext, err := p.extract(ctx, payload)
	if err != nil {
		return Result{Err: errors.Wrap(err, "extraction failed")}
	}

	if !ext.IsTransaction {
		return Result{Reason: "Not a financial transaction", Err: common.ErrNotTransaction}
	}

	if ext.Confidence < p.minConfidence {
		logger.Info().
			Float64("confidence", ext.Confidence).
			Str("merchant", ext.Merchant).
			Msg("discarding low-confidence extraction")

		return Result{Reason: "Extraction confidence too low", Err: common.ErrLowConfidence}
	}

	// Enrichment is strictly best effort; the geocoder itself never errors.
	location := ""
	if payload.Location != nil {
		location = p.geocoder.ReverseGeocode(ctx, payload.Location.Latitude, payload.Location.Longitude)
	}

	now := payload.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	tx := models.BuildBudgetTransaction(ext, account.ID, account.DefaultCategory, payload.Text, location, now)

	id, err := p.budget.CreateTransaction(ctx, tx)
	if err != nil {
		return Result{Err: errors.Wrap(err, "failed to persist transaction")}
	}

	logger.Info().
		Str("transaction_id", id).
		Str("account_id", account.ID).
		Str("payee", tx.Payee).
		Msg("transaction recorded")

	return Result{Success: true, TransactionID: id}
}

func (p *Pipeline) extract(ctx context.Context, payload Payload) (*models.ExtractedTransaction, error) {
	if payload.ImageBase64 != "" {
		return p.extractor.ExtractFromImage(ctx, payload.ImageBase64, payload.ImageMIME)
	}

	if payload.Text != "" {
		return p.extractor.ExtractFromText(ctx, payload.Text)
	}

	return nil, errors.New("payload has neither text nor image")
}
