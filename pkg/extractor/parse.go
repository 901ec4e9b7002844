package extractor

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	"github.com/spendsnap/spendsnap/pkg/models"
)

type modelResponse struct {
	IsTransaction   bool    `json:"is_transaction"`
	Amount          float64 `json:"amount"`
	Merchant        string  `json:"merchant"`
	Type            string  `json:"type"`
	Currency        string  `json:"currency"`
	Category        string  `json:"category"`
	Reference       string  `json:"reference"`
	Notes           string  `json:"notes"`
	TransactionDate string  `json:"transaction_date"`
	DetectedApp     string  `json:"detected_app"`
	Confidence      float64 `json:"confidence"`
}

// ParseModelOutput decodes the raw model reply into an ExtractedTransaction,
// tolerating Markdown fences the model was told not to emit.
func ParseModelOutput(raw string) (*models.ExtractedTransaction, error) {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return nil, errors.New("empty model response")
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(clean), &resp); err != nil {
		return nil, errors.Wrapf(err, "malformed model response: %s", raw)
	}

	ext := &models.ExtractedTransaction{
		IsTransaction: resp.IsTransaction,
		Amount:        decimal.NewFromFloat(resp.Amount),
		Merchant:      strings.TrimSpace(resp.Merchant),
		Type:          models.TransactionType(resp.Type),
		Currency:      strings.ToUpper(strings.TrimSpace(resp.Currency)),
		Category:      strings.TrimSpace(resp.Category),
		Reference:     strings.TrimSpace(resp.Reference),
		Notes:         strings.TrimSpace(resp.Notes),
		DetectedApp:   strings.TrimSpace(resp.DetectedApp),
		Confidence:    resp.Confidence,
	}

	if resp.TransactionDate != "" {
		date, err := time.Parse("2006-01-02", resp.TransactionDate)
		if err == nil {
			ext.TransactionDate = &date
		}
	}

	if err := ext.Validate(); err != nil {
		return nil, errors.Wrapf(err, "model response failed validation: %s", spew.Sdump(resp))
	}

	return ext, nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}

	return strings.TrimSpace(s)
}
