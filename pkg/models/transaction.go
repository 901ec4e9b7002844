package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendsnap/spendsnap/pkg/common"
)

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

type TransactionStatus string

const (
	StatusCleared   TransactionStatus = "cleared"
	StatusUncleared TransactionStatus = "uncleared"
	StatusPending   TransactionStatus = "pending"
)

// ExtractedTransaction is the model output before any user correction.
// When IsTransaction is false every other field is meaningless.
type ExtractedTransaction struct {
	IsTransaction   bool
	Amount          decimal.Decimal
	Merchant        string
	Type            TransactionType
	Currency        string
	Category        string
	Reference       string
	Notes           string
	TransactionDate *time.Time
	DetectedApp     string
	Confidence      float64
}

func (e *ExtractedTransaction) Validate() error {
	if !e.IsTransaction {
		return nil
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return common.ErrInvalidAmount
	}

	if strings.TrimSpace(e.Merchant) == "" {
		return common.ErrNotTransaction
	}

	if e.Type != TransactionTypeDebit && e.Type != TransactionTypeCredit {
		return common.ErrNotTransaction
	}

	return nil
}

// BudgetTransaction is the canonical record posted to the budgeting
// platform. Amount is always a positive magnitude; direction lives in Type.
type BudgetTransaction struct {
	Date      time.Time
	Amount    decimal.Decimal
	Payee     string
	Type      TransactionType
	AccountID string
	Category  string
	Notes     string
	Status    TransactionStatus
	Currency  string
	Tags      []string
}

// BuildBudgetTransaction assembles the canonical record from an extraction.
// Both the pipeline and the interactive confirm path go through here so the
// two produce identical records for equivalent input.
func BuildBudgetTransaction(
	ext *ExtractedTransaction,
	accountID string,
	defaultCategory string,
	sourceText string,
	location string,
	now time.Time,
) *BudgetTransaction {
	date := now
	if ext.TransactionDate != nil {
		date = *ext.TransactionDate
	}

	category := ext.Category
	if category == "" {
		category = defaultCategory
	}

	var segments []string
	if sourceText != "" {
		segments = append(segments, sourceText)
	} else if ext.Notes != "" {
		segments = append(segments, ext.Notes)
	}
	if ext.Reference != "" {
		segments = append(segments, "Ref: "+ext.Reference)
	}
	if location != "" {
		segments = append(segments, "Location: "+location)
	}

	return &BudgetTransaction{
		Date:      date,
		Amount:    ext.Amount,
		Payee:     ext.Merchant,
		Type:      ext.Type,
		AccountID: accountID,
		Category:  category,
		Notes:     strings.Join(segments, "\n"),
		Status:    StatusCleared,
		Currency:  ext.Currency,
	}
}
