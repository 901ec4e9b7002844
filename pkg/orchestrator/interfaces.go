package orchestrator

import (
	"context"

	"github.com/spendsnap/spendsnap/pkg/accounts"
	"github.com/spendsnap/spendsnap/pkg/models"
	"github.com/spendsnap/spendsnap/pkg/notifications"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package orchestrator_test -source=interfaces.go

type Extractor interface {
	ExtractFromImage(ctx context.Context, imageBase64 string, mimeType string) (*models.ExtractedTransaction, error)
}

type Budget interface {
	CreateTransaction(ctx context.Context, tx *models.BudgetTransaction) (string, error)
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

type Chat interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]notifications.Button) (int64, error)
	EditMessage(ctx context.Context, chatID int64, messageID int64, text string, keyboard [][]notifications.Button) error
	AnswerCallback(ctx context.Context, callbackID string, text string) error
}

type DraftStore interface {
	Set(conversationID int64, draft *models.PendingDraft)
	Get(conversationID int64) *models.PendingDraft
	Delete(conversationID int64)
}

type AccountDetector interface {
	Detect(sig accounts.Signals) accounts.DetectionResult
	RecordUsage(accountID string)
	RecentAccounts() []string
}
