package models

import "time"

type DraftState string

const (
	StateAwaitingAccount      DraftState = "awaiting_account_selection"
	StateAwaitingConfirmation DraftState = "awaiting_confirmation"
	StateEditingAmount        DraftState = "editing_amount"
	StateEditingMerchant      DraftState = "editing_merchant"
	StateEditingCategory      DraftState = "editing_category"
	StateEditingNotes         DraftState = "editing_notes"
)

func (s DraftState) IsEditing() bool {
	switch s {
	case StateEditingAmount, StateEditingMerchant, StateEditingCategory, StateEditingNotes:
		return true
	default:
		return false
	}
}

type Location struct {
	Latitude  float64
	Longitude float64
}

// PendingDraft is one conversation's in-flight transaction. There is at most
// one per conversation id; a newer screenshot replaces it outright.
type PendingDraft struct {
	ConversationID int64
	UIMessageID    int64
	State          DraftState
	Data           *ExtractedTransaction
	AccountID      string
	SourceImage    string
	SourceText     string
	Location       *Location
	SourceApp      string
	Timestamp      time.Time
	CreatedAt      time.Time
}
