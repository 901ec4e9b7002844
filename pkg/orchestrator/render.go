package orchestrator

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/spendsnap/spendsnap/pkg/accounts"
	"github.com/spendsnap/spendsnap/pkg/models"
	"github.com/spendsnap/spendsnap/pkg/notifications"
)

func (o *Orchestrator) confirmationText(draft *models.PendingDraft) string {
	var sb strings.Builder

	sb.WriteString("💳 New transaction\n\n")
	sb.WriteString(fmt.Sprintf("Amount: %s %s\n", draft.Data.Amount.StringFixed(2), draft.Data.Currency))
	sb.WriteString(fmt.Sprintf("Merchant: %s\n", draft.Data.Merchant))
	sb.WriteString(fmt.Sprintf("Type: %s\n", draft.Data.Type))

	if draft.Data.Category != "" {
		sb.WriteString(fmt.Sprintf("Category: %s\n", draft.Data.Category))
	}
	if draft.Data.Notes != "" {
		sb.WriteString(fmt.Sprintf("Notes: %s\n", draft.Data.Notes))
	}
	if draft.Data.TransactionDate != nil {
		sb.WriteString(fmt.Sprintf("Date: %s\n", draft.Data.TransactionDate.Format("2006-01-02")))
	}

	if account, ok := o.registry.ByID(draft.AccountID); ok {
		label := account.Label
		if account.Icon != "" {
			label = account.Icon + " " + label
		}
		sb.WriteString(fmt.Sprintf("\nAccount: %s\n", label))
	}

	sb.WriteString("\nRecord it?")

	return sb.String()
}

func (o *Orchestrator) accountPickerText(draft *models.PendingDraft) string {
	var sb strings.Builder

	sb.WriteString("💳 New transaction\n\n")
	sb.WriteString(fmt.Sprintf("Amount: %s %s\n", draft.Data.Amount.StringFixed(2), draft.Data.Currency))
	sb.WriteString(fmt.Sprintf("Merchant: %s\n", draft.Data.Merchant))
	sb.WriteString("\nWhich account is this from?")

	return sb.String()
}

func confirmationKeyboard() [][]notifications.Button {
	return [][]notifications.Button{
		{
			{Text: "✅ Confirm", CallbackData: cbConfirm},
			{Text: "✏️ Edit", CallbackData: cbEdit},
		},
		{
			{Text: "❌ Cancel", CallbackData: cbCancel},
		},
	}
}

// accountPickerKeyboard lists suggested matches first, then the remaining
// accounts with recently used ones ahead, two buttons per row.
func (o *Orchestrator) accountPickerKeyboard(detection accounts.DetectionResult) [][]notifications.Button {
	var buttons []notifications.Button

	seen := map[string]struct{}{}
	for _, candidate := range detection.Candidates {
		seen[candidate.ID] = struct{}{}
		buttons = append(buttons, accountButton(candidate.Icon, candidate.Label, candidate.ID))
	}

	var remaining []*accounts.Definition
	for _, id := range o.detector.RecentAccounts() {
		if _, ok := seen[id]; ok {
			continue
		}
		if account, ok := o.registry.ByID(id); ok {
			seen[id] = struct{}{}
			remaining = append(remaining, account)
		}
	}
	for _, account := range o.registry.All() {
		if _, ok := seen[account.ID]; ok {
			continue
		}
		remaining = append(remaining, account)
	}

	for _, account := range remaining {
		buttons = append(buttons, accountButton(account.Icon, account.Label, account.ID))
	}

	keyboard := lo.Chunk(buttons, 2)
	keyboard = append(keyboard, []notifications.Button{
		{Text: "❌ Cancel", CallbackData: cbCancel},
	})

	return keyboard
}

func accountButton(icon, label, id string) notifications.Button {
	text := label
	if icon != "" {
		text = icon + " " + label
	}

	return notifications.Button{
		Text:         text,
		CallbackData: cbAccountPrefix + id,
	}
}

func fieldPickerKeyboard() [][]notifications.Button {
	return [][]notifications.Button{
		{
			{Text: "Amount", CallbackData: cbEditPrefix + "amount"},
			{Text: "Merchant", CallbackData: cbEditPrefix + "merchant"},
		},
		{
			{Text: "Category", CallbackData: cbEditPrefix + "category"},
			{Text: "Notes", CallbackData: cbEditPrefix + "notes"},
		},
		{
			{Text: "« Back", CallbackData: cbBackToConfirm},
		},
	}
}

func amountEditorKeyboard() [][]notifications.Button {
	return [][]notifications.Button{
		{
			{Text: "+10", CallbackData: cbAmountPrefix + "add_10"},
			{Text: "+50", CallbackData: cbAmountPrefix + "add_50"},
			{Text: "+100", CallbackData: cbAmountPrefix + "add_100"},
		},
		{
			{Text: "-10", CallbackData: cbAmountPrefix + "sub_10"},
			{Text: "-50", CallbackData: cbAmountPrefix + "sub_50"},
			{Text: "-100", CallbackData: cbAmountPrefix + "sub_100"},
		},
		{
			{Text: "« Back", CallbackData: cbBackToConfirm},
		},
	}
}

func backKeyboard() [][]notifications.Button {
	return [][]notifications.Button{
		{
			{Text: "« Back", CallbackData: cbBackToConfirm},
		},
	}
}

func editorPrompt(draft *models.PendingDraft, state models.DraftState) string {
	switch state {
	case models.StateEditingAmount:
		return fmt.Sprintf(
			"Amount is %s %s.\n\nUse the buttons or send a new amount.",
			draft.Data.Amount.StringFixed(2), draft.Data.Currency)
	case models.StateEditingMerchant:
		return fmt.Sprintf("Merchant is %q.\n\nSend a new merchant name.", draft.Data.Merchant)
	case models.StateEditingCategory:
		category := draft.Data.Category
		if category == "" {
			category = "not set"
		}
		return fmt.Sprintf("Category is %s.\n\nSend a new category.", category)
	default:
		notes := draft.Data.Notes
		if notes == "" {
			notes = "not set"
		}
		return fmt.Sprintf("Notes: %s\n\nSend new notes.", notes)
	}
}
