package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendsnap/spendsnap/pkg/accounts"
	"github.com/spendsnap/spendsnap/pkg/common"
	"github.com/spendsnap/spendsnap/pkg/models"
	"github.com/spendsnap/spendsnap/pkg/pipeline"
)

// Callback data grammar understood by HandleCallback.
const (
	cbConfirm       = "confirm"
	cbEdit          = "edit"
	cbCancel        = "cancel"
	cbBackToConfirm = "back_to_confirm"
	cbAccountPrefix = "account:"
	cbEditPrefix    = "edit_"
	cbAmountPrefix  = "amount_"
)

// ScreenshotMeta is whatever the mobile automation forwarded alongside the
// screenshot itself.
type ScreenshotMeta struct {
	PackageID string
	MIMEType  string
	Text      string
	Timestamp time.Time
	Location  *models.Location
}

type Config struct {
	Store         DraftStore
	Detector      AccountDetector
	Registry      *accounts.Registry
	Extractor     Extractor
	Budget        Budget
	Geocoder      Geocoder
	Chat          Chat
	MinConfidence float64
}

// Orchestrator drives the interactive capture path: one draft per chat,
// confirmed or corrected through inline buttons and free-text replies.
type Orchestrator struct {
	store         DraftStore
	detector      AccountDetector
	registry      *accounts.Registry
	extractor     Extractor
	budget        Budget
	geocoder      Geocoder
	chat          Chat
	minConfidence float64
}

func NewOrchestrator(cfg *Config) *Orchestrator {
	minConfidence := cfg.MinConfidence
	if minConfidence <= 0 {
		minConfidence = pipeline.DefaultMinConfidence
	}

	return &Orchestrator{
		store:         cfg.Store,
		detector:      cfg.Detector,
		registry:      cfg.Registry,
		extractor:     cfg.Extractor,
		budget:        cfg.Budget,
		geocoder:      cfg.Geocoder,
		chat:          cfg.Chat,
		minConfidence: minConfidence,
	}
}

// HandleScreenshot starts (or restarts) a conversation. An existing draft
// for the same chat is overwritten, never merged.
func (o *Orchestrator) HandleScreenshot(
	ctx context.Context,
	conversationID int64,
	imageBase64 string,
	meta ScreenshotMeta,
) error {
	ext, err := o.extractor.ExtractFromImage(ctx, imageBase64, meta.MIMEType)
	if err != nil {
		_, _ = o.chat.SendMessage(ctx, conversationID,
			"⚠️ Could not read that screenshot, please try again.", nil)

		return errors.Wrap(err, "extraction failed")
	}

	if !ext.IsTransaction || ext.Confidence < o.minConfidence {
		zerolog.Ctx(ctx).Info().
			Bool("is_transaction", ext.IsTransaction).
			Float64("confidence", ext.Confidence).
			Msg("screenshot rejected")

		_, err = o.chat.SendMessage(ctx, conversationID,
			"🤷 That does not look like a transaction, nothing was recorded.", nil)

		return err
	}

	detection := o.detector.Detect(accounts.Signals{
		PackageID: meta.PackageID,
		Extracted: ext,
		AppName:   ext.DetectedApp,
	})

	timestamp := meta.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	draft := &models.PendingDraft{
		ConversationID: conversationID,
		Data:           ext,
		SourceImage:    imageBase64,
		SourceText:     meta.Text,
		Location:       meta.Location,
		SourceApp:      meta.PackageID,
		Timestamp:      timestamp,
		CreatedAt:      time.Now(),
	}

	var messageID int64
	if detection.SelectedAccountID != "" {
		draft.AccountID = detection.SelectedAccountID
		draft.State = models.StateAwaitingConfirmation

		messageID, err = o.chat.SendMessage(ctx, conversationID,
			o.confirmationText(draft), confirmationKeyboard())
	} else {
		draft.State = models.StateAwaitingAccount

		messageID, err = o.chat.SendMessage(ctx, conversationID,
			o.accountPickerText(draft), o.accountPickerKeyboard(detection))
	}
	if err != nil {
		return errors.Wrap(err, "failed to send confirmation message")
	}

	draft.UIMessageID = messageID
	o.store.Set(conversationID, draft)

	return nil
}

// HandleCallback interprets a button press against the conversation's draft.
func (o *Orchestrator) HandleCallback(
	ctx context.Context,
	conversationID int64,
	callbackID string,
	data string,
) error {
	draft := o.store.Get(conversationID)
	if draft == nil {
		return o.chat.AnswerCallback(ctx, callbackID,
			"This session has expired, send a new screenshot to start over.")
	}

	switch {
	case data == cbConfirm:
		return o.confirm(ctx, draft, callbackID)

	case data == cbCancel:
		o.store.Delete(conversationID)
		o.answerCallback(ctx, callbackID, "Cancelled")

		return o.chat.EditMessage(ctx, conversationID, draft.UIMessageID,
			"❌ Cancelled, nothing was recorded.", nil)

	case data == cbEdit:
		o.answerCallback(ctx, callbackID, "")

		return o.chat.EditMessage(ctx, conversationID, draft.UIMessageID,
			"What do you want to change?", fieldPickerKeyboard())

	case data == cbBackToConfirm:
		draft.State = models.StateAwaitingConfirmation
		o.answerCallback(ctx, callbackID, "")

		return o.chat.EditMessage(ctx, conversationID, draft.UIMessageID,
			o.confirmationText(draft), confirmationKeyboard())

	case strings.HasPrefix(data, cbAccountPrefix):
		return o.selectAccount(ctx, draft, callbackID, strings.TrimPrefix(data, cbAccountPrefix))

	case strings.HasPrefix(data, cbAmountPrefix):
		return o.adjustAmount(ctx, draft, callbackID, strings.TrimPrefix(data, cbAmountPrefix))

	case strings.HasPrefix(data, cbEditPrefix):
		return o.startEditing(ctx, draft, callbackID, strings.TrimPrefix(data, cbEditPrefix))

	default:
		zerolog.Ctx(ctx).Warn().Str("data", data).Msg("unknown callback data")
		return o.chat.AnswerCallback(ctx, callbackID, "Unknown action")
	}
}

// HandleTextMessage applies a free-text correction. Outside an editing
// state text is ignored and the draft stays untouched.
func (o *Orchestrator) HandleTextMessage(
	ctx context.Context,
	conversationID int64,
	text string,
) error {
	draft := o.store.Get(conversationID)
	if draft == nil || !draft.State.IsEditing() {
		return nil
	}

	text = strings.TrimSpace(text)

	switch draft.State {
	case models.StateEditingAmount:
		amount, err := parseAmount(text)
		if err != nil {
			_, sendErr := o.chat.SendMessage(ctx, conversationID,
				"That is not a valid amount, send a positive number like 12.50.", nil)

			return sendErr
		}
		draft.Data.Amount = amount

	case models.StateEditingMerchant:
		draft.Data.Merchant = text
	case models.StateEditingCategory:
		draft.Data.Category = text
	case models.StateEditingNotes:
		draft.Data.Notes = text
	}

	draft.State = models.StateAwaitingConfirmation
	o.store.Set(conversationID, draft)

	return o.chat.EditMessage(ctx, conversationID, draft.UIMessageID,
		o.confirmationText(draft), confirmationKeyboard())
}

func (o *Orchestrator) selectAccount(
	ctx context.Context,
	draft *models.PendingDraft,
	callbackID string,
	accountID string,
) error {
	account, ok := o.registry.ByID(accountID)
	if !ok {
		return o.chat.AnswerCallback(ctx, callbackID, "Unknown account")
	}

	o.detector.RecordUsage(account.ID)

	draft.AccountID = account.ID
	draft.State = models.StateAwaitingConfirmation
	o.store.Set(draft.ConversationID, draft)

	o.answerCallback(ctx, callbackID, account.Label)

	return o.chat.EditMessage(ctx, draft.ConversationID, draft.UIMessageID,
		o.confirmationText(draft), confirmationKeyboard())
}

func (o *Orchestrator) confirm(
	ctx context.Context,
	draft *models.PendingDraft,
	callbackID string,
) error {
	if draft.AccountID == "" {
		return o.chat.AnswerCallback(ctx, callbackID, "Pick an account first")
	}

	location := ""
	if draft.Location != nil {
		location = o.geocoder.ReverseGeocode(ctx, draft.Location.Latitude, draft.Location.Longitude)
	}

	defaultCategory := ""
	if account, ok := o.registry.ByID(draft.AccountID); ok {
		defaultCategory = account.DefaultCategory
	}

	tx := models.BuildBudgetTransaction(
		draft.Data, draft.AccountID, defaultCategory, draft.SourceText, location, draft.Timestamp)

	id, err := o.budget.CreateTransaction(ctx, tx)
	if err != nil {
		// Keep the draft so confirmation can be retried without
		// re-sending the screenshot.
		zerolog.Ctx(ctx).Error().Err(err).
			Int64("chat_id", draft.ConversationID).
			Msg("failed to persist transaction")

		o.answerCallback(ctx, callbackID, "Recording failed")

		return o.chat.EditMessage(ctx, draft.ConversationID, draft.UIMessageID,
			"⚠️ Recording failed: "+err.Error()+"\n\n"+o.confirmationText(draft),
			confirmationKeyboard())
	}

	o.detector.RecordUsage(draft.AccountID)
	o.store.Delete(draft.ConversationID)

	o.answerCallback(ctx, callbackID, "Recorded")

	return o.chat.EditMessage(ctx, draft.ConversationID, draft.UIMessageID,
		"✅ Recorded as transaction "+id+".", nil)
}

func (o *Orchestrator) startEditing(
	ctx context.Context,
	draft *models.PendingDraft,
	callbackID string,
	field string,
) error {
	var state models.DraftState
	switch field {
	case "amount":
		state = models.StateEditingAmount
	case "merchant":
		state = models.StateEditingMerchant
	case "category":
		state = models.StateEditingCategory
	case "notes":
		state = models.StateEditingNotes
	default:
		return o.chat.AnswerCallback(ctx, callbackID, "Unknown field")
	}

	draft.State = state
	o.store.Set(draft.ConversationID, draft)

	o.answerCallback(ctx, callbackID, "")

	var keyboard = backKeyboard()
	if state == models.StateEditingAmount {
		keyboard = amountEditorKeyboard()
	}

	return o.chat.EditMessage(ctx, draft.ConversationID, draft.UIMessageID,
		editorPrompt(draft, state), keyboard)
}

func (o *Orchestrator) adjustAmount(
	ctx context.Context,
	draft *models.PendingDraft,
	callbackID string,
	data string,
) error {
	parts := strings.SplitN(data, "_", 2)
	if len(parts) != 2 {
		return o.chat.AnswerCallback(ctx, callbackID, "Unknown action")
	}

	delta, err := decimal.NewFromString(parts[1])
	if err != nil {
		return o.chat.AnswerCallback(ctx, callbackID, "Unknown action")
	}

	switch parts[0] {
	case "add":
	case "sub":
		delta = delta.Neg()
	default:
		return o.chat.AnswerCallback(ctx, callbackID, "Unknown action")
	}

	amount := draft.Data.Amount.Add(delta)
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	draft.Data.Amount = amount
	o.store.Set(draft.ConversationID, draft)

	o.answerCallback(ctx, callbackID, amount.StringFixed(2))

	return o.chat.EditMessage(ctx, draft.ConversationID, draft.UIMessageID,
		editorPrompt(draft, models.StateEditingAmount), amountEditorKeyboard())
}

// answerCallback failures only stop the button spinner a bit later, they
// never abort the transition.
func (o *Orchestrator) answerCallback(ctx context.Context, callbackID string, text string) {
	if err := o.chat.AnswerCallback(ctx, callbackID, text); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to answer callback")
	}
}

func parseAmount(text string) (decimal.Decimal, error) {
	var sb strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}

	amount, err := decimal.NewFromString(sb.String())
	if err != nil {
		return decimal.Zero, errors.Wrapf(common.ErrInvalidAmount, "%q", text)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.Wrapf(common.ErrInvalidAmount, "%q", text)
	}

	return amount, nil
}
