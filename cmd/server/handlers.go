package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spendsnap/spendsnap/pkg/models"
	"github.com/spendsnap/spendsnap/pkg/orchestrator"
	"github.com/spendsnap/spendsnap/pkg/pipeline"
)

// AutomationHandler receives forwarded notifications and screenshots.
// It validates the payload, responds immediately and finishes the work on
// the pool, so a 202 only means "accepted", not "recorded".
type AutomationHandler struct {
	pipeline     TransactionPipeline
	orchestrator Orchestrator
	notifier     Notifier
	pool         *workerpool.WorkerPool
	logger       zerolog.Logger
	chatID       int64
	apiKey       string
}

func NewAutomationHandler(
	pipelineSvc TransactionPipeline,
	orchestratorSvc Orchestrator,
	notifier Notifier,
	pool *workerpool.WorkerPool,
	logger zerolog.Logger,
	chatID int64,
	apiKey string,
) *AutomationHandler {
	return &AutomationHandler{
		pipeline:     pipelineSvc,
		orchestrator: orchestratorSvc,
		notifier:     notifier,
		pool:         pool,
		logger:       logger,
		chatID:       chatID,
		apiKey:       apiKey,
	}
}

func (h *AutomationHandler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if h.apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var payload AutomationPayload
	if err = json.Unmarshal(b, &payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	if payload.Text == "" && payload.ImageBase64 == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("payload needs text or image_base64"))
		return
	}

	if payload.ImageBase64 != "" {
		if _, err = base64.StdEncoding.DecodeString(payload.ImageBase64); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("image_base64 is not valid base64"))
			return
		}
	}

	captureID := uuid.NewString()
	logger := h.logger.With().Str("capture_id", captureID).Logger()

	h.pool.Submit(func() {
		// The request context is gone by the time this runs.
		ctx := logger.WithContext(context.Background())
		h.process(ctx, payload)
	})

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"capture_id": captureID})
}

func (h *AutomationHandler) process(ctx context.Context, payload AutomationPayload) {
	var location *models.Location
	if payload.Latitude != nil && payload.Longitude != nil {
		location = &models.Location{
			Latitude:  *payload.Latitude,
			Longitude: *payload.Longitude,
		}
	}

	timestamp := time.Now()
	if payload.Timestamp > 0 {
		timestamp = time.Unix(payload.Timestamp, 0)
	}

	// Screenshots go through the interactive path; bare notification text
	// is recorded without a conversation.
	if payload.ImageBase64 != "" {
		err := h.orchestrator.HandleScreenshot(ctx, h.chatID, payload.ImageBase64, orchestrator.ScreenshotMeta{
			PackageID: payload.PackageID,
			MIMEType:  payload.ImageMIME,
			Text:      payload.Text,
			Timestamp: timestamp,
			Location:  location,
		})
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to handle screenshot")
		}

		return
	}

	result := h.pipeline.Process(ctx, pipeline.Payload{
		Text:      payload.Text,
		PackageID: payload.PackageID,
		Timestamp: timestamp,
		Location:  location,
	})

	h.notifyResult(ctx, result)
}

func (h *AutomationHandler) notifyResult(ctx context.Context, result pipeline.Result) {
	var text string
	switch {
	case result.Success:
		text = "✅ Recorded transaction " + result.TransactionID + "."
	case result.Reason != "":
		text = "🤷 " + result.Reason + "."
	default:
		zerolog.Ctx(ctx).Error().Err(result.Err).Msg("pipeline failed")
		text = "⚠️ Failed to record transaction: " + result.Err.Error()
	}

	if _, err := h.notifier.SendMessage(ctx, h.chatID, text, nil); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send pipeline notification")
	}
}

// TelegramHandler receives bot updates: button presses, correction text
// and screenshots sent straight to the chat.
type TelegramHandler struct {
	orchestrator Orchestrator
	notifier     Notifier
	pool         *workerpool.WorkerPool
	logger       zerolog.Logger
	apiKey       string
}

func NewTelegramHandler(
	orchestratorSvc Orchestrator,
	notifier Notifier,
	pool *workerpool.WorkerPool,
	logger zerolog.Logger,
	apiKey string,
) *TelegramHandler {
	return &TelegramHandler{
		orchestrator: orchestratorSvc,
		notifier:     notifier,
		pool:         pool,
		logger:       logger,
		apiKey:       apiKey,
	}
}

func (h *TelegramHandler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if h.apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var update Update
	if err = json.Unmarshal(b, &update); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	h.pool.Submit(func() {
		ctx := h.logger.WithContext(context.Background())
		h.dispatch(ctx, update)
	})

	w.WriteHeader(http.StatusOK)
}

func (h *TelegramHandler) dispatch(ctx context.Context, update Update) {
	logger := zerolog.Ctx(ctx)

	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cq := update.CallbackQuery
		err := h.orchestrator.HandleCallback(ctx, cq.Message.Chat.Id, cq.ID, cq.Data)
		if err != nil {
			logger.Error().Err(err).Str("data", cq.Data).Msg("failed to handle callback")
		}

	case update.Message != nil && len(update.Message.Photo) > 0:
		h.handlePhoto(ctx, update.Message)

	case update.Message != nil && update.Message.Text != "":
		err := h.orchestrator.HandleTextMessage(ctx, update.Message.Chat.Id, update.Message.Text)
		if err != nil {
			logger.Error().Err(err).Msg("failed to handle text message")
		}
	}
}

func (h *TelegramHandler) handlePhoto(ctx context.Context, message *Message) {
	logger := zerolog.Ctx(ctx)

	// Acknowledge receipt before the slow extraction round-trip.
	if err := h.notifier.React(ctx, message.Chat.Id, message.MessageID, "👀"); err != nil {
		logger.Warn().Err(err).Msg("failed to react to photo")
	}

	// Telegram sends several sizes; the last one is the largest.
	fileID := message.Photo[len(message.Photo)-1].FileID

	content, err := h.notifier.GetFile(ctx, fileID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to download photo")
		return
	}

	err = h.orchestrator.HandleScreenshot(ctx, message.Chat.Id,
		base64.StdEncoding.EncodeToString(content), orchestrator.ScreenshotMeta{
			Text:      message.Text,
			Timestamp: time.Unix(message.Date, 0),
		})
	if err != nil {
		logger.Error().Err(err).Msg("failed to handle chat screenshot")
	}
}

// HealthHandler checks the extraction and persistence capabilities.
type HealthHandler struct {
	checks map[string]Validator
}

func NewHealthHandler(checks map[string]Validator) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	status := map[string]string{}
	healthy := true

	for name, check := range h.checks {
		if err := check.Validate(r.Context()); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(w).Encode(status)
}
