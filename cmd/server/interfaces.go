package main

import (
	"context"

	"github.com/spendsnap/spendsnap/pkg/notifications"
	"github.com/spendsnap/spendsnap/pkg/orchestrator"
	"github.com/spendsnap/spendsnap/pkg/pipeline"
)

type TransactionPipeline interface {
	Process(ctx context.Context, payload pipeline.Payload) pipeline.Result
}

type Orchestrator interface {
	HandleScreenshot(ctx context.Context, conversationID int64, imageBase64 string, meta orchestrator.ScreenshotMeta) error
	HandleCallback(ctx context.Context, conversationID int64, callbackID string, data string) error
	HandleTextMessage(ctx context.Context, conversationID int64, text string) error
}

type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard [][]notifications.Button) (int64, error)
	GetFile(ctx context.Context, fileID string) ([]byte, error)
	React(ctx context.Context, chatID int64, messageID int64, reaction string) error
}

type Validator interface {
	Validate(ctx context.Context) error
}
