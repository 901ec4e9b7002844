package pipeline

import (
	"time"

	"github.com/spendsnap/spendsnap/pkg/models"
)

// Payload is one inbound automation webhook item.
type Payload struct {
	Text        string
	ImageBase64 string
	ImageMIME   string
	PackageID   string
	Timestamp   time.Time
	Location    *models.Location
}

type Result struct {
	Success       bool
	TransactionID string
	// Reason carries the user-facing explanation for non-error rejections
	// (filtered source, not a transaction).
	Reason string
	Err    error
}
