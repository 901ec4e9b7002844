package common

import "github.com/cockroachdb/errors"

var (
	ErrNotTransaction = errors.New("not a financial transaction")
	ErrLowConfidence  = errors.New("extraction confidence below threshold")
	ErrSourceNotAllowed = errors.New("source app is not allow-listed")
	ErrInvalidAmount    = errors.New("invalid amount")
)
