package statement

import (
	"context"
	"time"

	"github.com/spendsnap/spendsnap/pkg/models"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package statement_test -source=interfaces.go

type Budget interface {
	CreateTransaction(ctx context.Context, tx *models.BudgetTransaction) (string, error)
	SearchTransactions(ctx context.Context, accountID string, since time.Time) ([]*models.BudgetTransaction, error)
}
