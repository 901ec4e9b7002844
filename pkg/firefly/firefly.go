package firefly

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/shopspring/decimal"

	"github.com/spendsnap/spendsnap/pkg/models"
)

// Firefly is the budgeting-platform client. Each confirmed draft ends up
// here exactly once.
type Firefly struct {
	cl         *req.Client
	apiKey     string
	fireflyURL string
}

func NewFirefly(
	apiKey string,
	fireflyURL string,
	cl *req.Client,
) *Firefly {
	return &Firefly{
		cl:         cl,
		fireflyURL: fireflyURL,
		apiKey:     apiKey,
	}
}

func (f *Firefly) ListAccounts(ctx context.Context) ([]*Account, error) {
	var apiResp GenericApiResponse[[]*Account]

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetSuccessResult(&apiResp).
		SetQueryParam("limit", "100500").
		Get(f.fireflyURL + "/api/v1/accounts")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return apiResp.Data, nil
}

// CreateTransaction posts tx and returns the platform-side record id.
func (f *Firefly) CreateTransaction(
	ctx context.Context,
	tx *models.BudgetTransaction,
) (string, error) {
	split := TransactionSplit{
		Date:         tx.Date.Format(time.RFC3339),
		Amount:       tx.Amount.StringFixed(2),
		Description:  tx.Payee,
		CategoryName: tx.Category,
		CurrencyCode: tx.Currency,
		Notes:        tx.Notes,
		Reconciled:   tx.Status == models.StatusCleared,
		Tags:         tx.Tags,
	}

	switch tx.Type {
	case models.TransactionTypeCredit:
		split.Type = "deposit"
		split.DestinationID = tx.AccountID
		split.SourceName = tx.Payee
	default:
		split.Type = "withdrawal"
		split.SourceID = tx.AccountID
		split.DestinationName = tx.Payee
	}

	var apiResp GenericApiResponse[TransactionRead]

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetBody(TransactionRequest{
			Transactions: []TransactionSplit{split},
		}).
		SetSuccessResult(&apiResp).
		Post(f.fireflyURL + "/api/v1/transactions")
	if err != nil {
		return "", err
	}

	if resp.IsErrorState() {
		return "", errors.Newf("got error response: %s", resp.String())
	}

	return apiResp.Data.Id, nil
}

// SearchTransactions lists an account's transactions since the given date.
// Used by the statement job's duplicate window.
func (f *Firefly) SearchTransactions(
	ctx context.Context,
	accountID string,
	since time.Time,
) ([]*models.BudgetTransaction, error) {
	var apiResp GenericApiResponse[[]*TransactionRead]

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetSuccessResult(&apiResp).
		SetQueryParam("start", since.Format("2006-01-02")).
		Get(f.fireflyURL + "/api/v1/accounts/" + accountID + "/transactions")
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	var out []*models.BudgetTransaction
	for _, read := range apiResp.Data {
		for _, split := range read.Attributes.Transactions {
			amount, amountErr := decimal.NewFromString(split.Amount)
			if amountErr != nil {
				return nil, errors.Wrapf(amountErr, "bad amount %q in transaction %s", split.Amount, read.Id)
			}

			date, dateErr := time.Parse(time.RFC3339, split.Date)
			if dateErr != nil {
				return nil, errors.Wrapf(dateErr, "bad date %q in transaction %s", split.Date, read.Id)
			}

			txType := models.TransactionTypeDebit
			if split.Type == "deposit" {
				txType = models.TransactionTypeCredit
			}

			out = append(out, &models.BudgetTransaction{
				Date:      date,
				Amount:    amount,
				Payee:     split.Description,
				Type:      txType,
				AccountID: accountID,
				Category:  split.CategoryName,
				Notes:     split.Notes,
				Currency:  split.CurrencyCode,
			})
		}
	}

	return out, nil
}

// Validate checks connectivity and credentials against the about endpoint.
func (f *Firefly) Validate(ctx context.Context) error {
	var apiResp GenericApiResponse[About]

	resp, err := f.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(f.apiKey).
		SetSuccessResult(&apiResp).
		Get(f.fireflyURL + "/api/v1/about")
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	return nil
}
