package statement

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/spendsnap/spendsnap/pkg/models"
)

// Definition is one recurring statement transaction, e.g. a monthly credit
// card statement posting.
type Definition struct {
	AccountID  string  `mapstructure:"account_id"`
	Payee      string  `mapstructure:"payee"`
	Amount     float64 `mapstructure:"amount"`
	Currency   string  `mapstructure:"currency"`
	Category   string  `mapstructure:"category"`
	DayOfMonth int     `mapstructure:"day_of_month"`
}

// LoadDefinitions reads the "statements" key of the same YAML file that
// holds the account registry. An absent key is fine.
func LoadDefinitions(path string) ([]Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read statements config")
	}

	var defs []Definition
	if err := v.UnmarshalKey("statements", &defs); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal statements config")
	}

	for _, def := range defs {
		if def.AccountID == "" || def.Payee == "" || def.DayOfMonth < 1 || def.DayOfMonth > 31 {
			return nil, errors.Newf("invalid statement definition for payee %q", def.Payee)
		}
	}

	return defs, nil
}

// DuplicateWindowStart is the lower bound of the dedup lookback: one
// calendar month before now, with Go's usual day normalization.
func DuplicateWindowStart(now time.Time) time.Time {
	return now.AddDate(0, -1, 0)
}

type Job struct {
	budget Budget
	defs   []Definition
}

func NewJob(budget Budget, defs []Definition) *Job {
	return &Job{
		budget: budget,
		defs:   defs,
	}
}

// Run posts every statement due today unless an equivalent transaction
// already exists inside the duplicate window. Meant to fire once a day.
func (j *Job) Run(ctx context.Context, now time.Time) error {
	logger := zerolog.Ctx(ctx)

	var errArr []error
	for _, def := range j.defs {
		if !dueToday(def, now) {
			continue
		}

		created, err := j.runOne(ctx, def, now)
		if err != nil {
			errArr = append(errArr, errors.Wrapf(err, "statement for %s", def.Payee))
			continue
		}

		if created != "" {
			logger.Info().
				Str("transaction_id", created).
				Str("payee", def.Payee).
				Msg("statement transaction recorded")
		}
	}

	return errors.Join(errArr...)
}

func (j *Job) runOne(ctx context.Context, def Definition, now time.Time) (string, error) {
	amount := decimal.NewFromFloat(def.Amount)

	existing, err := j.budget.SearchTransactions(ctx, def.AccountID, DuplicateWindowStart(now))
	if err != nil {
		return "", err
	}

	for _, tx := range existing {
		if tx.Payee == def.Payee && tx.Amount.Equal(amount) {
			zerolog.Ctx(ctx).Info().
				Str("payee", def.Payee).
				Msg("statement already recorded inside duplicate window")

			return "", nil
		}
	}

	return j.budget.CreateTransaction(ctx, &models.BudgetTransaction{
		Date:      now,
		Amount:    amount,
		Payee:     def.Payee,
		Type:      models.TransactionTypeDebit,
		AccountID: def.AccountID,
		Category:  def.Category,
		Status:    models.StatusPending,
		Currency:  def.Currency,
	})
}

func dueToday(def Definition, now time.Time) bool {
	day := def.DayOfMonth

	// Clamp to the last day of short months.
	lastDay := now.AddDate(0, 1, -now.Day()).Day()
	if day > lastDay {
		day = lastDay
	}

	return now.Day() == day
}
