package firefly

type GenericApiResponse[T any] struct {
	Data T `json:"data"`
}

type Account struct {
	Id         string            `json:"id"`
	Attributes AccountAttributes `json:"attributes"`
}

type AccountAttributes struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	CurrencyCode  string `json:"currency_code"`
	Iban          string `json:"iban"`
	AccountNumber string `json:"account_number"`
	Active        bool   `json:"active"`
}

type TransactionRequest struct {
	ErrorIfDuplicateHash bool               `json:"error_if_duplicate_hash"`
	Transactions         []TransactionSplit `json:"transactions"`
}

type TransactionSplit struct {
	Type            string   `json:"type"`
	Date            string   `json:"date"`
	Amount          string   `json:"amount"`
	Description     string   `json:"description"`
	SourceID        string   `json:"source_id,omitempty"`
	SourceName      string   `json:"source_name,omitempty"`
	DestinationID   string   `json:"destination_id,omitempty"`
	DestinationName string   `json:"destination_name,omitempty"`
	CategoryName    string   `json:"category_name,omitempty"`
	CurrencyCode    string   `json:"currency_code,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Reconciled      bool     `json:"reconciled"`
	Tags            []string `json:"tags,omitempty"`
}

type TransactionRead struct {
	Id         string                `json:"id"`
	Attributes TransactionAttributes `json:"attributes"`
}

type TransactionAttributes struct {
	Transactions []TransactionSplit `json:"transactions"`
}

type About struct {
	Version    string `json:"version"`
	ApiVersion string `json:"api_version"`
}
