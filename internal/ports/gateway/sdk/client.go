package port_sdk

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Client is the payment gateway (Mojaloop SDK scheme adapter). As with the
// ledger, errors mean the gateway could not be reached or read; the status it
// answered with is carried in StatusCode.
type Client interface {
	InitiateTransfer(ctx context.Context, req TransferRequest) (TransferResponse, error)
	ConfirmTransfer(ctx context.Context, transferID string, accept TransferContinuation) (ContinuationResponse, error)
}

type Extension struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type TransferParty struct {
	Type                       string      `json:"type,omitempty"`
	IDType                     string      `json:"idType" validate:"required"`
	IDValue                    string      `json:"idValue" validate:"required"`
	IDSubValue                 string      `json:"idSubValue,omitempty"`
	DisplayName                string      `json:"displayName,omitempty"`
	FirstName                  string      `json:"firstName,omitempty"`
	MiddleName                 string      `json:"middleName,omitempty"`
	LastName                   string      `json:"lastName,omitempty"`
	DateOfBirth                string      `json:"dateOfBirth,omitempty"`
	MerchantClassificationCode string      `json:"merchantClassificationCode,omitempty"`
	FspID                      string      `json:"fspId,omitempty"`
	ExtensionList              []Extension `json:"extensionList,omitempty" validate:"omitempty,dive"`
}

// TransferRequest is the outbound transfer initiation body.
type TransferRequest struct {
	HomeTransactionID         string          `json:"homeTransactionId"`
	From                      TransferParty   `json:"from"`
	To                        TransferParty   `json:"to"`
	AmountType                string          `json:"amountType"`
	Currency                  string          `json:"currency"`
	Amount                    decimal.Decimal `json:"amount"`
	TransactionType           string          `json:"transactionType"`
	SubScenario               string          `json:"subScenario,omitempty"`
	Note                      string          `json:"note,omitempty"`
	QuoteRequestExtensions    []Extension     `json:"quoteRequestExtensions,omitempty"`
	TransferRequestExtensions []Extension     `json:"transferRequestExtensions,omitempty"`
	SkipPartyLookup           *bool           `json:"skipPartyLookup,omitempty"`
}

// Money keeps the amount as the gateway sent it; callers parse it.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type QuoteResponseBody struct {
	TransferAmount     *Money `json:"transferAmount,omitempty"`
	PayeeReceiveAmount *Money `json:"payeeReceiveAmount,omitempty"`
	PayeeFspFee        *Money `json:"payeeFspFee,omitempty"`
	PayeeFspCommission *Money `json:"payeeFspCommission,omitempty"`
	Expiration         string `json:"expiration,omitempty"`
	IlpPacket          string `json:"ilpPacket,omitempty"`
	Condition          string `json:"condition,omitempty"`
}

type QuoteResponse struct {
	Body    QuoteResponseBody `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type TransferResponse struct {
	StatusCode int `json:"-"`

	TransferID        string         `json:"transferId,omitempty"`
	HomeTransactionID string         `json:"homeTransactionId,omitempty"`
	CurrentState      string         `json:"currentState,omitempty"`
	Amount            string         `json:"amount"`
	Currency          string         `json:"currency,omitempty"`
	QuoteResponse     *QuoteResponse `json:"quoteResponse,omitempty"`

	// Raw is the response body as received. When set it is what gets
	// marshalled, so the gateway's answer is relayed untouched.
	Raw json.RawMessage `json:"-"`
}

func (r TransferResponse) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}

	type plain TransferResponse
	return json.Marshal(plain(r))
}

type TransferContinuation struct {
	AcceptQuote bool `json:"acceptQuote"`
}

type ContinuationResponse struct {
	StatusCode int
	Body       json.RawMessage
}
