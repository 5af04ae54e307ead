package port_connector

import (
	"context"
	"encoding/json"
	"errors"

	port_sdk "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk"
	"github.com/shopspring/decimal"
)

const (
	TransferStateCommitted = "COMMITTED"

	PartyTypeConsumer = "CONSUMER"
	IDTypeIBAN        = "IBAN"
)

// ErrInvalidInput marks requests a use case refuses before touching any
// backend.
var ErrInvalidInput = errors.New("invalid input data")

// Party is the payee view returned to the gateway on a party lookup.
type Party struct {
	DisplayName    string `json:"displayName"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	IDType         string `json:"idType"`
	IDValue        string `json:"idValue"`
	Type           string `json:"type"`
	KYCInformation string `json:"kycInformation"`
}

type QuoteRequest struct {
	QuoteID         string                 `json:"quoteId" validate:"required"`
	TransactionID   string                 `json:"transactionId" validate:"required"`
	From            port_sdk.TransferParty `json:"from"`
	To              port_sdk.TransferParty `json:"to"`
	AmountType      string                 `json:"amountType" validate:"required,oneof=SEND RECEIVE"`
	Amount          decimal.Decimal        `json:"amount" validate:"positive_decimal"`
	Currency        string                 `json:"currency" validate:"required,len=3"`
	TransactionType string                 `json:"transactionType" validate:"required"`
	InitiatorType   string                 `json:"initiatorType,omitempty"`
	Initiator       string                 `json:"initiator,omitempty"`
	Note            string                 `json:"note,omitempty"`
	Expiration      string                 `json:"expiration,omitempty"`
	Extensions      []port_sdk.Extension   `json:"extensionList,omitempty" validate:"omitempty,dive"`
}

type QuoteResponse struct {
	QuoteID                          string          `json:"quoteId"`
	TransactionID                    string          `json:"transactionId"`
	TransferAmount                   decimal.Decimal `json:"transferAmount"`
	TransferAmountCurrency           string          `json:"transferAmountCurrency"`
	PayeeReceiveAmount               decimal.Decimal `json:"payeeReceiveAmount"`
	PayeeReceiveAmountCurrency       string          `json:"payeeReceiveAmountCurrency"`
	PayeeFspFeeAmount                decimal.Decimal `json:"payeeFspFeeAmount"`
	PayeeFspFeeAmountCurrency        string          `json:"payeeFspFeeAmountCurrency"`
	PayeeFspCommissionAmount         decimal.Decimal `json:"payeeFspCommissionAmount"`
	PayeeFspCommissionAmountCurrency string          `json:"payeeFspCommissionAmountCurrency"`
	Expiration                       string          `json:"expiration"`
}

// TransferRequest is an inbound transfer the gateway asks us to commit.
type TransferRequest struct {
	TransferID      string                 `json:"transferId" validate:"required"`
	QuoteID         string                 `json:"quoteId,omitempty"`
	TransactionType string                 `json:"transactionType,omitempty"`
	From            port_sdk.TransferParty `json:"from"`
	To              port_sdk.TransferParty `json:"to"`
	AmountType      string                 `json:"amountType" validate:"required,oneof=SEND RECEIVE"`
	Amount          decimal.Decimal        `json:"amount" validate:"positive_decimal"`
	Currency        string                 `json:"currency" validate:"required,len=3"`
	Note            string                 `json:"note,omitempty"`
	IlpPacket       string                 `json:"ilpPacket,omitempty"`
}

type TransferResponse struct {
	CompletedTimestamp string `json:"completedTimestamp"`
	HomeTransactionID  string `json:"homeTransactionId"`
	TransferState      string `json:"transferState"`
}

// OutboundSource wraps the payer with the ledger account the money leaves.
type OutboundSource struct {
	FineractAccountID int64                  `json:"fineractAccountId" validate:"required,gt=0"`
	Payer             port_sdk.TransferParty `json:"payer"`
}

type SendTransferRequest struct {
	HomeTransactionID         string                 `json:"homeTransactionId" validate:"required"`
	From                      OutboundSource         `json:"from"`
	To                        port_sdk.TransferParty `json:"to"`
	AmountType                string                 `json:"amountType" validate:"required,oneof=SEND RECEIVE"`
	Currency                  string                 `json:"currency" validate:"required,len=3"`
	Amount                    decimal.Decimal        `json:"amount" validate:"positive_decimal"`
	TransactionType           string                 `json:"transactionType" validate:"required"`
	SubScenario               string                 `json:"subScenario,omitempty"`
	Note                      string                 `json:"note,omitempty"`
	QuoteRequestExtensions    []port_sdk.Extension   `json:"quoteRequestExtensions,omitempty" validate:"omitempty,dive"`
	TransferRequestExtensions []port_sdk.Extension   `json:"transferRequestExtensions,omitempty" validate:"omitempty,dive"`
	SkipPartyLookup           *bool                  `json:"skipPartyLookup,omitempty"`
}

type SendTransferResponse struct {
	TotalAmountFromFineract decimal.Decimal           `json:"totalAmountFromFineract"`
	TransferResponse        port_sdk.TransferResponse `json:"transferResponse"`
}

// FineractTransaction is what the caller learned from SendTransfer and hands
// back to carry out the debit.
type FineractTransaction struct {
	FineractAccountID int64           `json:"fineractAccountId" validate:"required,gt=0"`
	TotalAmount       decimal.Decimal `json:"totalAmount" validate:"positive_decimal"`
	RoutingCode       string          `json:"routingCode" validate:"required"`
	ReceiptNumber     string          `json:"receiptNumber" validate:"required"`
	BankNumber        string          `json:"bankNumber" validate:"required"`
}

type UpdateSentTransferRequest struct {
	TransferID          string              `json:"-"`
	FineractTransaction FineractTransaction `json:"fineractTransaction"`
}

type Connector interface {
	GetParties(ctx context.Context, identifier string) (Party, error)
	QuoteRequest(ctx context.Context, req QuoteRequest) (QuoteResponse, error)
	ReceiveTransfer(ctx context.Context, req TransferRequest) (TransferResponse, error)
	SendTransfer(ctx context.Context, req SendTransferRequest) (SendTransferResponse, error)

	// UpdateSentTransfer returns the gateway's confirmation body unchanged.
	UpdateSentTransfer(ctx context.Context, req UpdateSentTransferRequest) (json.RawMessage, error)
}
