package domain_failure

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindInvalidAccountNumber       Kind = "INVALID_ACCOUNT_NUMBER"
	KindUnsupportedIDType          Kind = "UNSUPPORTED_ID_TYPE"
	KindAccountNotFound            Kind = "ACCOUNT_NOT_FOUND"
	KindAccountNotActive           Kind = "ACCOUNT_NOT_ACTIVE"
	KindAccountBlocked             Kind = "ACCOUNT_BLOCKED"
	KindAccountLookupFailed        Kind = "ACCOUNT_LOOKUP_FAILED"
	KindClientLookupFailed         Kind = "CLIENT_LOOKUP_FAILED"
	KindDepositFailed              Kind = "DEPOSIT_FAILED"
	KindWithdrawFailed             Kind = "WITHDRAW_FAILED"
	KindChargeLookupFailed         Kind = "CHARGE_LOOKUP_FAILED"
	KindInsufficientBalance        Kind = "INSUFFICIENT_BALANCE"
	KindNoQuoteReturned            Kind = "NO_QUOTE_RETURNED"
	KindTransferInitiationFailed   Kind = "TRANSFER_INITIATION_FAILED"
	KindTransferContinuationFailed Kind = "TRANSFER_CONTINUATION_FAILED"
	KindRefundFailed               Kind = "REFUND_FAILED"
)

// Source identifies which side of the connector produced a failure.
type Source string

const (
	SourceValidation   Source = "validation"
	SourceLedger       Source = "ledger"
	SourceGateway      Source = "gateway"
	SourceCompensation Source = "compensation"
)

func (k Kind) Source() Source {
	switch k {
	case KindInvalidAccountNumber, KindUnsupportedIDType:
		return SourceValidation
	case KindAccountNotFound, KindAccountNotActive, KindAccountBlocked, KindAccountLookupFailed,
		KindClientLookupFailed, KindDepositFailed, KindWithdrawFailed, KindChargeLookupFailed,
		KindInsufficientBalance:
		return SourceLedger
	case KindNoQuoteReturned, KindTransferInitiationFailed, KindTransferContinuationFailed:
		return SourceGateway
	case KindRefundFailed:
		return SourceCompensation
	}
	return ""
}

// CompensationRecord describes a debit that could not be reversed and needs
// manual reconciliation. It is never persisted.
type CompensationRecord struct {
	AccountID  int64           `json:"fineractAccountId"`
	Amount     decimal.Decimal `json:"amount"`
	TransferID string          `json:"transferId,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	Reference  string          `json:"reference,omitempty"`
}

type Error struct {
	Kind    Kind
	Message string

	// GatewayStatus is the HTTP status the gateway answered with, when known.
	GatewayStatus int

	Compensation *CompensationRecord

	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches another *Error of the same kind, so callers can compare against
// the Err* sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.cause == nil
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidAccountNumber       = &Error{Kind: KindInvalidAccountNumber}
	ErrUnsupportedIDType          = &Error{Kind: KindUnsupportedIDType}
	ErrAccountNotFound            = &Error{Kind: KindAccountNotFound}
	ErrAccountNotActive           = &Error{Kind: KindAccountNotActive}
	ErrAccountBlocked             = &Error{Kind: KindAccountBlocked}
	ErrAccountLookupFailed        = &Error{Kind: KindAccountLookupFailed}
	ErrClientLookupFailed         = &Error{Kind: KindClientLookupFailed}
	ErrDepositFailed              = &Error{Kind: KindDepositFailed}
	ErrWithdrawFailed             = &Error{Kind: KindWithdrawFailed}
	ErrChargeLookupFailed         = &Error{Kind: KindChargeLookupFailed}
	ErrInsufficientBalance        = &Error{Kind: KindInsufficientBalance}
	ErrNoQuoteReturned            = &Error{Kind: KindNoQuoteReturned}
	ErrTransferInitiationFailed   = &Error{Kind: KindTransferInitiationFailed}
	ErrTransferContinuationFailed = &Error{Kind: KindTransferContinuationFailed}
	ErrRefundFailed               = &Error{Kind: KindRefundFailed}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

func InvalidAccountNumber() *Error {
	return &Error{Kind: KindInvalidAccountNumber, Message: "Account number length is too short"}
}

func UnsupportedIDType(idType string) *Error {
	return &Error{Kind: KindUnsupportedIDType, Message: fmt.Sprintf("Unsupported Id Type %q", idType)}
}

func AccountNotFound(accountNo string) *Error {
	return &Error{Kind: KindAccountNotFound, Message: fmt.Sprintf("Fineract Account %s Not Found", accountNo)}
}

func AccountNotActive(accountID int64) *Error {
	return &Error{Kind: KindAccountNotActive, Message: fmt.Sprintf("Fineract Account %d not active", accountID)}
}

func AccountBlocked(accountID int64) *Error {
	return &Error{Kind: KindAccountBlocked, Message: fmt.Sprintf("Account %d blocked from credit or debit", accountID)}
}

// AccountLookupFailed covers both the search by account number and the fetch
// by internal id, so the account is taken in its printed form.
func AccountLookupFailed(account string, status int, cause error) *Error {
	return &Error{
		Kind:    KindAccountLookupFailed,
		Message: fmt.Sprintf("Search for Account %s failed with status code %d", account, status),
		cause:   cause,
	}
}

func ClientLookupFailed(clientID int64, status int, cause error) *Error {
	return &Error{
		Kind:    KindClientLookupFailed,
		Message: fmt.Sprintf("Failed to get client by clientId %d (status %d)", clientID, status),
		cause:   cause,
	}
}

func DepositFailed(status int, cause error) *Error {
	return &Error{
		Kind:    KindDepositFailed,
		Message: fmt.Sprintf("Fineract Deposit Failed with status code %d", status),
		cause:   cause,
	}
}

func WithdrawFailed(status int, cause error) *Error {
	return &Error{
		Kind:    KindWithdrawFailed,
		Message: fmt.Sprintf("Withdraw failed with status code %d", status),
		cause:   cause,
	}
}

func ChargeLookupFailed(status int, cause error) *Error {
	return &Error{
		Kind:    KindChargeLookupFailed,
		Message: fmt.Sprintf("Fineract Get charges error (status %d)", status),
		cause:   cause,
	}
}

func InsufficientBalance() *Error {
	return &Error{Kind: KindInsufficientBalance, Message: "Fineract Account Insufficient Balance"}
}

func NoQuoteReturned() *Error {
	return &Error{Kind: KindNoQuoteReturned, Message: "Quote response is not defined"}
}

func TransferInitiationFailed(status int, cause error) *Error {
	return &Error{
		Kind:          KindTransferInitiationFailed,
		Message:       fmt.Sprintf("SDK initiate transfer failed with status code %d", status),
		GatewayStatus: status,
		cause:         cause,
	}
}

func TransferContinuationFailed(status int, cause error) *Error {
	return &Error{
		Kind:          KindTransferContinuationFailed,
		Message:       fmt.Sprintf("SDK continue transfer failed with status code %d", status),
		GatewayStatus: status,
		cause:         cause,
	}
}

func RefundFailed(record CompensationRecord, cause error) *Error {
	return &Error{
		Kind:         KindRefundFailed,
		Message:      "Refund Failed",
		Compensation: &record,
		cause:        cause,
	}
}
