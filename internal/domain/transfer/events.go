package domain_transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() string
}

type ContinuationWithdrawn struct {
	At         time.Time
	TransferID string
	AccountID  int64
	Amount     decimal.Decimal
}

func (e ContinuationWithdrawn) EventName() string { return "transfer.withdrawn" }

func (e ContinuationWithdrawn) OccurredAt() time.Time { return e.At }

func (e ContinuationWithdrawn) AggregateID() string { return e.TransferID }

type ContinuationConfirmed struct {
	At         time.Time
	TransferID string
}

func (e ContinuationConfirmed) EventName() string { return "transfer.confirmed" }

func (e ContinuationConfirmed) OccurredAt() time.Time { return e.At }

func (e ContinuationConfirmed) AggregateID() string { return e.TransferID }

type ContinuationAborted struct {
	At         time.Time
	TransferID string
	Reason     string
}

func (e ContinuationAborted) EventName() string { return "transfer.aborted" }

func (e ContinuationAborted) OccurredAt() time.Time { return e.At }

func (e ContinuationAborted) AggregateID() string { return e.TransferID }

type ContinuationCompensated struct {
	At         time.Time
	TransferID string
	AccountID  int64
	Amount     decimal.Decimal
	Reason     string
}

func (e ContinuationCompensated) EventName() string { return "transfer.compensated" }

func (e ContinuationCompensated) OccurredAt() time.Time { return e.At }

func (e ContinuationCompensated) AggregateID() string { return e.TransferID }

type ContinuationRefundFailed struct {
	At         time.Time
	TransferID string
	AccountID  int64
	Amount     decimal.Decimal
	Reason     string
}

func (e ContinuationRefundFailed) EventName() string { return "transfer.refund_failed" }

func (e ContinuationRefundFailed) OccurredAt() time.Time { return e.At }

func (e ContinuationRefundFailed) AggregateID() string { return e.TransferID }
