package domain_transfer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Continuation tracks one outbound transfer continuation across the ledger
// withdrawal and the gateway confirmation.
type Continuation struct {
	transferID string
	accountID  int64
	amount     decimal.Decimal

	status        Status
	failureReason string

	createdAt time.Time
	updatedAt time.Time

	pendingEvents []DomainEvent
}

type NewParams struct {
	TransferID string
	AccountID  int64
	Amount     decimal.Decimal
	Now        time.Time
}

func New(p NewParams) (*Continuation, error) {
	transferID := strings.TrimSpace(p.TransferID)
	if transferID == "" {
		return nil, ErrInvalidTransferID
	}

	if p.AccountID <= 0 {
		return nil, ErrInvalidAccountID
	}

	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	return &Continuation{
		transferID: transferID,
		accountID:  p.AccountID,
		amount:     p.Amount,
		status:     StatusNotStarted,
		createdAt:  p.Now,
		updatedAt:  p.Now,
	}, nil
}

func (c *Continuation) MarkWithdrawn(now time.Time) error {
	if err := c.transition(StatusNotStarted); err != nil {
		return err
	}

	now = orNow(now)
	c.status = StatusWithdrawn
	c.updatedAt = now

	c.raise(ContinuationWithdrawn{
		At:         now,
		TransferID: c.transferID,
		AccountID:  c.accountID,
		Amount:     c.amount,
	})

	return nil
}

func (c *Continuation) Abort(reason string, now time.Time) error {
	if err := c.transition(StatusNotStarted); err != nil {
		return err
	}

	reason, err := requireReason(reason)
	if err != nil {
		return err
	}

	now = orNow(now)
	c.status = StatusAborted
	c.failureReason = reason
	c.updatedAt = now

	c.raise(ContinuationAborted{
		At:         now,
		TransferID: c.transferID,
		Reason:     reason,
	})

	return nil
}

func (c *Continuation) Confirm(now time.Time) error {
	if err := c.transition(StatusWithdrawn); err != nil {
		return err
	}

	now = orNow(now)
	c.status = StatusConfirmed
	c.updatedAt = now

	c.raise(ContinuationConfirmed{
		At:         now,
		TransferID: c.transferID,
	})

	return nil
}

func (c *Continuation) Compensate(reason string, now time.Time) error {
	if err := c.transition(StatusWithdrawn); err != nil {
		return err
	}

	reason, err := requireReason(reason)
	if err != nil {
		return err
	}

	now = orNow(now)
	c.status = StatusCompensated
	c.failureReason = reason
	c.updatedAt = now

	c.raise(ContinuationCompensated{
		At:         now,
		TransferID: c.transferID,
		AccountID:  c.accountID,
		Amount:     c.amount,
		Reason:     reason,
	})

	return nil
}

func (c *Continuation) FailRefund(reason string, now time.Time) error {
	if err := c.transition(StatusWithdrawn); err != nil {
		return err
	}

	reason, err := requireReason(reason)
	if err != nil {
		return err
	}

	now = orNow(now)
	c.status = StatusRefundFailed
	c.failureReason = reason
	c.updatedAt = now

	c.raise(ContinuationRefundFailed{
		At:         now,
		TransferID: c.transferID,
		AccountID:  c.accountID,
		Amount:     c.amount,
		Reason:     reason,
	})

	return nil
}

func (c *Continuation) PullEvents() []DomainEvent {
	if len(c.pendingEvents) == 0 {
		return nil
	}

	ev := make([]DomainEvent, len(c.pendingEvents))
	copy(ev, c.pendingEvents)

	c.pendingEvents = c.pendingEvents[:0]

	return ev
}

func (c *Continuation) transition(from Status) error {
	if c.status.IsFinal() {
		return ErrAlreadyFinalized
	}

	if c.status != from {
		return ErrInvalidStateTransition
	}

	return nil
}

func (c *Continuation) raise(event DomainEvent) {
	c.pendingEvents = append(c.pendingEvents, event)
}

func requireReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", ErrMissingFailureReason
	}
	return reason, nil
}

func orNow(now time.Time) time.Time {
	if now.IsZero() {
		return time.Now().UTC()
	}
	return now
}

func (c *Continuation) TransferID() string { return c.transferID }

func (c *Continuation) AccountID() int64 { return c.accountID }

func (c *Continuation) Amount() decimal.Decimal { return c.amount }

func (c *Continuation) Status() Status { return c.status }

func (c *Continuation) FailureReason() string { return c.failureReason }

func (c *Continuation) CreatedAt() time.Time { return c.createdAt }

func (c *Continuation) UpdatedAt() time.Time { return c.updatedAt }
