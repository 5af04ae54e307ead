package impl_connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	domain_transfer "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/transfer"
	port_ledger "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger"
	port_sdk "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"
	"go.uber.org/zap"
)

// UpdateSentTransfer debits the payer and then asks the gateway to go ahead
// with the transfer. When the gateway fails after the debit the withdrawal is
// reversed with one deposit of the same instruction.
//
// Nothing is persisted between the two steps: a crash after the withdrawal
// and before confirmation or reversal leaves the debit in place.
func (u *ConnectorUsecaseImpl) UpdateSentTransfer(ctx context.Context, req port_connector.UpdateSentTransferRequest) (json.RawMessage, error) {
	ft := req.FineractTransaction

	continuation, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID: req.TransferID,
		AccountID:  ft.FineractAccountID,
		Amount:     ft.TotalAmount,
		Now:        u.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port_connector.ErrInvalidInput, err)
	}

	log := u.log.With(
		zap.String("transfer_id", continuation.TransferID()),
		zap.Int64("account_id", continuation.AccountID()),
	)
	log.Info("continuing transfer", zap.Stringer("amount", continuation.Amount()))

	instruction, err := u.withdraw(ctx, continuation, ft)
	if err != nil {
		log.Error("withdrawal failed", zap.Error(err))
		u.record(log, continuation, "abort", continuation.Abort(err.Error(), u.clock.Now()))
		return nil, err
	}

	u.record(log, continuation, "withdraw", continuation.MarkWithdrawn(u.clock.Now()))

	body, err := u.confirm(ctx, continuation.TransferID())
	if err != nil {
		log.Error("transfer confirmation failed", zap.Error(err))
		return nil, u.compensate(ctx, log, continuation, instruction, err)
	}

	u.record(log, continuation, "confirm", continuation.Confirm(u.clock.Now()))

	return body, nil
}

func (u *ConnectorUsecaseImpl) withdraw(
	ctx context.Context,
	c *domain_transfer.Continuation,
	ft port_connector.FineractTransaction,
) (port_ledger.TransactionInstruction, error) {
	account, err := u.fetchAccount(ctx, c.AccountID())
	if err != nil {
		return port_ledger.TransactionInstruction{}, err
	}

	instruction := u.newInstruction(u.clock.Now(), instructionParams{
		Amount:        c.Amount(),
		AccountNumber: account.AccountNo,
		RoutingCode:   ft.RoutingCode,
		ReceiptNumber: ft.ReceiptNumber,
		BankNumber:    ft.BankNumber,
	})

	res, err := u.ledger.Withdraw(ctx, c.AccountID(), instruction)
	if err != nil {
		return port_ledger.TransactionInstruction{}, domain_failure.WithdrawFailed(0, err)
	}

	if !succeeded(res.StatusCode) {
		return port_ledger.TransactionInstruction{}, domain_failure.WithdrawFailed(res.StatusCode, nil)
	}

	return instruction, nil
}

// confirm accepts the quote. Every failure it returns is attributed to the
// gateway.
func (u *ConnectorUsecaseImpl) confirm(ctx context.Context, transferID string) (json.RawMessage, error) {
	res, err := u.gateway.ConfirmTransfer(ctx, transferID, port_sdk.TransferContinuation{AcceptQuote: true})
	if err != nil {
		if kind, ok := domain_failure.KindOf(err); ok && kind.Source() == domain_failure.SourceGateway {
			return nil, err
		}
		return nil, domain_failure.TransferContinuationFailed(0, err)
	}

	if !succeeded(res.StatusCode) {
		return nil, domain_failure.TransferContinuationFailed(res.StatusCode, nil)
	}

	return res.Body, nil
}

// compensate reverses the withdrawal once. It returns cause when the reversal
// lands and RefundFailed when it does not.
func (u *ConnectorUsecaseImpl) compensate(
	ctx context.Context,
	log *zap.Logger,
	c *domain_transfer.Continuation,
	instruction port_ledger.TransactionInstruction,
	cause error,
) error {
	reason := cause.Error()

	// The reversal must go out even if the caller has gone away.
	res, err := u.ledger.Deposit(context.WithoutCancel(ctx), c.AccountID(), instruction)
	if err == nil && !succeeded(res.StatusCode) {
		err = fmt.Errorf("refund deposit answered with status code %d", res.StatusCode)
	}

	if err == nil {
		u.record(log, c, "compensate", c.Compensate(reason, u.clock.Now()))
		return cause
	}

	record := domain_failure.CompensationRecord{
		AccountID:  c.AccountID(),
		Amount:     c.Amount(),
		TransferID: c.TransferID(),
		Reason:     reason,
	}
	record.Reference = ReconciliationReference(record)

	u.record(log, c, "fail refund", c.FailRefund(reason, u.clock.Now()))

	log.Error("refund failed, manual reconciliation required",
		zap.Int64("fineract_account_id", record.AccountID),
		zap.Stringer("amount", record.Amount),
		zap.String("reference", record.Reference),
		zap.NamedError("cause", cause),
		zap.Error(err),
	)

	return domain_failure.RefundFailed(record, errors.Join(cause, err))
}

// record logs a rejected transition and then publishes whatever events the
// continuation raised.
func (u *ConnectorUsecaseImpl) record(log *zap.Logger, c *domain_transfer.Continuation, step string, err error) {
	if err != nil {
		log.Error("transfer state transition rejected",
			zap.String("step", step),
			zap.String("status", string(c.Status())),
			zap.Error(err),
		)
	}
	u.publish(log, c)
}

// publish writes one audit line per state transition.
func (u *ConnectorUsecaseImpl) publish(log *zap.Logger, c *domain_transfer.Continuation) {
	for _, ev := range c.PullEvents() {
		fields := []zap.Field{
			zap.String("event", ev.EventName()),
			zap.String("aggregate_id", ev.AggregateID()),
			zap.Time("occurred_at", ev.OccurredAt()),
			zap.Bool("ledger_debited", c.Status().Debited()),
		}

		switch e := ev.(type) {
		case domain_transfer.ContinuationRefundFailed:
			log.Error("transfer state changed", append(fields, zap.String("reason", e.Reason))...)
		case domain_transfer.ContinuationCompensated:
			log.Warn("transfer state changed", append(fields, zap.String("reason", e.Reason))...)
		case domain_transfer.ContinuationAborted:
			log.Warn("transfer state changed", append(fields, zap.String("reason", e.Reason))...)
		default:
			log.Info("transfer state changed", fields...)
		}
	}
}
