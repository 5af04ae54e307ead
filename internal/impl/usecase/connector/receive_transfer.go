package impl_connector

import (
	"context"
	"fmt"
	"strings"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"
	"go.uber.org/zap"
)

// ReceiveTransfer credits an inbound transfer in full to the payee account.
func (u *ConnectorUsecaseImpl) ReceiveTransfer(ctx context.Context, req port_connector.TransferRequest) (port_connector.TransferResponse, error) {
	if req.To.IDType != u.settings.IDType {
		return port_connector.TransferResponse{}, domain_failure.UnsupportedIDType(req.To.IDType)
	}

	if strings.TrimSpace(req.TransferID) == "" || !req.Amount.IsPositive() {
		return port_connector.TransferResponse{}, fmt.Errorf("%w: transfer id and a positive amount are required", port_connector.ErrInvalidInput)
	}

	accountNo, err := u.codec.ExtractAccount(req.To.IDValue)
	if err != nil {
		return port_connector.TransferResponse{}, err
	}

	log := u.log.With(
		zap.String("transfer_id", req.TransferID),
		zap.String("account_no", accountNo),
	)
	log.Info("receiving transfer", zap.Stringer("amount", req.Amount))

	party, err := u.resolveParty(ctx, accountNo)
	if err != nil {
		return port_connector.TransferResponse{}, err
	}

	instruction := u.newInstruction(u.clock.Now(), instructionParams{
		Amount:        req.Amount,
		AccountNumber: party.AccountNo,
		RoutingCode:   u.ids.NewUUID().String(),
		ReceiptNumber: u.ids.NewUUID().String(),
		BankNumber:    u.settings.BankID,
	})

	res, err := u.ledger.Deposit(ctx, party.AccountID, instruction)
	if err != nil {
		log.Error("deposit failed", zap.Error(err))
		return port_connector.TransferResponse{}, domain_failure.DepositFailed(0, err)
	}

	if !succeeded(res.StatusCode) {
		log.Error("deposit rejected", zap.Int("status", res.StatusCode))
		return port_connector.TransferResponse{}, domain_failure.DepositFailed(res.StatusCode, nil)
	}

	log.Info("transfer committed", zap.Int64("account_id", party.AccountID))

	return port_connector.TransferResponse{
		CompletedTimestamp: formatTimestamp(u.clock.Now()),
		HomeTransactionID:  req.TransferID,
		TransferState:      port_connector.TransferStateCommitted,
	}, nil
}
