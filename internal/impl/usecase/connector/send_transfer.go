package impl_connector

import (
	"context"
	"fmt"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	port_sdk "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SendTransfer negotiates an outbound transfer with the gateway and checks the
// payer can cover the ledger's withdrawal fee. Nothing is debited here.
func (u *ConnectorUsecaseImpl) SendTransfer(ctx context.Context, req port_connector.SendTransferRequest) (port_connector.SendTransferResponse, error) {
	accountID := req.From.FineractAccountID
	if accountID <= 0 {
		return port_connector.SendTransferResponse{}, fmt.Errorf("%w: fineract account id is required", port_connector.ErrInvalidInput)
	}

	log := u.log.With(
		zap.String("home_transaction_id", req.HomeTransactionID),
		zap.Int64("account_id", accountID),
	)
	log.Info("sending transfer", zap.Stringer("amount", req.Amount), zap.String("currency", req.Currency))

	account, err := u.fetchAccount(ctx, accountID)
	if err != nil {
		return port_connector.SendTransferResponse{}, err
	}

	if err := checkEligible(accountID, account); err != nil {
		log.Warn("payer account not eligible", zap.Error(err))
		return port_connector.SendTransferResponse{}, err
	}

	res, err := u.gateway.InitiateTransfer(ctx, gatewayTransferRequest(req))
	if err != nil {
		log.Error("initiate transfer failed", zap.Error(err))
		return port_connector.SendTransferResponse{}, domain_failure.TransferInitiationFailed(0, err)
	}

	if !succeeded(res.StatusCode) {
		log.Error("initiate transfer rejected", zap.Int("status", res.StatusCode))
		return port_connector.SendTransferResponse{}, domain_failure.TransferInitiationFailed(res.StatusCode, nil)
	}

	total, err := quotedTotal(res)
	if err != nil {
		log.Warn("gateway returned no usable quote", zap.String("transfer_id", res.TransferID))
		return port_connector.SendTransferResponse{}, err
	}

	fee, err := u.quoteWithdrawalFee(ctx, total)
	if err != nil {
		return port_connector.SendTransferResponse{}, err
	}

	// Only the ledger fee is held against the balance at this stage.
	if !account.Summary.AvailableBalance.GreaterThan(fee) {
		log.Warn("insufficient balance",
			zap.Stringer("available", account.Summary.AvailableBalance),
			zap.Stringer("fee", fee),
		)
		return port_connector.SendTransferResponse{}, domain_failure.InsufficientBalance()
	}

	log.Info("transfer quoted",
		zap.String("transfer_id", res.TransferID),
		zap.Stringer("total", total),
		zap.Stringer("fee", fee),
	)

	return port_connector.SendTransferResponse{
		TotalAmountFromFineract: fee,
		TransferResponse:        res,
	}, nil
}

func gatewayTransferRequest(req port_connector.SendTransferRequest) port_sdk.TransferRequest {
	return port_sdk.TransferRequest{
		HomeTransactionID:         req.HomeTransactionID,
		From:                      req.From.Payer,
		To:                        req.To,
		AmountType:                req.AmountType,
		Currency:                  req.Currency,
		Amount:                    req.Amount,
		TransactionType:           req.TransactionType,
		SubScenario:               req.SubScenario,
		Note:                      req.Note,
		QuoteRequestExtensions:    req.QuoteRequestExtensions,
		TransferRequestExtensions: req.TransferRequestExtensions,
		SkipPartyLookup:           req.SkipPartyLookup,
	}
}

// quotedTotal sums amount, payee fee and payee commission, in that order.
func quotedTotal(res port_sdk.TransferResponse) (decimal.Decimal, error) {
	if res.QuoteResponse == nil {
		return decimal.Decimal{}, domain_failure.NoQuoteReturned()
	}

	body := res.QuoteResponse.Body
	if body.PayeeFspFee == nil || body.PayeeFspCommission == nil {
		return decimal.Decimal{}, domain_failure.NoQuoteReturned()
	}

	total := decimal.Zero
	for _, figure := range []string{res.Amount, body.PayeeFspFee.Amount, body.PayeeFspCommission.Amount} {
		v, err := decimal.NewFromString(figure)
		if err != nil {
			return decimal.Decimal{}, domain_failure.NoQuoteReturned()
		}
		total = total.Add(v)
	}

	return total, nil
}
