package impl_connector

import (
	"context"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteRequest answers a payee quote. Deposits carry no ledger fee, so the
// quote only confirms the beneficiary can receive funds.
func (u *ConnectorUsecaseImpl) QuoteRequest(ctx context.Context, req port_connector.QuoteRequest) (port_connector.QuoteResponse, error) {
	if req.To.IDType != u.settings.IDType {
		return port_connector.QuoteResponse{}, domain_failure.UnsupportedIDType(req.To.IDType)
	}

	accountNo, err := u.codec.ExtractAccount(req.To.IDValue)
	if err != nil {
		return port_connector.QuoteResponse{}, err
	}

	u.log.Info("quoting transfer",
		zap.String("quote_id", req.QuoteID),
		zap.String("account_no", accountNo),
	)

	if _, err := u.resolveParty(ctx, accountNo); err != nil {
		return port_connector.QuoteResponse{}, err
	}

	return port_connector.QuoteResponse{
		QuoteID:                          req.QuoteID,
		TransactionID:                    req.TransactionID,
		TransferAmount:                   req.Amount,
		TransferAmountCurrency:           req.Currency,
		PayeeReceiveAmount:               req.Amount,
		PayeeReceiveAmountCurrency:       req.Currency,
		PayeeFspFeeAmount:                decimal.Zero,
		PayeeFspFeeAmountCurrency:        req.Currency,
		PayeeFspCommissionAmount:         decimal.Zero,
		PayeeFspCommissionAmountCurrency: req.Currency,
		Expiration:                       formatTimestamp(u.clock.Now()),
	}, nil
}

// quoteWithdrawalFee prices a withdrawal of amount against the ledger's
// current charge schedule.
func (u *ConnectorUsecaseImpl) quoteWithdrawalFee(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	res, err := u.ledger.GetCharges(ctx)
	if err != nil {
		return decimal.Decimal{}, domain_failure.ChargeLookupFailed(0, err)
	}

	if !succeeded(res.StatusCode) {
		return decimal.Decimal{}, domain_failure.ChargeLookupFailed(res.StatusCode, nil)
	}

	return res.Schedule().WithdrawalFee(amount), nil
}
