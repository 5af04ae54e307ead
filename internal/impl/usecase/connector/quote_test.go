package impl_connector_test

import (
	"context"
	"errors"
	"testing"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	port_sdk "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newQuoteRequest() port_connector.QuoteRequest {
	return port_connector.QuoteRequest{
		QuoteID:         "quote-1",
		TransactionID:   "tx-1",
		To:              port_sdk.TransferParty{IDType: "IBAN", IDValue: testIdentifier},
		AmountType:      "SEND",
		Amount:          decimal.RequireFromString("250.75"),
		Currency:        "UGX",
		TransactionType: "TRANSFER",
	}
}

func TestQuoteRequest_ZeroFeeQuote(t *testing.T) {
	f := newFixture(t)
	f.expectResolved()

	quote, err := f.svc.QuoteRequest(context.Background(), newQuoteRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if quote.QuoteID != "quote-1" || quote.TransactionID != "tx-1" {
		t.Errorf("expected ids to be echoed, got %s %s", quote.QuoteID, quote.TransactionID)
	}

	amount := decimal.RequireFromString("250.75")
	if !quote.TransferAmount.Equal(amount) || !quote.PayeeReceiveAmount.Equal(amount) {
		t.Errorf("expected amounts %s, got %s and %s", amount, quote.TransferAmount, quote.PayeeReceiveAmount)
	}

	if !quote.PayeeFspFeeAmount.IsZero() || !quote.PayeeFspCommissionAmount.IsZero() {
		t.Errorf("expected zero fee and commission, got %s and %s", quote.PayeeFspFeeAmount, quote.PayeeFspCommissionAmount)
	}

	for _, cur := range []string{
		quote.TransferAmountCurrency,
		quote.PayeeReceiveAmountCurrency,
		quote.PayeeFspFeeAmountCurrency,
		quote.PayeeFspCommissionAmountCurrency,
	} {
		if cur != "UGX" {
			t.Errorf("expected currency UGX, got %s", cur)
		}
	}

	if quote.Expiration != "2024-03-07T09:05:03.120Z" {
		t.Errorf("expected expiration 2024-03-07T09:05:03.120Z, got %s", quote.Expiration)
	}
}

func TestQuoteRequest_UnsupportedIDType_NoLedgerCall(t *testing.T) {
	f := newFixture(t)

	req := newQuoteRequest()
	req.To.IDType = "MSISDN"

	_, err := f.svc.QuoteRequest(context.Background(), req)
	if !errors.Is(err, domain_failure.ErrUnsupportedIDType) {
		t.Fatalf("expected ErrUnsupportedIDType, got %v", err)
	}
}

func TestQuoteRequest_BeneficiaryNotEligible(t *testing.T) {
	f := newFixture(t)

	account := activeAccount("0")
	account.Account.SubStatus.BlockCredit = true

	f.ledger.EXPECT().Search(gomock.Any(), testAccountNo).Return(singleMatch(), nil)
	f.ledger.EXPECT().GetAccount(gomock.Any(), testAccountID).Return(account, nil)

	_, err := f.svc.QuoteRequest(context.Background(), newQuoteRequest())
	if !errors.Is(err, domain_failure.ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}
