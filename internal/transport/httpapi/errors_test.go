package transport_http

import (
	"errors"
	"net/http"
	"testing"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"

	goerrors "github.com/goliatone/go-errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify_CoversEveryKind(t *testing.T) {
	cases := []struct {
		err      *domain_failure.Error
		status   int
		mlCode   string
		category goerrors.Category
	}{
		{domain_failure.InvalidAccountNumber(), http.StatusBadRequest, "3101", goerrors.CategoryValidation},
		{domain_failure.UnsupportedIDType("MSISDN"), http.StatusBadRequest, "3100", goerrors.CategoryValidation},
		{domain_failure.AccountNotFound("1"), http.StatusNotFound, "3200", goerrors.CategoryNotFound},
		{domain_failure.AccountNotActive(1), http.StatusBadRequest, "3200", goerrors.CategoryBadInput},
		{domain_failure.AccountBlocked(1), http.StatusInternalServerError, "4400", goerrors.CategoryOperation},
		{domain_failure.AccountLookupFailed("1", 500, nil), http.StatusInternalServerError, "3200", goerrors.CategoryExternal},
		{domain_failure.ClientLookupFailed(1, 500, nil), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.DepositFailed(500, nil), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.WithdrawFailed(500, nil), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.ChargeLookupFailed(500, nil), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.InsufficientBalance(), http.StatusInternalServerError, "4001", goerrors.CategoryOperation},
		{domain_failure.NoQuoteReturned(), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.TransferInitiationFailed(502, nil), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.TransferContinuationFailed(503, nil), http.StatusServiceUnavailable, "4000", goerrors.CategoryExternal},
		{domain_failure.TransferContinuationFailed(0, errors.New("dial")), http.StatusInternalServerError, "4000", goerrors.CategoryExternal},
		{domain_failure.RefundFailed(domain_failure.CompensationRecord{}, nil), http.StatusInternalServerError, "2001", goerrors.CategoryOperation},
	}

	seen := map[domain_failure.Kind]bool{}
	for _, tc := range cases {
		t.Run(string(tc.err.Kind), func(t *testing.T) {
			status, mlCode, category := classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.mlCode, mlCode)
			assert.Equal(t, tc.category, category)
		})
		seen[tc.err.Kind] = true
	}

	for kind := range seen {
		assert.NotEmpty(t, kind.Source(), "kind %s has no source", kind)
	}
	assert.Len(t, seen, 15)
}

func TestProblemFor_RefundFailedMetadata(t *testing.T) {
	err := domain_failure.RefundFailed(domain_failure.CompensationRecord{
		AccountID: 11,
		Amount:    decimal.RequireFromString("12.5"),
		Reference: "ref",
	}, errors.New("ledger down"))

	p := problemFor(err)

	assert.Equal(t, http.StatusInternalServerError, p.rich.Code)
	assert.Equal(t, string(domain_failure.KindRefundFailed), p.rich.TextCode)
	assert.Equal(t, err.Compensation, p.details)
	assert.ErrorIs(t, p.cause, domain_failure.ErrRefundFailed)
}

func TestProblemFor_WrappedFailureKeepsKind(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain_failure.AccountNotFound("42"))

	p := problemFor(wrapped)

	assert.Equal(t, http.StatusNotFound, p.rich.Code)
	assert.Equal(t, "3200", p.mlCode)
}
