package transport_http

import (
	"errors"
	"net/http"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"

	goerrors "github.com/goliatone/go-errors"
)

// Mojaloop error codes sent in the "status" field of error bodies.
const (
	mlCodeGeneric              = "2000"
	mlCodeRefundFailed         = "2001"
	mlCodeValidation           = "3100"
	mlCodeInvalidAccountNumber = "3101"
	mlCodePartyNotFound        = "3200"
	mlCodePayeeFailure         = "4000"
	mlCodeInsufficientFunds    = "4001"
	mlCodePayerBlocked         = "4400"
)

const (
	textCodeMalformedBody = "MALFORMED_BODY"
	textCodeValidation    = "VALIDATION_FAILED"
	textCodeInvalidInput  = "INVALID_INPUT"
	textCodeInternal      = "INTERNAL"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// problem is an error ready to be written: the go-errors envelope decides the
// HTTP status, the rest fills the body.
type problem struct {
	rich    *goerrors.Error
	message string
	mlCode  string
	details any
	cause   error
}

func (p problem) response() errorResponse {
	return errorResponse{Status: p.mlCode, Message: p.message, Details: p.details}
}

func problemFor(err error) problem {
	var fe *domain_failure.Error
	if errors.As(err, &fe) {
		return failureProblem(fe)
	}

	if errors.Is(err, errMalformedBody) {
		return problem{
			rich: goerrors.New(err.Error(), goerrors.CategoryBadInput).
				WithCode(http.StatusBadRequest).
				WithTextCode(textCodeMalformedBody),
			message: err.Error(),
			mlCode:  mlCodeValidation,
			cause:   err,
		}
	}

	var invalid *validationError
	if errors.As(err, &invalid) {
		return problem{
			rich: goerrors.New(errValidationFailed.Error(), goerrors.CategoryValidation).
				WithCode(http.StatusPreconditionFailed).
				WithTextCode(textCodeValidation),
			message: errValidationFailed.Error(),
			mlCode:  mlCodeValidation,
			details: invalid.violations,
			cause:   err,
		}
	}

	if errors.Is(err, port_connector.ErrInvalidInput) {
		return problem{
			rich: goerrors.New(err.Error(), goerrors.CategoryBadInput).
				WithCode(http.StatusBadRequest).
				WithTextCode(textCodeInvalidInput),
			message: err.Error(),
			mlCode:  mlCodeValidation,
			cause:   err,
		}
	}

	return problem{
		rich: goerrors.New(err.Error(), goerrors.CategoryInternal).
			WithCode(http.StatusInternalServerError).
			WithTextCode(textCodeInternal),
		message: err.Error(),
		mlCode:  mlCodeGeneric,
		cause:   err,
	}
}

func failureProblem(fe *domain_failure.Error) problem {
	status, mlCode, category := classify(fe)

	rich := goerrors.New(fe.Message, category).
		WithCode(status).
		WithTextCode(string(fe.Kind))

	p := problem{rich: rich, message: fe.Message, mlCode: mlCode, cause: fe}
	if fe.Compensation != nil {
		p.details = fe.Compensation
		rich.WithMetadata(map[string]any{
			"fineract_account_id": fe.Compensation.AccountID,
			"amount":              fe.Compensation.Amount.String(),
			"reference":           fe.Compensation.Reference,
		})
	}
	return p
}

func classify(fe *domain_failure.Error) (int, string, goerrors.Category) {
	switch fe.Kind {
	case domain_failure.KindInvalidAccountNumber:
		return http.StatusBadRequest, mlCodeInvalidAccountNumber, goerrors.CategoryValidation
	case domain_failure.KindUnsupportedIDType:
		return http.StatusBadRequest, mlCodeValidation, goerrors.CategoryValidation
	case domain_failure.KindAccountNotFound:
		return http.StatusNotFound, mlCodePartyNotFound, goerrors.CategoryNotFound
	case domain_failure.KindAccountNotActive:
		return http.StatusBadRequest, mlCodePartyNotFound, goerrors.CategoryBadInput
	case domain_failure.KindAccountBlocked:
		return http.StatusInternalServerError, mlCodePayerBlocked, goerrors.CategoryOperation
	case domain_failure.KindAccountLookupFailed:
		return http.StatusInternalServerError, mlCodePartyNotFound, goerrors.CategoryExternal
	case domain_failure.KindClientLookupFailed,
		domain_failure.KindDepositFailed,
		domain_failure.KindWithdrawFailed,
		domain_failure.KindChargeLookupFailed:
		return http.StatusInternalServerError, mlCodePayeeFailure, goerrors.CategoryExternal
	case domain_failure.KindInsufficientBalance:
		return http.StatusInternalServerError, mlCodeInsufficientFunds, goerrors.CategoryOperation
	case domain_failure.KindNoQuoteReturned, domain_failure.KindTransferInitiationFailed:
		return http.StatusInternalServerError, mlCodePayeeFailure, goerrors.CategoryExternal
	case domain_failure.KindTransferContinuationFailed:
		status := http.StatusInternalServerError
		if fe.GatewayStatus >= http.StatusBadRequest && fe.GatewayStatus <= 599 {
			status = fe.GatewayStatus
		}
		return status, mlCodePayeeFailure, goerrors.CategoryExternal
	case domain_failure.KindRefundFailed:
		return http.StatusInternalServerError, mlCodeRefundFailed, goerrors.CategoryOperation
	}
	return http.StatusInternalServerError, mlCodeGeneric, goerrors.CategoryInternal
}
