package impl_rest

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeBadInput    = "BAD_INPUT"
	TextCodeExternal    = "EXTERNAL_FAILURE"
	TextCodeUnavailable = "SERVICE_UNAVAILABLE"
	TextCodeInternal    = "INTERNAL"
)

func transportError(
	message string,
	category goerrors.Category,
	code int,
	metadata map[string]any,
) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	metadata map[string]any,
) error {
	if source == nil {
		return transportError(message, category, code, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// unavailableError reports a request the breaker refused to send.
func unavailableError(source error, message string, metadata map[string]any) error {
	err := goerrors.Wrap(source, goerrors.CategoryExternal, message).
		WithCode(http.StatusServiceUnavailable).
		WithTextCode(TextCodeUnavailable)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return TextCodeBadInput
	case goerrors.CategoryExternal:
		return TextCodeExternal
	case goerrors.CategoryRateLimit:
		return TextCodeUnavailable
	default:
		return TextCodeInternal
	}
}
