// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_ledger.go -package=mocks -mock_names=Client=MockLedgerClient github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger Client
//go:generate mockgen -destination=mock_sdk.go -package=mocks -mock_names=Client=MockGatewayClient github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk Client
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/platform Clock,IDGenerator
