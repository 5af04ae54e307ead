package impl_connector

import (
	"net/http"
	"time"

	domain_identifier "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/identifier"
	port_ledger "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger"
	port_platform "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/platform"
	port_sdk "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk"
	"go.uber.org/zap"
)

// timestampLayout matches JavaScript's Date.toJSON, which is what the
// gateway expects for expirations and completion times.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Settings struct {
	// IDType is the only party id type this connector serves, usually IBAN.
	IDType        string
	Locale        string
	PaymentTypeID string
	BankID        string
}

type ConnectorUsecaseImpl struct {
	settings Settings
	codec    domain_identifier.Codec
	ledger   port_ledger.Client
	gateway  port_sdk.Client
	clock    port_platform.Clock
	ids      port_platform.IDGenerator
	log      *zap.Logger
}

func NewConnectorUsecaseImpl(
	settings Settings,
	codec domain_identifier.Codec,
	ledger port_ledger.Client,
	gateway port_sdk.Client,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	log *zap.Logger,
) *ConnectorUsecaseImpl {
	if log == nil {
		log = zap.NewNop()
	}

	return &ConnectorUsecaseImpl{
		settings: settings,
		codec:    codec,
		ledger:   ledger,
		gateway:  gateway,
		clock:    clock,
		ids:      ids,
		log:      log.Named("connector"),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func succeeded(status int) bool {
	return status == http.StatusOK
}
