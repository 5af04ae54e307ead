package impl_connector_test

import (
	"encoding/json"
	"testing"
	"time"

	domain_identifier "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/identifier"
	impl_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/usecase/connector"
	port_ledger "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger"
	gwmocks "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testIdentifier = "UG680720000289000000006"
	testAccountNo  = "0289000000006"
	testAccountID  = int64(11)
	testClientID   = int64(7)
	testBankID     = "072"
)

var testNow = time.Date(2024, 3, 7, 9, 5, 3, 120_000_000, time.UTC)

var testClientRaw = json.RawMessage(`{"id":7,"firstname":"Ada","lastname":"Lovelace","displayName":"Ada Lovelace"}`)

type fixture struct {
	svc     *impl_connector.ConnectorUsecaseImpl
	ledger  *gwmocks.MockLedgerClient
	gateway *gwmocks.MockGatewayClient
	clock   *gwmocks.MockClock
	ids     *gwmocks.MockIDGenerator
	logs    *observer.ObservedLogs
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	ledger := gwmocks.NewMockLedgerClient(ctrl)
	gateway := gwmocks.NewMockGatewayClient(ctrl)
	clock := gwmocks.NewMockClock(ctrl)
	ids := gwmocks.NewMockIDGenerator(ctrl)

	clock.EXPECT().Now().Return(testNow).AnyTimes()

	core, logs := observer.New(zap.DebugLevel)

	svc := impl_connector.NewConnectorUsecaseImpl(
		impl_connector.Settings{
			IDType:        "IBAN",
			Locale:        "en",
			PaymentTypeID: "1",
			BankID:        testBankID,
		},
		domain_identifier.NewCodec("UG", "68", testBankID, "000"),
		ledger,
		gateway,
		clock,
		ids,
		zap.New(core),
	)

	return fixture{svc: svc, ledger: ledger, gateway: gateway, clock: clock, ids: ids, logs: logs}
}

func activeAccount(availableBalance string) port_ledger.AccountResponse {
	return port_ledger.AccountResponse{
		StatusCode: 200,
		Account: port_ledger.Account{
			ID:        testAccountID,
			AccountNo: testAccountNo,
			ClientID:  testClientID,
			Status:    port_ledger.AccountStatus{Active: true},
			Currency:  port_ledger.Currency{Code: "UGX"},
			Summary: port_ledger.AccountSummary{
				AvailableBalance: decimal.RequireFromString(availableBalance),
			},
		},
	}
}

func singleMatch() port_ledger.SearchResponse {
	return port_ledger.SearchResponse{
		StatusCode: 200,
		Entities:   []port_ledger.SearchEntity{{EntityID: testAccountID, EntityAccountNo: testAccountNo}},
	}
}

func clientFound() port_ledger.ClientResponse {
	return port_ledger.ClientResponse{
		StatusCode: 200,
		Client: port_ledger.ClientDocument{
			ID:          testClientID,
			FirstName:   "Ada",
			LastName:    "Lovelace",
			DisplayName: "Ada Lovelace",
		},
		Raw: testClientRaw,
	}
}

// expectResolved stubs a successful search, account and client lookup.
func (f fixture) expectResolved() {
	f.ledger.EXPECT().Search(gomock.Any(), testAccountNo).Return(singleMatch(), nil)
	f.ledger.EXPECT().GetAccount(gomock.Any(), testAccountID).Return(activeAccount("500"), nil)
	f.ledger.EXPECT().GetClient(gomock.Any(), testClientID).Return(clientFound(), nil)
}

func savingsWithdrawalCharge(calculationType int, amount string) port_ledger.Charge {
	return port_ledger.Charge{
		Amount:                decimal.RequireFromString(amount),
		ChargeAppliesTo:       port_ledger.EnumOption{ID: 2},
		ChargeTimeType:        port_ledger.EnumOption{ID: 5},
		ChargeCalculationType: port_ledger.EnumOption{ID: calculationType},
	}
}

func zapString(key, value string) zap.Field {
	return zap.String(key, value)
}
