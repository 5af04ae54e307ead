package impl_connector

import (
	"context"
	"strconv"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
	domain_party "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/party"
	port_ledger "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger"
	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"
	"go.uber.org/zap"
)

func (u *ConnectorUsecaseImpl) GetParties(ctx context.Context, identifier string) (port_connector.Party, error) {
	accountNo, err := u.codec.ExtractAccount(identifier)
	if err != nil {
		return port_connector.Party{}, err
	}

	u.log.Info("looking up party", zap.String("account_no", accountNo))

	record, err := u.resolveParty(ctx, accountNo)
	if err != nil {
		return port_connector.Party{}, err
	}

	return port_connector.Party{
		DisplayName: record.DisplayName,
		FirstName:   record.FirstName,
		// The ledger keeps no middle name.
		MiddleName:     record.FirstName,
		LastName:       record.LastName,
		IDType:         port_connector.IDTypeIBAN,
		IDValue:        accountNo,
		Type:           port_connector.PartyTypeConsumer,
		KYCInformation: string(record.Client),
	}, nil
}

// resolveParty walks search, account and client in order, each step feeding
// the next.
func (u *ConnectorUsecaseImpl) resolveParty(ctx context.Context, accountNo string) (domain_party.Record, error) {
	search, err := u.ledger.Search(ctx, accountNo)
	if err != nil {
		return domain_party.Record{}, domain_failure.AccountLookupFailed(accountNo, 0, err)
	}

	if !succeeded(search.StatusCode) {
		return domain_party.Record{}, domain_failure.AccountLookupFailed(accountNo, search.StatusCode, nil)
	}

	if len(search.Entities) != 1 {
		u.log.Warn("account search did not return exactly one match",
			zap.String("account_no", accountNo),
			zap.Int("matches", len(search.Entities)),
		)
		return domain_party.Record{}, domain_failure.AccountNotFound(accountNo)
	}

	accountID := search.Entities[0].EntityID

	account, err := u.fetchAccount(ctx, accountID)
	if err != nil {
		return domain_party.Record{}, err
	}

	if err := checkEligible(accountID, account); err != nil {
		u.log.Warn("account not eligible", zap.Int64("account_id", accountID), zap.Error(err))
		return domain_party.Record{}, err
	}

	client, err := u.ledger.GetClient(ctx, account.ClientID)
	if err != nil {
		return domain_party.Record{}, domain_failure.ClientLookupFailed(account.ClientID, 0, err)
	}

	if !succeeded(client.StatusCode) {
		u.log.Warn("client lookup failed",
			zap.Int64("client_id", account.ClientID),
			zap.Int("status", client.StatusCode),
		)
		return domain_party.Record{}, domain_failure.ClientLookupFailed(account.ClientID, client.StatusCode, nil)
	}

	return domain_party.Record{
		AccountID:   accountID,
		AccountNo:   account.AccountNo,
		ClientID:    account.ClientID,
		DisplayName: client.Client.DisplayName,
		FirstName:   client.Client.FirstName,
		LastName:    client.Client.LastName,
		Currency:    account.Currency.Code,
		Active:      account.Status.Active,
		BlockCredit: account.SubStatus.BlockCredit,
		BlockDebit:  account.SubStatus.BlockDebit,
		Client:      client.Raw,
	}, nil
}

func (u *ConnectorUsecaseImpl) fetchAccount(ctx context.Context, accountID int64) (port_ledger.Account, error) {
	res, err := u.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return port_ledger.Account{}, domain_failure.AccountLookupFailed(strconv.FormatInt(accountID, 10), 0, err)
	}

	if !succeeded(res.StatusCode) {
		return port_ledger.Account{}, domain_failure.AccountLookupFailed(strconv.FormatInt(accountID, 10), res.StatusCode, nil)
	}

	return res.Account, nil
}

func checkEligible(accountID int64, account port_ledger.Account) error {
	if !account.Status.Active {
		return domain_failure.AccountNotActive(accountID)
	}

	if account.Blocked() {
		return domain_failure.AccountBlocked(accountID)
	}

	return nil
}
