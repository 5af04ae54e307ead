package port_ledger

import (
	"context"
	"encoding/json"

	domain_charge "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/charge"
	"github.com/shopspring/decimal"
)

// Client is the core-banking ledger. A call returns an error only when the
// ledger could not be reached or its answer could not be read; any status the
// ledger answered with is reported in StatusCode.
type Client interface {
	Search(ctx context.Context, accountNo string) (SearchResponse, error)
	GetAccount(ctx context.Context, accountID int64) (AccountResponse, error)
	GetClient(ctx context.Context, clientID int64) (ClientResponse, error)
	Deposit(ctx context.Context, accountID int64, tx TransactionInstruction) (TransactionResult, error)
	Withdraw(ctx context.Context, accountID int64, tx TransactionInstruction) (TransactionResult, error)
	GetCharges(ctx context.Context) (ChargesResponse, error)
}

type SearchEntity struct {
	EntityID        int64  `json:"entityId"`
	EntityAccountNo string `json:"entityAccountNo"`
	EntityName      string `json:"entityName"`
	EntityType      string `json:"entityType"`
	ParentID        int64  `json:"parentId"`
	ParentName      string `json:"parentName"`
}

type SearchResponse struct {
	StatusCode int `json:"-"`
	Entities   []SearchEntity
}

type AccountStatus struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	Value  string `json:"value"`
	Active bool   `json:"active"`
	Closed bool   `json:"closed"`
}

type AccountSubStatus struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Block       bool   `json:"block"`
	BlockCredit bool   `json:"blockCredit"`
	BlockDebit  bool   `json:"blockDebit"`
}

type Currency struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

type AccountSummary struct {
	Currency         Currency        `json:"currency"`
	AccountBalance   decimal.Decimal `json:"accountBalance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
}

type Account struct {
	ID         int64            `json:"id"`
	AccountNo  string           `json:"accountNo"`
	ClientID   int64            `json:"clientId"`
	ClientName string           `json:"clientName"`
	Status     AccountStatus    `json:"status"`
	SubStatus  AccountSubStatus `json:"subStatus"`
	Currency   Currency         `json:"currency"`
	Summary    AccountSummary   `json:"summary"`
}

func (a Account) Blocked() bool {
	return a.SubStatus.BlockCredit || a.SubStatus.BlockDebit
}

type AccountResponse struct {
	StatusCode int `json:"-"`
	Account    Account
}

type ClientDocument struct {
	ID          int64  `json:"id"`
	AccountNo   string `json:"accountNo"`
	Active      bool   `json:"active"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	DisplayName string `json:"displayName"`
	OfficeID    int64  `json:"officeId"`
	OfficeName  string `json:"officeName"`
}

type ClientResponse struct {
	StatusCode int `json:"-"`
	Client     ClientDocument

	// Raw is the client document exactly as the ledger sent it.
	Raw json.RawMessage
}

// TransactionInstruction is the body of a savings deposit or withdrawal.
type TransactionInstruction struct {
	Locale            string          `json:"locale"`
	DateFormat        string          `json:"dateFormat"`
	TransactionDate   string          `json:"transactionDate"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	PaymentTypeID     string          `json:"paymentTypeId"`
	AccountNumber     string          `json:"accountNumber"`
	RoutingCode       string          `json:"routingCode"`
	ReceiptNumber     string          `json:"receiptNumber"`
	BankNumber        string          `json:"bankNumber"`
}

type TransactionResult struct {
	StatusCode int   `json:"-"`
	OfficeID   int64 `json:"officeId"`
	ClientID   int64 `json:"clientId"`
	SavingsID  int64 `json:"savingsId"`
	ResourceID int64 `json:"resourceId"`
}

type EnumOption struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

type Charge struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	Active                bool            `json:"active"`
	Penalty               bool            `json:"penalty"`
	Currency              Currency        `json:"currency"`
	Amount                decimal.Decimal `json:"amount"`
	ChargeTimeType        EnumOption      `json:"chargeTimeType"`
	ChargeAppliesTo       EnumOption      `json:"chargeAppliesTo"`
	ChargeCalculationType EnumOption      `json:"chargeCalculationType"`
}

func (c Charge) Rule() domain_charge.Rule {
	return domain_charge.Rule{
		ID:              c.ID,
		Name:            c.Name,
		AppliesTo:       c.ChargeAppliesTo.ID,
		TimeType:        c.ChargeTimeType.ID,
		CalculationType: c.ChargeCalculationType.ID,
		Amount:          c.Amount,
	}
}

type ChargesResponse struct {
	StatusCode int `json:"-"`
	Charges    []Charge
}

// Schedule keeps the ledger's ordering.
func (r ChargesResponse) Schedule() domain_charge.Schedule {
	schedule := make(domain_charge.Schedule, 0, len(r.Charges))
	for _, c := range r.Charges {
		schedule = append(schedule, c.Rule())
	}
	return schedule
}
