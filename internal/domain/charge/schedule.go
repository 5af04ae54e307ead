package domain_charge

import "github.com/shopspring/decimal"

// Ledger enumeration ids, see the Fineract charges API.
const (
	AppliesToLoans   = 1
	AppliesToSavings = 2
	AppliesToClient  = 3
)

const (
	TimeTypeDisbursement      = 1
	TimeTypeSpecifiedDueDate  = 2
	TimeTypeSavingsActivation = 3
	TimeTypeWithdrawal        = 5
	TimeTypeAnnualFee         = 6
	TimeTypeMonthlyFee        = 7
)

const CalculationFlat = 1

var hundred = decimal.NewFromInt(100)

type Rule struct {
	ID              int64
	Name            string
	AppliesTo       int
	TimeType        int
	CalculationType int
	Amount          decimal.Decimal
}

func (r Rule) IsSavingsWithdrawal() bool {
	return r.AppliesTo == AppliesToSavings && r.TimeType == TimeTypeWithdrawal
}

// Fee returns what the rule charges on amount. Non-flat rules are a
// percentage of amount.
func (r Rule) Fee(amount decimal.Decimal) decimal.Decimal {
	if r.CalculationType == CalculationFlat {
		return r.Amount
	}
	return r.Amount.Div(hundred).Mul(amount)
}

// Schedule keeps the order the ledger returned the rules in.
type Schedule []Rule

// WithdrawalFee sums the fees of every savings withdrawal rule, in order.
func (s Schedule) WithdrawalFee(amount decimal.Decimal) decimal.Decimal {
	fee := decimal.Zero
	for _, rule := range s {
		if !rule.IsSavingsWithdrawal() {
			continue
		}
		fee = fee.Add(rule.Fee(amount))
	}
	return fee
}
