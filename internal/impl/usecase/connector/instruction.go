package impl_connector

import (
	"fmt"
	"time"

	port_ledger "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger"
	"github.com/shopspring/decimal"
)

const ledgerDateFormat = "dd MM yy"

type instructionParams struct {
	Amount        decimal.Decimal
	AccountNumber string
	RoutingCode   string
	ReceiptNumber string
	BankNumber    string
}

func (u *ConnectorUsecaseImpl) newInstruction(now time.Time, p instructionParams) port_ledger.TransactionInstruction {
	return port_ledger.TransactionInstruction{
		Locale:            u.settings.Locale,
		DateFormat:        ledgerDateFormat,
		TransactionDate:   transactionDate(now),
		TransactionAmount: p.Amount,
		PaymentTypeID:     u.settings.PaymentTypeID,
		AccountNumber:     p.AccountNumber,
		RoutingCode:       p.RoutingCode,
		ReceiptNumber:     p.ReceiptNumber,
		BankNumber:        p.BankNumber,
	}
}

// transactionDate renders day, month and year without padding.
func transactionDate(t time.Time) string {
	return fmt.Sprintf("%d %d %d", t.Day(), int(t.Month()), t.Year())
}
