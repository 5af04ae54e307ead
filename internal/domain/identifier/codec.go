package domain_identifier

import (
	"unicode/utf8"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
)

// Codec extracts raw account numbers from IBAN-like identifiers laid out as
// country code, check digits, bank id, account prefix, account number.
type Codec struct {
	countryCode   string
	checkDigits   string
	bankID        string
	accountPrefix string
}

func NewCodec(countryCode, checkDigits, bankID, accountPrefix string) Codec {
	return Codec{
		countryCode:   countryCode,
		checkDigits:   checkDigits,
		bankID:        bankID,
		accountPrefix: accountPrefix,
	}
}

// PrefixWidth is the number of leading bytes stripped from every identifier.
func (c Codec) PrefixWidth() int {
	return len(c.countryCode) + len(c.checkDigits) + len(c.bankID) + len(c.accountPrefix)
}

func (c Codec) ExtractAccount(identifier string) (string, error) {
	width := c.PrefixWidth()
	if len(identifier) <= width {
		return "", domain_failure.InvalidAccountNumber()
	}

	account := identifier[width:]
	if !utf8.ValidString(account) {
		return "", domain_failure.InvalidAccountNumber()
	}
	return account, nil
}
