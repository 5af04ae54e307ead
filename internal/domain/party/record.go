package domain_party

import "encoding/json"

// Record is a snapshot of a ledger account and its owner. It is built fresh
// for every lookup.
type Record struct {
	AccountID   int64
	AccountNo   string
	ClientID    int64
	DisplayName string
	FirstName   string
	LastName    string
	Currency    string
	Active      bool
	BlockCredit bool
	BlockDebit  bool

	// Client is the ledger's client document as received.
	Client json.RawMessage
}
