package impl_connector

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	domain_failure "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/failure"
)

// ReconciliationReference fingerprints an unreversed debit so the same
// incident reported twice can be matched up during manual reconciliation.
func ReconciliationReference(rec domain_failure.CompensationRecord) string {
	transferID := strings.TrimSpace(rec.TransferID)
	reason := strings.TrimSpace(rec.Reason)

	payload := fmt.Sprintf("%d|%s|%s|%s", rec.AccountID, rec.Amount.String(), transferID, reason)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
