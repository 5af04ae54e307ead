package domain_transfer

type Status string

const (
	StatusNotStarted   Status = "NOT_STARTED"
	StatusWithdrawn    Status = "WITHDRAWN"
	StatusConfirmed    Status = "CONFIRMED"
	StatusCompensated  Status = "COMPENSATED"
	StatusRefundFailed Status = "REFUND_FAILED"
	StatusAborted      Status = "ABORTED"
)

func (s Status) IsFinal() bool {
	switch s {
	case StatusConfirmed, StatusCompensated, StatusRefundFailed, StatusAborted:
		return true
	}
	return false
}

// Debited reports whether the ledger still holds a withdrawal for the
// continuation that has not been reversed.
func (s Status) Debited() bool {
	return s == StatusWithdrawn || s == StatusConfirmed || s == StatusRefundFailed
}
