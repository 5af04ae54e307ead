package domain_transfer_test

import (
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/fineract-core-connector/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

func newContinuation(t *testing.T, now time.Time) *domain_transfer.Continuation {
	t.Helper()

	c, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID: "b51ec534-ee48-4575-b6a9-ead2955b8069",
		AccountID:  42,
		Amount:     decimal.RequireFromString("100.50"),
		Now:        now,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	t.Run("creates continuation with valid parameters", func(t *testing.T) {
		c := newContinuation(t, now)

		if c.TransferID() != "b51ec534-ee48-4575-b6a9-ead2955b8069" {
			t.Errorf("expected transfer id to be kept, got %s", c.TransferID())
		}

		if c.AccountID() != 42 {
			t.Errorf("expected account id 42, got %d", c.AccountID())
		}

		if !c.Amount().Equal(decimal.RequireFromString("100.5")) {
			t.Errorf("expected amount 100.5, got %s", c.Amount())
		}

		if c.Status() != domain_transfer.StatusNotStarted {
			t.Errorf("expected status not started, got %v", c.Status())
		}

		if !c.CreatedAt().Equal(now) {
			t.Errorf("expected created at %v, got %v", now, c.CreatedAt())
		}

		if !c.UpdatedAt().Equal(now) {
			t.Errorf("expected updated at %v, got %v", now, c.UpdatedAt())
		}

		if events := c.PullEvents(); events != nil {
			t.Errorf("expected no events, got %d", len(events))
		}
	})

	t.Run("defaults now when zero", func(t *testing.T) {
		c, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID: "t-1",
			AccountID:  1,
			Amount:     decimal.NewFromInt(1),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if c.CreatedAt().IsZero() {
			t.Error("expected created at to be set")
		}
	})

	tests := []struct {
		name   string
		params domain_transfer.NewParams
		want   error
	}{
		{
			name:   "rejects blank transfer id",
			params: domain_transfer.NewParams{TransferID: "  ", AccountID: 1, Amount: decimal.NewFromInt(1)},
			want:   domain_transfer.ErrInvalidTransferID,
		},
		{
			name:   "rejects non positive account id",
			params: domain_transfer.NewParams{TransferID: "t-1", AccountID: 0, Amount: decimal.NewFromInt(1)},
			want:   domain_transfer.ErrInvalidAccountID,
		},
		{
			name:   "rejects zero amount",
			params: domain_transfer.NewParams{TransferID: "t-1", AccountID: 1, Amount: decimal.Zero},
			want:   domain_transfer.ErrInvalidAmount,
		},
		{
			name:   "rejects negative amount",
			params: domain_transfer.NewParams{TransferID: "t-1", AccountID: 1, Amount: decimal.NewFromInt(-5)},
			want:   domain_transfer.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain_transfer.New(tt.params)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestContinuation_HappyPath(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	c := newContinuation(t, now)

	withdrawnAt := now.Add(time.Second)
	if err := c.MarkWithdrawn(withdrawnAt); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if c.Status() != domain_transfer.StatusWithdrawn {
		t.Fatalf("expected status withdrawn, got %v", c.Status())
	}

	if !c.Status().Debited() {
		t.Error("expected withdrawn continuation to be debited")
	}

	confirmedAt := now.Add(2 * time.Second)
	if err := c.Confirm(confirmedAt); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if c.Status() != domain_transfer.StatusConfirmed {
		t.Fatalf("expected status confirmed, got %v", c.Status())
	}

	if !c.UpdatedAt().Equal(confirmedAt) {
		t.Errorf("expected updated at %v, got %v", confirmedAt, c.UpdatedAt())
	}

	events := c.PullEvents()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	withdrawn, ok := events[0].(domain_transfer.ContinuationWithdrawn)
	if !ok {
		t.Fatalf("expected ContinuationWithdrawn, got %T", events[0])
	}

	if withdrawn.AccountID != 42 || !withdrawn.Amount.Equal(decimal.RequireFromString("100.5")) {
		t.Errorf("unexpected withdrawn event payload: %+v", withdrawn)
	}

	if events[1].EventName() != "transfer.confirmed" {
		t.Errorf("expected transfer.confirmed, got %s", events[1].EventName())
	}

	if events[1].AggregateID() != c.TransferID() {
		t.Errorf("expected aggregate id %s, got %s", c.TransferID(), events[1].AggregateID())
	}

	if again := c.PullEvents(); again != nil {
		t.Errorf("expected events to be drained, got %d", len(again))
	}
}

func TestContinuation_Abort(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	t.Run("aborts before withdrawal", func(t *testing.T) {
		c := newContinuation(t, now)

		if err := c.Abort("  withdraw failed  ", now); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if c.Status() != domain_transfer.StatusAborted {
			t.Fatalf("expected status aborted, got %v", c.Status())
		}

		if c.FailureReason() != "withdraw failed" {
			t.Errorf("expected trimmed reason, got %q", c.FailureReason())
		}

		if c.Status().Debited() {
			t.Error("expected aborted continuation not to be debited")
		}
	})

	t.Run("requires reason", func(t *testing.T) {
		c := newContinuation(t, now)

		if err := c.Abort(" ", now); !errors.Is(err, domain_transfer.ErrMissingFailureReason) {
			t.Fatalf("expected ErrMissingFailureReason, got %v", err)
		}

		if c.Status() != domain_transfer.StatusNotStarted {
			t.Errorf("expected status unchanged, got %v", c.Status())
		}
	})

	t.Run("cannot abort after withdrawal", func(t *testing.T) {
		c := newContinuation(t, now)
		_ = c.MarkWithdrawn(now)

		if err := c.Abort("late", now); !errors.Is(err, domain_transfer.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})
}

func TestContinuation_Compensation(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	t.Run("compensates withdrawn continuation", func(t *testing.T) {
		c := newContinuation(t, now)
		_ = c.MarkWithdrawn(now)
		_ = c.PullEvents()

		if err := c.Compensate("gateway rejected", now); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if c.Status() != domain_transfer.StatusCompensated {
			t.Fatalf("expected status compensated, got %v", c.Status())
		}

		if c.Status().Debited() {
			t.Error("expected compensated continuation not to be debited")
		}

		events := c.PullEvents()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}

		ev, ok := events[0].(domain_transfer.ContinuationCompensated)
		if !ok {
			t.Fatalf("expected ContinuationCompensated, got %T", events[0])
		}

		if ev.Reason != "gateway rejected" {
			t.Errorf("expected reason 'gateway rejected', got %q", ev.Reason)
		}
	})

	t.Run("records failed refund", func(t *testing.T) {
		c := newContinuation(t, now)
		_ = c.MarkWithdrawn(now)

		if err := c.FailRefund("deposit rejected", now); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if c.Status() != domain_transfer.StatusRefundFailed {
			t.Fatalf("expected status refund failed, got %v", c.Status())
		}

		if !c.Status().Debited() {
			t.Error("expected refund failed continuation to stay debited")
		}
	})

	t.Run("cannot compensate before withdrawal", func(t *testing.T) {
		c := newContinuation(t, now)

		if err := c.Compensate("x", now); !errors.Is(err, domain_transfer.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}

		if err := c.FailRefund("x", now); !errors.Is(err, domain_transfer.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})
}

func TestContinuation_FinalStates(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	finals := map[string]func(c *domain_transfer.Continuation){
		"confirmed": func(c *domain_transfer.Continuation) {
			_ = c.MarkWithdrawn(now)
			_ = c.Confirm(now)
		},
		"compensated": func(c *domain_transfer.Continuation) {
			_ = c.MarkWithdrawn(now)
			_ = c.Compensate("r", now)
		},
		"refund failed": func(c *domain_transfer.Continuation) {
			_ = c.MarkWithdrawn(now)
			_ = c.FailRefund("r", now)
		},
		"aborted": func(c *domain_transfer.Continuation) {
			_ = c.Abort("r", now)
		},
	}

	for name, drive := range finals {
		t.Run(name+" rejects further transitions", func(t *testing.T) {
			c := newContinuation(t, now)
			drive(c)

			if !c.Status().IsFinal() {
				t.Fatalf("expected final status, got %v", c.Status())
			}

			if err := c.MarkWithdrawn(now); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
				t.Errorf("expected ErrAlreadyFinalized on withdraw, got %v", err)
			}

			if err := c.Confirm(now); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
				t.Errorf("expected ErrAlreadyFinalized on confirm, got %v", err)
			}

			if err := c.Compensate("again", now); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
				t.Errorf("expected ErrAlreadyFinalized on compensate, got %v", err)
			}
		})
	}
}

func TestStatus_IsFinal(t *testing.T) {
	if domain_transfer.StatusNotStarted.IsFinal() {
		t.Error("expected not started to be non final")
	}

	if domain_transfer.StatusWithdrawn.IsFinal() {
		t.Error("expected withdrawn to be non final")
	}
}
