package action

import (
	"errors"
	"testing"

	"github.com/arbitlab/arbit/arbitrary"
	"github.com/arbitlab/arbit/rng"
)

type bankAccount struct {
	Balance int
	Closed  bool
}

func depositAction(amount int) Action[bankAccount] {
	return Action[bankAccount]{
		Name: "deposit",
		Run: func(s bankAccount) (bankAccount, error) {
			if s.Closed {
				return s, errors.New("account is closed")
			}
			s.Balance += amount
			return s, nil
		},
	}
}

func withdrawAction(amount int) Action[bankAccount] {
	return Action[bankAccount]{
		Name: "withdraw",
		Run: func(s bankAccount) (bankAccount, error) {
			if s.Closed {
				return s, errors.New("account is closed")
			}
			if s.Balance < amount {
				return s, errors.New("insufficient funds")
			}
			s.Balance -= amount
			return s, nil
		},
	}
}

func closeAction() Action[bankAccount] {
	return Action[bankAccount]{
		Name: "close",
		Run: func(s bankAccount) (bankAccount, error) {
			s.Closed = true
			return s, nil
		},
	}
}

func bankActions() Generator[bankAccount] {
	return arbitrary.OneOf(
		arbitrary.Map(arbitrary.Ints(1, 1000), depositAction),
		arbitrary.Map(arbitrary.Ints(1, 1000), withdrawAction),
		arbitrary.Constant(closeAction()),
	)
}

func TestSequenceSucceedsAndKeepsBalanceNonNegative(t *testing.T) {
	seq := New(bankActions(), 10, rng.Seeded(42))
	seq.WithInvariant(func(s bankAccount) error {
		if s.Balance < 0 {
			return errors.New("balance went negative")
		}
		return nil
	})

	final, err := seq.Run(bankAccount{})
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if final.Balance < 0 {
		t.Fatalf("invariant should have prevented a negative balance, got %d", final.Balance)
	}
	if seq.RunState() != Succeeded {
		t.Fatalf("expected Succeeded, got %s", seq.RunState())
	}
	if len(seq.RunActions()) != 10 {
		t.Fatalf("expected 10 actions, got %d", len(seq.RunActions()))
	}
}

func TestSequenceIsIdempotentOnceTerminal(t *testing.T) {
	seq := New(bankActions(), 5, rng.Seeded(7))
	first, err1 := seq.Run(bankAccount{})
	second, err2 := seq.Run(bankAccount{Balance: 999})

	if err1 != err2 {
		t.Fatalf("re-running a terminal sequence changed the error: %v vs %v", err1, err2)
	}
	if first != second {
		t.Fatalf("re-running a terminal sequence changed the final model: %+v vs %+v", first, second)
	}
}

func TestEmptySequenceFails(t *testing.T) {
	seq := New(bankActions(), 1, rng.Seeded(1))
	seq.size = 0
	final, err := seq.Run(bankAccount{})
	if err == nil {
		t.Fatal("expected EmptySequence failure for a zero-length sequence")
	}
	if final != (bankAccount{}) {
		t.Fatalf("expected unchanged model on empty sequence, got %+v", final)
	}
	if seq.RunState() != Failed {
		t.Fatalf("expected Failed, got %s", seq.RunState())
	}
}

func TestInvariantFailureMarksSequenceFailed(t *testing.T) {
	seq := New(bankActions(), 20, rng.Seeded(99))
	seq.WithInvariant(func(s bankAccount) error {
		return errors.New("always fails")
	})

	_, err := seq.Run(bankAccount{})
	if err == nil {
		t.Fatal("expected invariant failure")
	}
	if seq.RunState() != Failed {
		t.Fatalf("expected Failed, got %s", seq.RunState())
	}
}
