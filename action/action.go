// Package action implements the stateful ActionSequence<M> runner: an
// ordered list of model-mutating actions drawn from a generator and
// executed against a model, with invariants checked after every step.
// Grounded on the teacher's never-finished prop.StateMachine[S,C] /
// prop.Command[S,C] / executeStateMachine shape (prop/state_machine_test.go,
// docs/examples/state_machine_test.go), generalized here into an
// Arbitrary-backed sequence instead of a fixed []Command array.
package action

import (
	"strings"
	"sync"

	"github.com/arbitlab/arbit/arbitrary"
	"github.com/arbitlab/arbit/display"
	"github.com/arbitlab/arbit/internal/errkind"
	"github.com/arbitlab/arbit/rng"
)

// Action is a single named state transition: Run takes the current model
// and returns the next one, or an error if the action cannot legally be
// applied (the teacher's Execute/Precondition pair, folded into one call
// since a precondition violation is just Run returning an error).
type Action[M any] struct {
	Name string
	Run  func(M) (M, error)
}

// Generator produces Actions against model M. It is an Arbitrary so that
// action sequences inherit shrinking (a shrunk sequence is simply a
// shorter/earlier-drawn list of the same Action values) and can be built
// with the full combinator set (OneOf, Frequency, Map, ...).
type Generator[M any] = arbitrary.Arbitrary[Action[M]]

// RunState is the lifecycle of a Sequence: NotRun -> Running ->
// {Succeeded, Failed}.
type RunState int

const (
	NotRun RunState = iota
	Running
	Succeeded
	Failed
)

func (s RunState) String() string {
	switch s {
	case NotRun:
		return "NOT_RUN"
	case Running:
		return "RUNNING"
	case Succeeded:
		return "SUCCEEDED"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Sequence is a mutable runner wrapping a Generator[M]. It draws up to
// size actions, executes each against the current model, and checks every
// registered invariant after each step. Run is idempotent once terminal;
// all public operations serialize under mu so a Sequence can be polled
// safely from a second goroutine while it runs (the driver itself stays
// single-threaded per run, per the concurrency model).
type Sequence[M any] struct {
	mu         sync.Mutex
	gen        Generator[M]
	size       int
	src        *rng.Source
	invariants []func(M) error
	actions    []Action[M]
	current    M
	state      RunState
	err        error
}

// New builds a Sequence that will draw up to size actions (size must be
// >= 1) from gen using src.
func New[M any](gen Generator[M], size int, src *rng.Source) *Sequence[M] {
	if size < 1 {
		size = 1
	}
	if src == nil {
		src = rng.Seeded(1)
	}
	return &Sequence[M]{gen: gen, size: size, src: src}
}

// WithInvariant registers an additional invariant, checked against the
// model after every executed action, and returns the receiver for
// chaining.
func (s *Sequence[M]) WithInvariant(inv func(M) error) *Sequence[M] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invariants = append(s.invariants, inv)
	return s
}

// Run executes the sequence against initial and returns the final model.
// Calling Run again after the sequence has reached a terminal state
// returns the stored final model without re-running anything.
func (s *Sequence[M]) Run(initial M) (M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Succeeded || s.state == Failed {
		return s.current, s.err
	}

	s.state = Running
	s.current = initial

	generator := s.gen.Generator(arbitrary.DefaultGenSize)
	for i := 0; i < s.size; i++ {
		drawn := generator(s.src)
		act := drawn.Value()

		next, runErr := s.executeOne(act)
		if runErr != nil {
			s.state = Failed
			s.err = runErr
			return s.current, s.err
		}
		s.actions = append(s.actions, act)
		s.current = next

		if invErr := s.checkInvariants(); invErr != nil {
			s.state = Failed
			s.err = invErr
			return s.current, s.err
		}
	}

	if len(s.actions) == 0 {
		s.state = Failed
		s.err = errkind.New(errkind.EmptySequence, "action sequence produced zero actions")
		return s.current, s.err
	}

	s.state = Succeeded
	s.err = nil
	return s.current, nil
}

type stepResult[M any] struct {
	model M
	err   error
}

func (s *Sequence[M]) executeOne(act Action[M]) (M, error) {
	result, trapped := errkind.Trap(errkind.AssertionFailedError, func() stepResult[M] {
		next, err := act.Run(s.current)
		return stepResult[M]{model: next, err: err}
	})
	if trapped != nil {
		var zero M
		return zero, trapped
	}
	if result.err != nil {
		var zero M
		return zero, errkind.Wrap(errkind.AssertionFailedError, result.err, "action %q failed", act.Name)
	}
	return result.model, nil
}

func (s *Sequence[M]) checkInvariants() error {
	for _, inv := range s.invariants {
		_, trapped := errkind.Trap(errkind.InvariantFailedError, func() struct{} {
			if err := inv(s.current); err != nil {
				panic(err)
			}
			return struct{}{}
		})
		if trapped != nil {
			return errkind.Wrap(errkind.InvariantFailedError, trapped,
				"invariant failed after %d action(s): %s; final model: %s",
				len(s.actions), s.actionNames(), display.Render(s.current))
		}
	}
	return nil
}

func (s *Sequence[M]) actionNames() string {
	names := make([]string, len(s.actions))
	for i, a := range s.actions {
		names[i] = a.Name
	}
	return strings.Join(names, " -> ")
}

// RunActions returns the actions actually executed so far (a prefix of at
// most size; shorter if the sequence failed).
func (s *Sequence[M]) RunActions() []Action[M] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Action[M]{}, s.actions...)
}

// FinalModel returns the model as of the last successfully executed
// action (or the initial model if none ran yet).
func (s *Sequence[M]) FinalModel() M {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// RunState returns the current lifecycle state.
func (s *Sequence[M]) RunState() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
