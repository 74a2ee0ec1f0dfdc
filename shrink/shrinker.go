package shrink

// Strategy selects the order in which a node's children are tried during
// a shrink pass. Kept configurable (as the teacher's gen.shrinkStrategy
// was) even though the spec's traversal itself is defined as "scan
// shrinks() for the first still-failing candidate": Strategy only changes
// which end of that scan is tried first, which matters when a generator
// orders its children from "most aggressive" to "most local" (BFS favors
// the aggressive end; DFS favors the local end).
type Strategy string

const (
	BFS Strategy = "bfs"
	DFS Strategy = "dfs"
)

var strategy = BFS

// SetStrategy sets the process-wide shrink traversal strategy. Any value
// other than DFS is treated as BFS.
func SetStrategy(s Strategy) {
	if s == DFS {
		strategy = DFS
		return
	}
	strategy = BFS
}

// GetStrategy returns the current shrink traversal strategy.
func GetStrategy() Strategy { return strategy }

// Result is the outcome of a shrink run: the locally minimal failing node
// found plus how many candidates were actually tried.
type Result[T any] struct {
	Min   Shrinkable[T]
	Steps int
}

// Shrink walks the shrink tree rooted at failing, looking for a locally
// minimal node: repeatedly scan the current node's children for the first
// one whose value still fails pred; descend into it; stop when no child
// fails pred. maxSteps bounds the total number of candidates tried (0
// means unbounded).
func Shrink[T any](failing Shrinkable[T], pred func(T) bool, maxSteps int) Result[T] {
	current := failing
	steps := 0
	for {
		if maxSteps > 0 && steps >= maxSteps {
			return Result[T]{Min: current, Steps: steps}
		}
		children := orderedChildren(&current)
		descended := false
		for _, child := range children {
			if maxSteps > 0 && steps >= maxSteps {
				return Result[T]{Min: current, Steps: steps}
			}
			steps++
			if !pred(child.Value()) {
				continue
			}
			current = child
			descended = true
			break
		}
		if !descended {
			return Result[T]{Min: current, Steps: steps}
		}
		if maxSteps > 0 && steps >= maxSteps {
			return Result[T]{Min: current, Steps: steps}
		}
	}
}

func orderedChildren[T any](node *Shrinkable[T]) []Shrinkable[T] {
	children := node.Shrinks()
	if strategy != DFS {
		return children
	}
	out := make([]Shrinkable[T], len(children))
	for i, c := range children {
		out[len(children)-1-i] = c
	}
	return out
}
