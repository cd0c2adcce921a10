package exec

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// MinPriority is the most critical priority a task may hold.
const MinPriority = 1

// TaskSpec names one executive task and its fixed priority.
// Lower priority numbers are more critical.
type TaskSpec struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
}

// task is one slot in the controller's arena. Name and priority are fixed at
// construction; only the activation flag mutates, and only the controller
// mutates it.
type task struct {
	name     string
	priority int
	active   bool
}

// rank orders tasks by priority, then name so the order is deterministic.
type rank struct {
	priority int
	name     string
}

func cmpRank(a, b any) int {
	ka, kb := a.(rank), b.(rank)
	switch {
	case ka.priority < kb.priority:
		return -1
	case ka.priority > kb.priority:
		return 1
	case ka.name < kb.name:
		return -1
	case ka.name > kb.name:
		return 1
	default:
		return 0
	}
}

// buildArena validates the roster and returns the tasks in priority order.
// The permutation is fixed once here; cycles never re-sort. Every task starts
// active.
func buildArena(roster []TaskSpec) ([]task, error) {
	if len(roster) == 0 {
		return nil, fmt.Errorf("task roster is empty")
	}

	seen := make(map[string]struct{}, len(roster))
	rbt := redblacktree.NewWith(cmpRank)
	for _, ts := range roster {
		if ts.Name == "" {
			return nil, fmt.Errorf("task with empty name in roster")
		}
		if ts.Priority < MinPriority {
			return nil, fmt.Errorf("task %q has priority %d, minimum is %d", ts.Name, ts.Priority, MinPriority)
		}
		if _, dup := seen[ts.Name]; dup {
			return nil, fmt.Errorf("task %q appears twice in roster", ts.Name)
		}
		seen[ts.Name] = struct{}{}
		rbt.Put(rank{ts.Priority, ts.Name}, nil)
	}

	arena := make([]task, 0, len(roster))
	for it := rbt.Iterator(); it.Next(); {
		key := it.Key().(rank)
		arena = append(arena, task{
			name:     key.name,
			priority: key.priority,
			active:   true,
		})
	}
	return arena, nil
}
