package exec

// TaskStatus is one task's row in a cycle snapshot.
type TaskStatus struct {
	Name     string
	Priority int
	Active   bool
}

// CycleResult is the copy-out view of one evaluation, safe to hand to a
// presentation sink. It shares no memory with the controller, so a sink
// cannot corrupt executive state.
type CycleResult struct {
	Cycle    uint64
	Load     float64
	State    SystemState
	Pressure uint32       // hysteresis counter after this cycle
	Tasks    []TaskStatus // priority order, most critical first
}

// Suspended returns how many tasks are currently inactive.
func (r CycleResult) Suspended() int {
	n := 0
	for _, t := range r.Tasks {
		if !t.Active {
			n++
		}
	}
	return n
}
