package exec

// SystemState labels the controller's condition for one control cycle.
type SystemState int

const (
	// StateStable means the load is acceptable and no overload pressure remains.
	StateStable SystemState = iota
	// StateOverload means the current load sample exceeded the threshold.
	StateOverload
	// StateCooldown means the load is acceptable again but residual overload
	// pressure has not yet drained, so suspended tasks stay suspended.
	StateCooldown
)

func (s SystemState) String() string {
	switch s {
	case StateStable:
		return "STABLE"
	case StateOverload:
		return "OVERLOAD"
	case StateCooldown:
		return "COOLDOWN"
	default:
		return "UNKNOWN"
	}
}
