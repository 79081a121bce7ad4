package component

const (
	DefaultMoveSpeed          = 5
	DefaultFramesPerDirection = 3
)

// Tuning holds the movement constants applied every tick.
type Tuning struct {
	// Speed is the per-tick displacement along the active axis.
	Speed int
	// FramesPerDirection is the length of each facing row's walk cycle.
	FramesPerDirection int
}

func DefaultTuning() Tuning {
	return Tuning{Speed: DefaultMoveSpeed, FramesPerDirection: DefaultFramesPerDirection}
}
