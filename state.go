package prism

// InteractionState represents where a Picker is in its interaction
// lifecycle. The working representation tracks external writes only in
// StateIdle; Dragging and Settling suppress them so external
// synchronization never fights the pointer.
type InteractionState int32

const (
	// StateIdle indicates no interaction is in progress.
	StateIdle InteractionState = iota

	// StateDragging indicates an interaction is in progress between
	// ChangeStart and ChangeEnd.
	StateDragging

	// StateSettling indicates an interaction has ended but its settle
	// window has not yet elapsed. A new ChangeStart re-enters Dragging;
	// otherwise the state decays to Idle after a quiet period.
	StateSettling
)

// String returns the string representation of the state.
func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// PaletteState represents the current state of a PaletteWatcher.
type PaletteState int32

const (
	// PaletteLoading indicates the watcher is initializing and has not yet
	// processed any palette.
	PaletteLoading PaletteState = iota

	// PaletteHealthy indicates a valid palette is applied.
	PaletteHealthy

	// PaletteDegraded indicates the last palette change failed decoding or
	// validation. The previous valid palette remains active.
	PaletteDegraded

	// PaletteEmpty indicates the initial load failed and no valid palette
	// has ever been obtained. The watcher continues watching for valid
	// updates.
	PaletteEmpty
)

// String returns the string representation of the state.
func (s PaletteState) String() string {
	switch s {
	case PaletteLoading:
		return "loading"
	case PaletteHealthy:
		return "healthy"
	case PaletteDegraded:
		return "degraded"
	case PaletteEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
