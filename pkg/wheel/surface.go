package wheel

// Surface is the visual collaborator that hosts the wheel display.
// Implementations attach one [UnitView] per tracked unit and render
// whatever state the core pushes into those views. The core never asks
// a surface about rendering technology; terminal cells, raster images,
// and recording fakes all satisfy the same contract.
type Surface interface {
	// AttachUnit creates the view for one time unit. label is an opaque
	// display string chosen by the host.
	AttachUnit(unit Unit, label string) UnitView

	// Detach releases the surface's own resources. Called exactly once,
	// after every unit view has been detached.
	Detach()
}

// UnitView displays one unit's two digit slots.
//
// The core drives views in three ways: SetDigit pins a slot to a resting
// digit (initial render and transition completion), ShowTransition
// paints one frame of an in-flight roll, and Detach releases the view.
// A cancelled transition is simply never painted again; views hold no
// timers and need no cancellation hook.
type UnitView interface {
	// SetDigit shows a resting digit in the given slot.
	SetDigit(slot Slot, d rune)

	// ShowTransition paints one frame of a roll from one digit to
	// another. progress runs 0..1 and is already eased.
	ShowTransition(slot Slot, from, to rune, dir Direction, progress float64)

	// Detach releases the view. The core calls it exactly once.
	Detach()
}
