package model

// TrappingMode is the trap-tag's override of whether trapping happens at
// all for the tagged object.
type TrappingMode int

const (
	ModeAuto TrappingMode = iota
	ModeAlways
	ModeNever
)

// TrappingDirection is the trap-tag's override of decided direction.
type TrappingDirection int

const (
	DirectionAuto TrappingDirection = iota
	DirectionSpread
	DirectionChoke
	DirectionCenterline
)

// TrapTag is an object-scoped override attached by the caller before a run.
// The core never mutates a TrapTag once attached, per spec.md §3.
type TrapTag struct {
	TargetObjectID string
	Mode           TrappingMode
	Direction      TrappingDirection
	CustomWidthMM  *float64

	// Reverse-mode (white-knockout) mirror fields.
	ReverseMode      TrappingMode
	ReverseDirection TrappingDirection

	PriorityOverride *float64
	PullbackOverride *float64

	Provenance string
}
