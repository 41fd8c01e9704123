package engine

// LockdownRule selects the lock-down timing policy.
type LockdownRule uint8

const (
	// LockdownExtended restarts the countdown on every grounded manipulation,
	// capped at 15 manipulations since the last row decrease. The default.
	LockdownExtended LockdownRule = iota
	// LockdownInfinite restarts the countdown on every grounded manipulation
	// with no cap.
	LockdownInfinite
	// LockdownClassic restarts the countdown only when the piece's row
	// actually decreases.
	LockdownClassic
)

func (r LockdownRule) String() string {
	switch r {
	case LockdownInfinite:
		return "infinite"
	case LockdownClassic:
		return "classic"
	default:
		return "extended"
	}
}

// extendedManipulationCap is the extended-rule manipulation budget since the
// last row decrease; the 15th manipulation forces an immediate lock.
const extendedManipulationCap = 15

// lockPhase tracks whether the active piece is free-falling or grounded with
// the lock countdown running.
type lockPhase uint8

const (
	phaseFalling lockPhase = iota
	phaseLockPhase
)

// lockAction tells the controller what the state machine decided after a
// position or rotation update.
type lockAction uint8

const (
	lockNone        lockAction = iota
	lockArmTimer               // enter/refresh LockPhase: (re)start the countdown
	lockDisarmTimer            // piece came free: stop the countdown
	lockImmediate              // manipulations exhausted: lock now
)

// LockState is the lock-down state machine for one piece. It is reset on
// every spawn and driven by the controller on every position/rotation update.
type LockState struct {
	rule LockdownRule

	phase            lockPhase
	manipulations    int
	lowestRowReached int
	timerArmed       bool
}

// NewLockState returns a lock state for a freshly spawned piece.
func NewLockState(rule LockdownRule, lowestRow int) *LockState {
	return &LockState{
		rule:             rule,
		phase:            phaseFalling,
		lowestRowReached: lowestRow,
	}
}

// InLockPhase reports whether the grounded countdown window is open.
func (ls *LockState) InLockPhase() bool {
	return ls.phase == phaseLockPhase
}

// TimerArmed reports whether the countdown is currently running.
func (ls *LockState) TimerArmed() bool {
	return ls.timerArmed
}

// Update reflects a completed position or rotation change. lowestRow is the
// piece's current lowest absolute row, grounded whether its one-row-down pose
// is invalid, and manipulated whether the change was a player move/rotation
// (as opposed to gravity). The returned action tells the controller how to
// drive the countdown timer.
func (ls *LockState) Update(lowestRow int, grounded, manipulated bool) lockAction {
	if lowestRow < ls.lowestRowReached {
		// New lowest row: the manipulation budget and the countdown both
		// start over, even if the piece is grounded again already.
		ls.lowestRowReached = lowestRow
		ls.manipulations = 0
		ls.phase = phaseFalling
		ls.timerArmed = false
	}

	if !grounded {
		if ls.phase == phaseLockPhase {
			ls.phase = phaseFalling
			ls.timerArmed = false
			return lockDisarmTimer
		}
		return lockNone
	}

	// Grounded.
	wasInLockPhase := ls.phase == phaseLockPhase
	ls.phase = phaseLockPhase

	if manipulated {
		switch ls.rule {
		case LockdownClassic:
			// No manipulation accounting; an armed countdown keeps running.
			if !ls.timerArmed {
				ls.timerArmed = true
				return lockArmTimer
			}
			return lockNone
		case LockdownInfinite:
			ls.timerArmed = true
			return lockArmTimer
		default: // LockdownExtended
			ls.manipulations++
			if ls.manipulations >= extendedManipulationCap {
				ls.phase = phaseFalling
				ls.timerArmed = false
				return lockImmediate
			}
			ls.timerArmed = true
			return lockArmTimer
		}
	}

	// Gravity (or spawn) grounded the piece: arm the countdown unless it is
	// already running from an earlier grounding at this row.
	if !wasInLockPhase || !ls.timerArmed {
		ls.timerArmed = true
		return lockArmTimer
	}
	return lockNone
}

// ConfirmLock re-validates that a fired countdown may lock the piece: the
// machine must still be in LockPhase. The controller additionally re-checks
// groundedness against the live field, since a fall may have raced the timer.
func (ls *LockState) ConfirmLock() bool {
	if ls.phase != phaseLockPhase {
		return false
	}
	ls.phase = phaseFalling
	ls.timerArmed = false
	return true
}
