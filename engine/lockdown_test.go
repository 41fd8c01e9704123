package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPhaseEntryAndExit(t *testing.T) {
	ls := NewLockState(LockdownExtended, 10)

	// Free fall: nothing to do.
	assert.Equal(t, lockNone, ls.Update(9, false, false))
	assert.False(t, ls.InLockPhase())

	// Gravity grounds the piece: countdown armed.
	assert.Equal(t, lockArmTimer, ls.Update(9, true, false))
	assert.True(t, ls.InLockPhase())
	assert.True(t, ls.TimerArmed())

	// A move slides it off a ledge: countdown disarmed.
	assert.Equal(t, lockDisarmTimer, ls.Update(9, false, true))
	assert.False(t, ls.InLockPhase())
}

func TestRowDecreaseResetsEverything(t *testing.T) {
	ls := NewLockState(LockdownExtended, 10)
	ls.Update(10, true, false)
	for i := 0; i < 5; i++ {
		require.Equal(t, lockArmTimer, ls.Update(10, true, true))
	}

	// Piece drops to a new lowest row while grounded again: manipulation
	// budget and countdown restart fresh.
	assert.Equal(t, lockArmTimer, ls.Update(9, true, false))
	assert.Equal(t, 0, ls.manipulations)
}

func TestExtendedRuleCapsAtFifteenManipulations(t *testing.T) {
	// Scenario: a grounded piece manipulated 15 times without a row decrease
	// locks immediately on the 15th, even with countdown time remaining.
	ls := NewLockState(LockdownExtended, 0)
	require.Equal(t, lockArmTimer, ls.Update(0, true, false))

	for i := 1; i < extendedManipulationCap; i++ {
		require.Equal(t, lockArmTimer, ls.Update(0, true, true), "manipulation %d", i)
	}
	assert.Equal(t, lockImmediate, ls.Update(0, true, true), "manipulation 15 forces the lock")
}

func TestInfiniteRuleHasNoCap(t *testing.T) {
	ls := NewLockState(LockdownInfinite, 0)
	ls.Update(0, true, false)
	for i := 0; i < 100; i++ {
		require.Equal(t, lockArmTimer, ls.Update(0, true, true), "manipulation %d", i)
	}
}

func TestClassicRuleIgnoresManipulations(t *testing.T) {
	ls := NewLockState(LockdownClassic, 0)
	require.Equal(t, lockArmTimer, ls.Update(0, true, false))

	// Grounded manipulations neither restart nor stop the countdown.
	for i := 0; i < 10; i++ {
		require.Equal(t, lockNone, ls.Update(0, true, true), "manipulation %d", i)
	}
	assert.True(t, ls.TimerArmed())
}

func TestConfirmLockRequiresLockPhase(t *testing.T) {
	ls := NewLockState(LockdownExtended, 5)
	assert.False(t, ls.ConfirmLock(), "falling piece cannot lock")

	ls.Update(5, true, false)
	assert.True(t, ls.ConfirmLock())
	assert.False(t, ls.ConfirmLock(), "lock fires once")
}
