package engine

import "time"

// LockDelay is the lock-down countdown started when a piece grounds.
const LockDelay = 500 * time.Millisecond

// gravityTable is the guideline fall period per level,
// (0.8-(level-1)*0.007)^(level-1) seconds, precomputed for levels 1..15.
var gravityTable = [16]time.Duration{
	0, // levels are 1-based
	1000 * time.Millisecond,
	793 * time.Millisecond,
	618 * time.Millisecond,
	473 * time.Millisecond,
	355 * time.Millisecond,
	262 * time.Millisecond,
	190 * time.Millisecond,
	135 * time.Millisecond,
	94 * time.Millisecond,
	64 * time.Millisecond,
	43 * time.Millisecond,
	28 * time.Millisecond,
	18 * time.Millisecond,
	11 * time.Millisecond,
	7 * time.Millisecond,
}

// GravityPeriod returns the fall period for a level, clamped to the table.
func GravityPeriod(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level >= len(gravityTable) {
		level = len(gravityTable) - 1
	}
	return gravityTable[level]
}
