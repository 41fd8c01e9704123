package engine

import "fmt"

// Action classifies what a finalized lock achieved. Drop bonuses are not
// actions; they are flat per-cell awards applied at drop time.
type Action uint8

const (
	ActionNone Action = iota
	ActionSingle
	ActionDouble
	ActionTriple
	ActionTetris
	ActionMiniTSpin
	ActionMiniTSpinSingle
	ActionTSpin
	ActionTSpinSingle
	ActionTSpinDouble
	ActionTSpinTriple
)

var actionNames = map[Action]string{
	ActionNone:            "",
	ActionSingle:          "SINGLE",
	ActionDouble:          "DOUBLE",
	ActionTriple:          "TRIPLE",
	ActionTetris:          "TETRIS",
	ActionMiniTSpin:       "MINI T-SPIN",
	ActionMiniTSpinSingle: "MINI T-SPIN SINGLE",
	ActionTSpin:           "T-SPIN",
	ActionTSpinSingle:     "T-SPIN SINGLE",
	ActionTSpinDouble:     "T-SPIN DOUBLE",
	ActionTSpinTriple:     "T-SPIN TRIPLE",
}

func (a Action) String() string { return actionNames[a] }

// actionFactors are the guideline score factors. The award is factor×level
// and the variable-goal line credit is factor/100.
var actionFactors = map[Action]int{
	ActionNone:            0,
	ActionSingle:          100,
	ActionDouble:          300,
	ActionTriple:          500,
	ActionTetris:          800,
	ActionMiniTSpin:       100,
	ActionMiniTSpinSingle: 200,
	ActionTSpin:           400,
	ActionTSpinSingle:     800,
	ActionTSpinDouble:     1200,
	ActionTSpinTriple:     1600,
}

// Per-cell drop factors, flat (not level-scaled).
const (
	softDropFactor = 1
	hardDropFactor = 2
)

// Perfect-clear bonus factors by clear size, level-scaled.
var perfectClearFactors = [5]int{0, 800, 1200, 1800, 2000}

// classifyAction maps completed lines plus the pending spin classification to
// an action. An unmapped combination is a programming error.
func classifyAction(lines int, spin Spin) Action {
	type key struct {
		lines int
		spin  Spin
	}
	table := map[key]Action{
		{0, SpinNone}: ActionNone,
		{1, SpinNone}: ActionSingle,
		{2, SpinNone}: ActionDouble,
		{3, SpinNone}: ActionTriple,
		{4, SpinNone}: ActionTetris,
		{0, SpinMini}: ActionMiniTSpin,
		{1, SpinMini}: ActionMiniTSpinSingle,
		{0, SpinFull}: ActionTSpin,
		{1, SpinFull}: ActionTSpinSingle,
		{2, SpinFull}: ActionTSpinDouble,
		{3, SpinFull}: ActionTSpinTriple,
	}
	action, ok := table[key{lines, spin}]
	if !ok {
		panic(fmt.Sprintf("scoring: no action for %d lines with spin %q", lines, spin))
	}
	return action
}

// backToBackQualifier reports whether the action sustains (or starts) a
// back-to-back streak.
func backToBackQualifier(a Action) bool {
	switch a {
	case ActionTetris, ActionMiniTSpinSingle, ActionTSpinSingle, ActionTSpinDouble, ActionTSpinTriple:
		return true
	default:
		return false
	}
}

// backToBackBreaker reports whether the action ends a streak. Non-clearing
// locks and spins without lines leave the flag untouched.
func backToBackBreaker(a Action) bool {
	switch a {
	case ActionSingle, ActionDouble, ActionTriple:
		return true
	default:
		return false
	}
}

// ScoreState is the session scorekeeping, mutated exactly once per lock.
type ScoreState struct {
	Score        int
	Level        int
	Goal         int
	Lines        int
	Combo        int // -1 when no clearing streak is active
	BackToBack   bool
	LastAction   Action
	LastBonusB2B bool
	LastPerfect  bool
}

// NewScoreState starts scoring at the given level with the variable-goal
// target already set.
func NewScoreState(startLevel int) *ScoreState {
	return &ScoreState{
		Level: startLevel,
		Goal:  startLevel * 5,
		Combo: -1,
	}
}

// AwardDrop credits a soft or hard drop immediately, one award per dropped
// cell, independent of lock scoring.
func (s *ScoreState) AwardDrop(cells int, hard bool) {
	if hard {
		s.Score += cells * hardDropFactor
		return
	}
	s.Score += cells * softDropFactor
}

// ApplyLock performs the atomic lock-finalize bookkeeping: action
// classification, score and line credit, combo, back-to-back and perfect
// clear. It returns true when the level changed so the fall ticker can adjust
// its period.
func (s *ScoreState) ApplyLock(lines int, spin Spin, perfect bool) (leveledUp bool) {
	action := classifyAction(lines, spin)
	factor := actionFactors[action]

	// Back-to-back bonus applies only when the flag was set before this
	// action.
	bonusB2B := s.BackToBack && backToBackQualifier(action) && lines > 0
	award := factor * s.Level
	if bonusB2B {
		award += award / 2
	}

	if lines > 0 {
		s.Combo++
		if s.Combo > 0 {
			award += 50 * s.Combo * s.Level
		}
	} else {
		s.Combo = -1
	}

	if perfect && lines >= 1 && lines <= 4 {
		award += perfectClearFactors[lines] * s.Level
	}

	s.Score += award
	s.Lines += factor / 100
	s.LastAction = action
	s.LastBonusB2B = bonusB2B
	s.LastPerfect = perfect

	if backToBackQualifier(action) {
		s.BackToBack = true
	} else if backToBackBreaker(action) {
		s.BackToBack = false
	}

	for s.Lines >= s.Goal {
		s.Level++
		s.Goal += s.Level * 5
		leveledUp = true
	}
	return leveledUp
}
