package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/minoterm/minoterm/playfield"
	"github.com/minoterm/minoterm/tetromino"
)

// Outcome distinguishes the ways a session ends.
type Outcome uint8

const (
	OutcomeQuit Outcome = iota
	OutcomeGameOver
)

func (o Outcome) String() string {
	if o == OutcomeGameOver {
		return "game over"
	}
	return "quit"
}

// Listener receives notifications from the controller. All calls happen on
// the controller goroutine, so implementations may read the Game freely
// during a call but must not retain it across calls.
type Listener interface {
	// ViewChanged fires after every applied opcode that may have changed
	// visible state.
	ViewChanged(g *Game)
	// LinesCleared fires at lock finalize when lines were removed, before the
	// next piece spawns. Input capture is released for its duration so a
	// flash animation cannot race player keystrokes.
	LinesCleared(g *Game, count int, action Action, perfect bool)
	// PieceLocked fires for every finalized lock, clearing or not.
	PieceLocked(g *Game)
	// LevelChanged fires when the variable goal promotes the level.
	LevelChanged(g *Game, level int)
	// GameOver fires once on lock-out or block-out.
	GameOver(g *Game)
	// RefreshRequested fires on the refresh-screen opcode.
	RefreshRequested(g *Game)
}

// NopListener is a Listener that ignores everything; used by tests.
type NopListener struct{}

func (NopListener) ViewChanged(*Game)                     {}
func (NopListener) LinesCleared(*Game, int, Action, bool) {}
func (NopListener) PieceLocked(*Game)                     {}
func (NopListener) LevelChanged(*Game, int)               {}
func (NopListener) GameOver(*Game)                        {}
func (NopListener) RefreshRequested(*Game)                {}

// InputGate quiesces the input producer while transitional animations run.
type InputGate interface {
	Capture()
	Release()
}

// Options is the immutable ruleset configuration fixed at startup.
type Options struct {
	StartLevel     int
	Seed           uint32
	LockdownRule   LockdownRule
	RotationSystem RotationSystem
	Beep           bool
	Color          bool
	Help           bool
}

// Game is the single authoritative owner of all mutable game state. It
// consumes the merged opcode stream one command at a time; producers never
// touch state directly.
type Game struct {
	opts Options

	field *playfield.Field
	rand  *Randomizer
	score *ScoreState
	lock  *LockState
	clock *PausableClock

	active   *Piece
	hold     tetromino.Type // Empty when nothing held
	holdUsed bool

	cmds      chan Opcode
	fall      *FallTicker
	lockTimer *LockTimer
	gate      InputGate
	listener  Listener
	log       *zap.SugaredLogger

	paused   bool
	over     bool
	quitting bool

	beep     bool
	color    bool
	showHelp bool
}

// NewGame assembles a session: playfield, randomizer, scoring, lock-down
// machine and the two timing sources. The merged stream is buffered so
// producers never block on a busy controller.
func NewGame(opts Options, listener Listener, log *zap.SugaredLogger) *Game {
	cmds := make(chan Opcode, 64)
	g := &Game{
		opts:      opts,
		field:     playfield.New(),
		rand:      NewRandomizer(opts.Seed),
		score:     NewScoreState(opts.StartLevel),
		clock:     NewPausableClock(),
		cmds:      cmds,
		fall:      NewFallTicker(cmds, log),
		lockTimer: NewLockTimer(cmds, LockDelay, log),
		listener:  listener,
		log:       log,
		beep:      opts.Beep,
		color:     opts.Color,
		showHelp:  opts.Help,
	}
	g.spawn(g.rand.Next())
	return g
}

// SetInputGate wires the input producer's capture gate. Optional.
func (g *Game) SetInputGate(gate InputGate) { g.gate = gate }

// Commands returns the merged stream for external producers (input reader).
func (g *Game) Commands() chan<- Opcode { return g.cmds }

// Run starts the timing sources and processes opcodes until quit or game
// over. It owns producer shutdown: both timers are stopped and waited for
// before Run returns.
func (g *Game) Run() Outcome {
	g.fall.Start(g.score.Level)
	g.lockTimer.Start()
	defer func() {
		g.fall.Stop()
		g.lockTimer.Stop()
	}()

	g.listener.ViewChanged(g)
	// Game over does not end the loop; the final screen stays up until the
	// player quits.
	for !g.quitting {
		g.Apply(<-g.cmds)
	}
	if g.over {
		return OutcomeGameOver
	}
	return OutcomeQuit
}

// Apply executes exactly one opcode to completion. It is exported for tests;
// during play only the Run loop calls it.
func (g *Game) Apply(op Opcode) {
	if g.over {
		if op == OpQuit {
			g.quitting = true
		}
		return
	}
	if g.paused && op != OpPause && op != OpQuit {
		// Input is frozen during pause; timer races are benign.
		g.log.Debugw("opcode ignored while paused", "op", op.String())
		return
	}

	switch op {
	case OpMoveLeft:
		g.move(-1)
	case OpMoveRight:
		g.move(1)
	case OpRotateCW:
		g.rotate(tetromino.Clockwise)
	case OpRotateCCW:
		g.rotate(tetromino.CounterClockwise)
	case OpSoftDrop:
		g.softDrop()
	case OpHardDrop:
		g.hardDrop()
	case OpHold:
		g.holdPiece()
	case OpFall:
		g.fallStep()
	case OpLockdown:
		g.lockdown()
	case OpPause:
		g.togglePause()
	case OpQuit:
		g.quitting = true
	case OpToggleBeep:
		g.beep = !g.beep
	case OpToggleColor:
		g.color = !g.color
	case OpToggleHelp:
		g.showHelp = !g.showHelp
	case OpRefresh:
		g.listener.RefreshRequested(g)
	default:
		g.log.Debugw("unknown opcode", "op", uint8(op))
	}

	if !g.quitting {
		g.listener.ViewChanged(g)
	}
}

// move shifts the active piece horizontally; rejection leaves state unchanged.
func (g *Game) move(dx int) {
	if !g.field.IsPlacementValid(g.active.Cells(), g.active.X+dx, g.active.Y) {
		return
	}
	g.active.X += dx
	g.active.Spin = SpinNone
	g.updateLock(true)
}

func (g *Game) rotate(dir tetromino.RotationDir) {
	if !ResolveRotation(g.field, g.active, dir, g.opts.RotationSystem) {
		return
	}
	g.updateLock(true)
}

// fallStep is the gravity step emitted by the fall ticker.
func (g *Game) fallStep() {
	if g.field.IsPlacementValid(g.active.Cells(), g.active.X, g.active.Y-1) {
		g.active.Y--
		g.active.Spin = SpinNone
	}
	g.updateLock(false)
}

// softDrop is a player-initiated gravity step worth one point per cell.
func (g *Game) softDrop() {
	if g.field.IsPlacementValid(g.active.Cells(), g.active.X, g.active.Y-1) {
		g.active.Y--
		g.active.Spin = SpinNone
		g.score.AwardDrop(1, false)
	}
	g.updateLock(false)
}

// hardDrop sends the piece to its ghost position and locks immediately.
func (g *Game) hardDrop() {
	ghostY := g.active.GhostY(g.field)
	dropped := g.active.Y - ghostY
	if dropped > 0 {
		g.active.Y = ghostY
		g.active.Spin = SpinNone
	}
	g.score.AwardDrop(dropped, true)
	g.finalize()
}

// holdPiece swaps the active piece with the hold slot, once per lock.
func (g *Game) holdPiece() {
	if g.holdUsed {
		return
	}
	g.holdUsed = true
	held := g.hold
	g.hold = g.active.Type
	g.lockTimer.Cancel()
	if held == tetromino.Empty {
		g.spawn(g.rand.Next())
		return
	}
	g.spawn(held)
}

// lockdown executes a fired countdown. Groundedness is re-validated against
// the live field: a fall that raced the timer makes this a no-op.
func (g *Game) lockdown() {
	if !g.lock.InLockPhase() || !g.active.IsGrounded(g.field) {
		g.log.Debugw("stale lockdown ignored")
		return
	}
	if !g.lock.ConfirmLock() {
		return
	}
	g.finalize()
}

func (g *Game) togglePause() {
	if g.paused {
		g.paused = false
		g.clock.Resume()
		g.fall.Resume()
		g.lockTimer.Resume()
		return
	}
	g.paused = true
	g.clock.Pause()
	g.fall.Pause()
	g.lockTimer.Pause()
}

// updateLock feeds the lock-down machine after a position/rotation change and
// drives the countdown timer from its decision.
func (g *Game) updateLock(manipulated bool) {
	grounded := g.active.IsGrounded(g.field)
	switch g.lock.Update(g.active.LowestRow(), grounded, manipulated) {
	case lockArmTimer:
		g.lockTimer.Restart()
	case lockDisarmTimer:
		g.lockTimer.Cancel()
	case lockImmediate:
		g.finalize()
	}
}

// finalize is the single point where a piece becomes permanent: flatten,
// clear lines, score, check lock-out, spawn the next piece.
func (g *Game) finalize() {
	g.lockTimer.Cancel()

	p := g.active
	lockedOut := p.AboveSkyline()

	g.field.Flatten(p.Cells(), p.X, p.Y, p.Type)
	yMin, yMax := p.RowSpan()
	cleared, perfect := g.field.ProcessCompletedLines(yMin, yMax)

	leveledUp := g.score.ApplyLock(cleared, p.Spin, perfect)

	g.listener.PieceLocked(g)
	if cleared > 0 {
		// Quiesce raw input while the clear animation plays.
		if g.gate != nil {
			g.gate.Release()
		}
		g.listener.LinesCleared(g, cleared, g.score.LastAction, perfect)
		if g.gate != nil {
			g.gate.Capture()
		}
	}
	if leveledUp {
		g.fall.SetLevel(g.score.Level)
		g.listener.LevelChanged(g, g.score.Level)
	}

	if lockedOut {
		g.gameOver()
		return
	}

	g.holdUsed = false
	g.spawn(g.rand.Next())
}

// spawn places a new active piece and resets the lock-down machine. A spawn
// into occupied cells is a block-out and ends the game.
func (g *Game) spawn(t tetromino.Type) {
	g.active = NewPiece(t)
	g.lock = NewLockState(g.opts.LockdownRule, g.active.LowestRow())
	if !g.field.IsPlacementValid(g.active.Cells(), g.active.X, g.active.Y) {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	g.over = true
	g.listener.GameOver(g)
}

// ===== READ ACCESSORS (controller goroutine only) =====

// Field returns the playfield for rendering.
func (g *Game) Field() *playfield.Field { return g.field }

// Active returns the falling piece.
func (g *Game) Active() *Piece { return g.active }

// GhostRow returns the hard-drop row of the active piece.
func (g *Game) GhostRow() int { return g.active.GhostY(g.field) }

// Hold returns the held type, Empty when nothing is held.
func (g *Game) Hold() tetromino.Type { return g.hold }

// Preview returns the next-queue contents, head first.
func (g *Game) Preview() []tetromino.Type { return g.rand.Preview() }

// Score returns the session scorekeeping.
func (g *Game) Score() *ScoreState { return g.score }

// Elapsed returns pause-aware session time.
func (g *Game) Elapsed() time.Duration { return g.clock.Elapsed() }

// IsPaused reports whether the session is paused.
func (g *Game) IsPaused() bool { return g.paused }

// IsOver reports whether the session hit a terminal game condition.
func (g *Game) IsOver() bool { return g.over }

// BeepEnabled reports the sound toggle.
func (g *Game) BeepEnabled() bool { return g.beep }

// ColorEnabled reports the color toggle.
func (g *Game) ColorEnabled() bool { return g.color }

// HelpVisible reports the help overlay toggle.
func (g *Game) HelpVisible() bool { return g.showHelp }
