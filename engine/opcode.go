package engine

// Opcode is one command on the merged stream. Timing sources and the input
// reader only ever produce opcodes; the controller is the only consumer and
// the only mutator of game state.
type Opcode uint8

const (
	OpNone Opcode = iota

	// Player movement and rotation
	OpMoveLeft
	OpMoveRight
	OpRotateCW
	OpRotateCCW
	OpSoftDrop
	OpHardDrop
	OpHold

	// Timing sources
	OpFall     // fall ticker: gravity step
	OpLockdown // lock timer: countdown elapsed

	// Session control
	OpPause
	OpQuit

	// UI toggles
	OpToggleBeep
	OpToggleColor
	OpToggleHelp
	OpRefresh
)

var opcodeNames = map[Opcode]string{
	OpNone:        "none",
	OpMoveLeft:    "move-left",
	OpMoveRight:   "move-right",
	OpRotateCW:    "rotate-cw",
	OpRotateCCW:   "rotate-ccw",
	OpSoftDrop:    "soft-drop",
	OpHardDrop:    "hard-drop",
	OpHold:        "hold",
	OpFall:        "fall",
	OpLockdown:    "lockdown",
	OpPause:       "pause",
	OpQuit:        "quit",
	OpToggleBeep:  "toggle-beep",
	OpToggleColor: "toggle-color",
	OpToggleHelp:  "toggle-help",
	OpRefresh:     "refresh-screen",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "invalid"
}
