package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/minoterm/minoterm/engine"
)

// KeyTable maps terminal keys to game opcodes. Special keys (arrows, control
// combinations) and printable runes live in separate maps because tcell
// reports them through different event fields.
type KeyTable struct {
	SpecialKeys map[tcell.Key]engine.Opcode
	Runes       map[rune]engine.Opcode
}

// DefaultKeyTable returns the default bindings.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Opcode{
			tcell.KeyLeft:   engine.OpMoveLeft,
			tcell.KeyRight:  engine.OpMoveRight,
			tcell.KeyDown:   engine.OpSoftDrop,
			tcell.KeyUp:     engine.OpRotateCW,
			tcell.KeyCtrlL:  engine.OpRefresh,
			tcell.KeyCtrlC:  engine.OpQuit,
			tcell.KeyEscape: engine.OpQuit,
		},

		Runes: map[rune]engine.Opcode{
			'h': engine.OpMoveLeft,
			'l': engine.OpMoveRight,
			'j': engine.OpSoftDrop,
			'k': engine.OpRotateCW,
			'x': engine.OpRotateCW,
			'z': engine.OpRotateCCW,
			' ': engine.OpHardDrop,
			'c': engine.OpHold,
			'p': engine.OpPause,
			'b': engine.OpToggleBeep,
			'v': engine.OpToggleColor,
			'?': engine.OpToggleHelp,
			'q': engine.OpQuit,
		},
	}
}

// Lookup translates a key event into an opcode; OpNone when unbound.
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.Opcode {
	if ev.Key() == tcell.KeyRune {
		if op, ok := kt.Runes[ev.Rune()]; ok {
			return op
		}
		return engine.OpNone
	}
	if op, ok := kt.SpecialKeys[ev.Key()]; ok {
		return op
	}
	return engine.OpNone
}
