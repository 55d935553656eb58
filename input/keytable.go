package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable bindings, matched case-insensitively
	Runes map[rune]IntentType

	// Ctrl+rune bindings for terminals that report Ctrl as a modifier
	CtrlRunes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentThrottle,
			tcell.KeyDown:   IntentThrottleCut,
			tcell.KeyLeft:   IntentSteerLeft,
			tcell.KeyRight:  IntentSteerRight,
		},

		Runes: map[rune]IntentType{
			// Arrow cluster
			'w': IntentThrottle,
			's': IntentThrottleCut,
			'a': IntentSteerLeft,
			'd': IntentSteerRight,

			// vi home row
			'k': IntentThrottle,
			'j': IntentThrottleCut,
			'h': IntentSteerLeft,
			'l': IntentSteerRight,

			' ': IntentThrottle,

			'q': IntentQuit,
			'r': IntentRestart,
			'm': IntentToggleMute,
		},

		CtrlRunes: map[rune]IntentType{
			'c': IntentQuit,
		},
	}
}

// Lookup resolves a key event to its intent
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return t.CtrlRunes[r]
		}
		return t.Runes[r]
	}
	return t.SpecialKeys[ev.Key()]
}
