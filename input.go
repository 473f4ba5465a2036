package dvdsaver

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/dvdsaver/bounce"
)

// KeySource reports the keys released since the previous tick, as lower-case
// runes. Keys with no single-character name are not reported.
type KeySource interface {
	AppendReleased(keys []rune) []rune
}

// ebitenKeys reads key releases from ebiten's input state.
type ebitenKeys struct {
	buf []ebiten.Key
}

func (k *ebitenKeys) AppendReleased(keys []rune) []rune {
	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	for _, key := range k.buf {
		if r, ok := keyRune(key); ok {
			keys = append(keys, r)
		}
	}
	return keys
}

// keyRune maps a key whose name is a single character (letters, for
// instance) to that character in lower case.
func keyRune(k ebiten.Key) (rune, bool) {
	name := k.String()
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return 0, false
	}
	return unicode.ToLower(r), true
}

// processInput drains real and injected key releases and returns the
// strongest command among them. Unrecognized keys are ignored.
func (s *Scene) processInput() bounce.Command {
	s.keyBuf = s.keyBuf[:0]
	if s.keys != nil {
		s.keyBuf = s.keys.AppendReleased(s.keyBuf)
	}
	s.keyBuf = append(s.keyBuf, s.injectQueue...)
	s.injectQueue = s.injectQueue[:0]

	cmd := bounce.CommandNone
	for _, r := range s.keyBuf {
		if c := bounce.CommandFor(r); c > cmd {
			cmd = c
		}
	}
	return cmd
}

// SetKeySource replaces the keyboard reader. Passing nil disables real
// keyboard input; injected keys are still processed.
func (s *Scene) SetKeySource(src KeySource) {
	s.keys = src
}
