package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// unbindAction removes a default binding when used as the heading name
const unbindAction = "none"

// Bindings maps terminal keys to headings
type Bindings struct {
	Keys  map[tcell.Key]core.Heading
	Runes map[rune]core.Heading
}

// DefaultBindings returns arrows, vi keys and wasd
func DefaultBindings() *Bindings {
	return &Bindings{
		Keys: map[tcell.Key]core.Heading{
			tcell.KeyLeft:  core.HeadingLeft,
			tcell.KeyDown:  core.HeadingDown,
			tcell.KeyUp:    core.HeadingUp,
			tcell.KeyRight: core.HeadingRight,
		},
		Runes: map[rune]core.Heading{
			'h': core.HeadingLeft,
			'j': core.HeadingDown,
			'k': core.HeadingUp,
			'l': core.HeadingRight,
			'a': core.HeadingLeft,
			's': core.HeadingDown,
			'w': core.HeadingUp,
			'd': core.HeadingRight,
		},
	}
}

// Lookup returns the heading bound to a key event
// Rune matching ignores case
func (b *Bindings) Lookup(ev *tcell.EventKey) (core.Heading, bool) {
	if ev.Key() == tcell.KeyRune {
		h, ok := b.Runes[unicode.ToLower(ev.Rune())]
		return h, ok
	}
	h, ok := b.Keys[ev.Key()]
	return h, ok
}

// Apply overlays "key = heading" pairs from the [keys] config section
// A key is either a single character, a rune alias, or a tcell key name such as "Left" or "F5"
// The heading "none" removes the binding
func (b *Bindings) Apply(overrides map[string]string) error {
	for keyStr, headingStr := range overrides {
		unbind := strings.EqualFold(strings.TrimSpace(headingStr), unbindAction)

		var heading core.Heading
		if !unbind {
			h, err := core.ParseHeading(headingStr)
			if err != nil {
				return fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			heading = h
		}

		if r, ok := resolveRune(keyStr); ok {
			r = unicode.ToLower(r)
			if unbind {
				delete(b.Runes, r)
			} else {
				b.Runes[r] = heading
			}
			continue
		}

		k, ok := keyByName(keyStr)
		if !ok {
			return fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		if unbind {
			delete(b.Keys, k)
		} else {
			b.Keys[k] = heading
		}
	}
	return nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
