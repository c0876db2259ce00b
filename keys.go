package sandbox

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// Key is a keyboard key symbol as reported by the backend. Values match
// ebiten.Key; keys without a named constant here are still delivered.
type Key int

const (
	KeyEscape     = Key(ebiten.KeyEscape)
	KeyEnter      = Key(ebiten.KeyEnter)
	KeySpace      = Key(ebiten.KeySpace)
	KeyTab        = Key(ebiten.KeyTab)
	KeyBackspace  = Key(ebiten.KeyBackspace)
	KeyArrowLeft  = Key(ebiten.KeyArrowLeft)
	KeyArrowRight = Key(ebiten.KeyArrowRight)
	KeyArrowUp    = Key(ebiten.KeyArrowUp)
	KeyArrowDown  = Key(ebiten.KeyArrowDown)
	KeyA          = Key(ebiten.KeyA)
	KeyD          = Key(ebiten.KeyD)
	KeyR          = Key(ebiten.KeyR)
	KeyS          = Key(ebiten.KeyS)
	KeyW          = Key(ebiten.KeyW)
)

var keyNames = map[Key]string{
	KeyEscape:     "Escape",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyA:          "A",
	KeyD:          "D",
	KeyR:          "R",
	KeyS:          "S",
	KeyW:          "W",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return ebiten.Key(k).String()
}

// ParseKey resolves a key by its name ("Escape", "ArrowLeft", ...) or by its
// numeric code.
func ParseKey(s string) (Key, bool) {
	if k, ok := keysByName[s]; ok {
		return k, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return Key(n), true
}
