package chart

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSource hands out series and slice colors.
type ColorSource interface {
	// Next returns the next color as a CSS rgba() string.
	Next() string
}

// colorAlpha is the fill opacity of generated colors.
const colorAlpha = 0.6

// DefaultPalette is used by PaletteColors when no palette is given.
var DefaultPalette = []string{
	"#36a2eb", "#ff6384", "#4bc0c0", "#ff9f40",
	"#9966ff", "#ffcd56", "#c9cbcf", "#2e7d32",
}

type randomColors struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// RandomColors returns a source of independently random colors.
func RandomColors() ColorSource {
	return SeededColors(time.Now().UnixNano())
}

// SeededColors returns a deterministic color source; equal seeds yield equal sequences.
func SeededColors(seed int64) ColorSource {
	return &randomColors{rng: rand.New(rand.NewSource(seed))}
}

func (c *randomColors) Next() string {
	c.mu.Lock()
	h := c.rng.Float64() * 360
	s := 0.45 + c.rng.Float64()*0.4
	v := 0.55 + c.rng.Float64()*0.4
	c.mu.Unlock()

	return rgba(colorful.Hsv(h, s, v))
}

type paletteColors struct {
	mu      sync.Mutex
	palette []colorful.Color
	next    int
}

// PaletteColors returns a source cycling through hex colors such as "#36a2eb".
// Invalid entries are skipped; an empty palette falls back to DefaultPalette.
func PaletteColors(palette ...string) ColorSource {
	var cs []colorful.Color
	for _, hex := range palette {
		if c, err := colorful.Hex(hex); err == nil {
			cs = append(cs, c)
		}
	}
	if len(cs) == 0 {
		for _, hex := range DefaultPalette {
			c, _ := colorful.Hex(hex)
			cs = append(cs, c)
		}
	}
	return &paletteColors{palette: cs}
}

func (p *paletteColors) Next() string {
	p.mu.Lock()
	c := p.palette[p.next%len(p.palette)]
	p.next++
	p.mu.Unlock()

	return rgba(c)
}

func rgba(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %.1f)", r, g, b, colorAlpha)
}
