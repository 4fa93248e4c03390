package chart

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var rgbaPattern = regexp.MustCompile(`^rgba\(\d{1,3}, \d{1,3}, \d{1,3}, 0\.6\)$`)

func TestSeededColorsAreDeterministic(t *testing.T) {
	a, b := SeededColors(42), SeededColors(42)
	for i := 0; i < 5; i++ {
		ca, cb := a.Next(), b.Next()
		assert.Equal(t, ca, cb)
		assert.Regexp(t, rgbaPattern, ca)
	}
}

func TestRandomColorsFormat(t *testing.T) {
	c := RandomColors()
	assert.Regexp(t, rgbaPattern, c.Next())
}

func TestPaletteColorsCycle(t *testing.T) {
	p := PaletteColors("#ff0000", "bogus", "#0000ff")
	assert.Equal(t, "rgba(255, 0, 0, 0.6)", p.Next())
	assert.Equal(t, "rgba(0, 0, 255, 0.6)", p.Next())
	assert.Equal(t, "rgba(255, 0, 0, 0.6)", p.Next())
}

func TestPaletteColorsDefault(t *testing.T) {
	p := PaletteColors()
	assert.Equal(t, "rgba(54, 162, 235, 0.6)", p.Next())
}
