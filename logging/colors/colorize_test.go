package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	previous := enabled
	defer func() { enabled = previous }()

	EnableColor()
	assert.Equal(t, "\x1b[31mfailed\x1b[0m", Colorize("failed", RED))
	assert.Equal(t, "\x1b[1m\x1b[33m7\x1b[0m\x1b[0m", YellowBold(7))
	assert.Equal(t, "plain", Reset("plain"))

	DisableColor()
	assert.Equal(t, "failed", Colorize("failed", RED))
	assert.Equal(t, "7", YellowBold(7))
	assert.Equal(t, "x", Bold("x"))
}
