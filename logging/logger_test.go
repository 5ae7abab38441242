package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/crytic/abibin/logging/colors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddAndRemoveWriter will test to Logger.AddWriter and Logger.RemoveWriter functions to ensure that they work as expected.
func TestAddAndRemoveWriter(t *testing.T) {
	// Create a base logger
	logger := NewLogger(zerolog.InfoLevel)

	// Add three types of writers
	// 1. Unstructured and colorized output to stdout
	logger.AddWriter(os.Stdout, UNSTRUCTURED, true)
	// 2. Unstructured and non-colorized output to stderr
	logger.AddWriter(os.Stderr, UNSTRUCTURED, false)
	// 3. Structured output to stdin
	logger.AddWriter(os.Stdin, STRUCTURED, false)

	// We should expect the underlying data structures are correctly updated
	assert.Equal(t, 1, len(logger.unstructuredWriters))
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))
	assert.Equal(t, 1, len(logger.structuredWriters))

	// Try to add duplicate writers
	logger.AddWriter(os.Stdout, UNSTRUCTURED, true)
	logger.AddWriter(os.Stderr, UNSTRUCTURED, false)
	logger.AddWriter(os.Stdin, STRUCTURED, false)

	// Ensure that the lengths of the lists have not changed
	assert.Equal(t, 1, len(logger.unstructuredWriters))
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))
	assert.Equal(t, 1, len(logger.structuredWriters))

	// Remove each writer
	logger.RemoveWriter(os.Stdout, UNSTRUCTURED, true)
	logger.RemoveWriter(os.Stderr, UNSTRUCTURED, false)
	logger.RemoveWriter(os.Stdin, STRUCTURED, false)

	// We should expect the underlying data structures are correctly updated
	assert.Equal(t, 0, len(logger.unstructuredWriters))
	assert.Equal(t, 0, len(logger.unstructuredColorWriters))
	assert.Equal(t, 0, len(logger.structuredWriters))
}

// TestDisabledColors verifies the behavior of the unstructured colored logger when colors are disabled,
// ensuring that it does not output colors when the color feature is turned off.
func TestDisabledColors(t *testing.T) {
	// Create a base logger
	logger := NewLogger(zerolog.InfoLevel)

	// Add colorized logger
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, true)

	// Disable colors and log msg
	colors.DisableColor()
	defer colors.EnableColor()
	logger.Info("foo")

	// Ensure that msg doesn't include colors afterwards
	prefix := fmt.Sprintf("%s %s", colors.LEFT_ARROW, "foo")
	_, _, ok := strings.Cut(buf.String(), prefix)
	assert.True(t, ok)
}

// TestStructuredSubLogger ensures structured output is JSON carrying the sub-logger context, the error and the
// structured log info.
func TestStructuredSubLogger(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, STRUCTURED, false)

	subLogger := logger.NewSubLogger("module", COMPILATION_SERVICE)
	subLogger.Warn("contract ", "Exchange", " has warnings", errors.New("boom"), StructuredLogInfo{"warnings": 2})

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, COMPILATION_SERVICE, event["module"])
	assert.Equal(t, "contract Exchange has warnings", event["message"])
	assert.Equal(t, "boom", event["error"])
	assert.NotNil(t, event["info"])
}

// TestLevelFiltering ensures events below the configured level are dropped, and SetLevel takes effect.
func TestLevelFiltering(t *testing.T) {
	logger := NewLogger(zerolog.WarnLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, false)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(zerolog.InfoLevel)
	assert.Equal(t, zerolog.InfoLevel, logger.Level())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
