// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture installs a JSON handler over a pipe and returns what was logged
// inside fn. The previous root logger is restored afterwards.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	prev := root.Load()
	SetHandler(NewJSONHandler(w))
	fn()
	root.Store(prev)

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestHandlerSwapAppliesToExistingLoggers(t *testing.T) {
	// the logger exists before the handler is installed, like every
	// package-level logger created during program init
	lg := WithContext("pkg", "logtest")

	out := capture(t, func() {
		lg.Info("hello", "key", "value")
	})
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"pkg":"logtest"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestWithAccumulatesAttributes(t *testing.T) {
	lg := WithContext("pkg", "logtest").With("sub", "inner")

	out := capture(t, func() {
		lg.Info("hello")
	})
	assert.Contains(t, out, `"pkg":"logtest"`)
	assert.Contains(t, out, `"sub":"inner"`)
}

func TestSetLevel(t *testing.T) {
	lg := WithContext("pkg", "logtest")
	defer SetLevel(LevelInfo)

	out := capture(t, func() {
		SetLevel(LevelWarn)
		lg.Info("dropped")
		lg.Warn("kept")
	})
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestFromLegacyLevel(t *testing.T) {
	assert.Equal(t, LevelError, FromLegacyLevel(0))
	assert.Equal(t, LevelWarn, FromLegacyLevel(1))
	assert.Equal(t, LevelInfo, FromLegacyLevel(2))
	assert.Equal(t, LevelDebug, FromLegacyLevel(3))
	assert.Equal(t, LevelTrace, FromLegacyLevel(4))
}
