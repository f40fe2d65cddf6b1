package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_LogBindings(t *testing.T) {
	c, err := Parse(defaultConfig)
	require.NoError(t, err)

	logMap := c.GetBindings("log")
	require.NotEmpty(t, logMap.Bindings)

	expected := map[string]string{
		"up":     "log.up",
		"down":   "log.down",
		"pgup":   "log.pageup",
		"pgdown": "log.pagedown",
		"home":   "log.oldest",
		"end":    "log.newest",
		"tab":    "log.tab",
	}
	for key, id := range expected {
		binding, ok := logMap.Get(key)
		require.True(t, ok, "no binding for %q", key)
		assert.Equal(t, id, binding.Do.Id)
	}
}

func TestGetBindings_UnknownScopeIsEmpty(t *testing.T) {
	c, err := Parse(defaultConfig)
	require.NoError(t, err)

	am := c.GetBindings("nope")
	assert.Empty(t, am.Bindings)
}

func TestConfig_MergeOverridesScope(t *testing.T) {
	base, err := Parse(defaultConfig)
	require.NoError(t, err)

	user, err := Parse([]byte(`
[colors]
"log border" = { fg = "magenta" }

[bindings]
log = [
  { on = "k", do = "log.up" },
]
`))
	require.NoError(t, err)

	base.merge(user)

	assert.Equal(t, "magenta", base.Colors["log border"].Fg)
	assert.Equal(t, "bright yellow", base.Colors["title text"].Fg)

	logMap := base.GetBindings("log")
	_, ok := logMap.Get("k")
	assert.True(t, ok)
	_, ok = logMap.Get("up")
	assert.False(t, ok, "user scope replaces default scope wholesale")

	_, ok = base.GetBindings("ui").Get("tab")
	assert.True(t, ok)
}

func TestJoinKeys(t *testing.T) {
	assert.Equal(t, "↑/↓", JoinKeys([]string{"up", "down"}))
	assert.Equal(t, "space", JoinKeys([]string{" "}))
	assert.Equal(t, "q/ctrl+c", JoinKeys([]string{"q", "ctrl+c"}))
}
