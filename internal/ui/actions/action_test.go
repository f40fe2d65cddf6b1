package actions

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_UnmarshalTOML_WithSimpleSyntax(t *testing.T) {
	var action Action
	err := action.UnmarshalTOML("log.up")

	require.NoError(t, err)
	assert.Equal(t, "log.up", action.Id)
	assert.Empty(t, action.Desc)
}

func TestActionBinding_UnmarshalTOML_SingleKey(t *testing.T) {
	data := `
binding = { on = "tab", do = "log.tab" }
`
	var out struct {
		Binding ActionBinding `toml:"binding"`
	}
	err := toml.Unmarshal([]byte(data), &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"tab"}, out.Binding.On)
	assert.Equal(t, "log.tab", out.Binding.Do.Id)
}

func TestActionBinding_UnmarshalTOML_MultipleKeysAndDesc(t *testing.T) {
	data := `
binding = { on = ["q", "ctrl+c"], do = { id = "quit", desc = "quit" } }
`
	var out struct {
		Binding ActionBinding `toml:"binding"`
	}
	err := toml.Unmarshal([]byte(data), &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"q", "ctrl+c"}, out.Binding.On)
	assert.Equal(t, "quit", out.Binding.Do.Id)
	assert.Equal(t, "quit", out.Binding.Do.Desc)
}

func TestActionMap_Get(t *testing.T) {
	data := `
log = [
  { on = "up", do = "log.up" },
  { on = ["pgup", "ctrl+b"], do = "log.pageup" },
]
`
	var out struct {
		Log ActionMap `toml:"log"`
	}
	err := toml.Unmarshal([]byte(data), &out)
	require.NoError(t, err)
	require.Len(t, out.Log.Bindings, 2)

	binding, ok := out.Log.Get("ctrl+b")
	require.True(t, ok)
	assert.Equal(t, "log.pageup", binding.Do.Id)

	_, ok = out.Log.Get("ctrl+x")
	assert.False(t, ok)
}
