package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 9, c.Game.NumPhrases)
	assert.Equal(t, 6, c.Game.SideSize)
	assert.Equal(t, 1, c.Game.Rounds)
	assert.False(t, c.Game.ExclusiveBound)
	assert.Equal(t, StyleTable, c.Render.Style)
	assert.Equal(t, "warn", c.Log.Level)
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		c, err := Load(New(), t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `
game:
  num_phrases: 4
  side_size: 4
phrases:
  path: /tmp/idioms.yaml
render:
  style: plain
  pinyin: true
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

		c, err := Load(New(), dir)
		require.NoError(t, err)
		assert.Equal(t, 4, c.Game.NumPhrases)
		assert.Equal(t, 4, c.Game.SideSize)
		assert.Equal(t, 1, c.Game.Rounds, "unset keys keep defaults")
		assert.Equal(t, "/tmp/idioms.yaml", c.Phrases.Path)
		assert.Equal(t, StylePlain, c.Render.Style)
		assert.True(t, c.Render.Pinyin)
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		t.Setenv("FOURZI_GAME_SIDE_SIZE", "3")
		t.Setenv("FOURZI_RENDER_REVEAL", "true")

		c, err := Load(New(), t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 3, c.Game.SideSize)
		assert.True(t, c.Render.Reveal)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("game:\n  side_size: 0\n"), 0644))

		_, err := Load(New(), dir)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("game: [\n"), 0644))

		_, err := Load(New(), dir)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative phrases", func(c *Config) { c.Game.NumPhrases = -1 }},
		{"zero side", func(c *Config) { c.Game.SideSize = 0 }},
		{"zero rounds", func(c *Config) { c.Game.Rounds = 0 }},
		{"unknown style", func(c *Config) { c.Render.Style = "fancy" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	c := Default()
	c.Game.NumPhrases = 0
	assert.NoError(t, c.Validate(), "zero phrases is allowed")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := Default()
	c.Game.SideSize = 5
	c.Render.Style = StyleBig

	require.NoError(t, Save(filepath.Join(dir, FileName), c))

	loaded, err := Load(New(), dir)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
