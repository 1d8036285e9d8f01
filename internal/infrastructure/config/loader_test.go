package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 320, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 900.0, cfg.Physics.Gravity)
	assert.Equal(t, 0.1, cfg.Jump.CoyoteTime)
	assert.Equal(t, 10, cfg.Collision.Slack)
	assert.Equal(t, []BandConfig{{Low: 34, High: 37}}, cfg.Tiles.Hazard)
	assert.Equal(t, []string{"levels/level01.txt", "levels/level02.txt"}, cfg.Levels)
	assert.Equal(t, "../../../cmd/game/configs", loader.BasePath())
}

func TestLoader_LevelsExist(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	for _, path := range cfg.Levels {
		f, err := loader.FS().Open(path)
		require.NoError(t, err, path)
		_ = f.Close()
	}
}

func TestLoader_LoadGameFS(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, cfg *GameConfig)
	}{
		{
			name: "partial file keeps defaults",
			data: "jump:\n  force: 250\n",
			check: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, 250.0, cfg.Jump.Force)
				assert.Equal(t, Default().Jump.CoyoteTime, cfg.Jump.CoyoteTime)
				assert.Equal(t, Default().Levels, cfg.Levels)
			},
		},
		{
			name: "band override",
			data: "tiles:\n  cloud:\n    - {low: 40, high: 44}\n",
			check: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, []BandConfig{{Low: 40, High: 44}}, cfg.Tiles.Cloud)
				assert.Equal(t, Default().Tiles.Solid, cfg.Tiles.Solid)
			},
		},
		{
			name:    "parse error",
			data:    "display: [",
			wantErr: true,
		},
		{
			name:    "negative slack",
			data:    "collision:\n  slack: -1\n",
			wantErr: true,
		},
		{
			name:    "empty band",
			data:    "tiles:\n  hazard:\n    - {low: 37, high: 34}\n",
			wantErr: true,
		},
		{
			name:    "no levels",
			data:    "levels: []\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{GameFile: {Data: []byte(tt.data)}}

			cfg, err := NewFSLoader(fsys, "test").LoadGame()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "test").LoadGame()
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
