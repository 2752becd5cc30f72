package main

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/balloon-pop/internal/config"
)

func TestOverlayFS_DiskFileWins(t *testing.T) {
	o := overlayFS{
		disk:     fstest.MapFS{"data/config.yaml": {Data: []byte("disk")}},
		embedded: fstest.MapFS{"data/config.yaml": {Data: []byte("embedded")}},
	}
	data, err := fs.ReadFile(o, "data/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "disk", string(data))
}

func TestOverlayFS_UnrelatedDataDirFallsBack(t *testing.T) {
	o := overlayFS{
		disk:     fstest.MapFS{"data/notes.txt": {Data: []byte("hello")}},
		embedded: embeddedFiles,
	}
	cfg, err := config.Load(o, "data/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = fs.Stat(o, cfg.Audio.Sound)
	assert.NoError(t, err)
}

func TestOverlayFS_MissingEverywhere(t *testing.T) {
	o := overlayFS{disk: fstest.MapFS{}, embedded: fstest.MapFS{}}
	_, err := o.Open("data/pop.wav")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
