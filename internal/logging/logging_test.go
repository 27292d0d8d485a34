package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	out, flags, pfx := log.Writer(), log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
		log.SetPrefix(pfx)
	})
}

func TestSetup_DebugWritesFile(t *testing.T) {
	restoreLogger(t)
	p := filepath.Join(t.TempDir(), "debug.log")

	c, err := Setup(true, p)
	require.NoError(t, err)
	log.Printf("[fetch] hello")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[fetch] hello")
	assert.Contains(t, string(b), prefix)
}

func TestSetup_Silent(t *testing.T) {
	restoreLogger(t)
	p := filepath.Join(t.TempDir(), "debug.log")

	c, err := Setup(false, p)
	require.NoError(t, err)
	log.Printf("dropped")
	require.NoError(t, c.Close())

	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_BadPath(t *testing.T) {
	restoreLogger(t)
	_, err := Setup(true, filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
