package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauges.log")

	log, closer, err := New(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("gauge", "wind").Debug("reading")
	require.NoError(t, closer.Close())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gauge=wind")
	assert.Contains(t, string(body), "msg=reading")
}

func TestNewWithoutFile(t *testing.T) {
	log, closer, err := New("", "info")
	require.NoError(t, err)
	log.Info("dropped")
	assert.NoError(t, closer.Close())
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)
}
