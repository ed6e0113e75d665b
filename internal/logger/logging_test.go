package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	l := New("ipc")
	assert.Equal(t, "ipc", l.GetPrefix())
	assert.Equal(t, log.GetLevel(), l.GetLevel())
}

func TestNewAt(t *testing.T) {
	l := NewAt("loader", log.DebugLevel)
	assert.Equal(t, "loader", l.GetPrefix())
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}
