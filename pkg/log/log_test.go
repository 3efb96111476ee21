package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "error")

	l.Infof("hidden %d", 1)
	l.Debugf("hidden %d", 2)
	assert.Empty(t, buf.String())

	l.Errorf("bad opcode 0x%02X", 0xD3)
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "msg=bad opcode 0xD3")
}

func TestLogger_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "verbose")

	l.Debugf("hidden")
	l.Infof("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Infof("%d", 1)
	l.Errorf("%d", 2)
	l.Debugf("%d", 3)
	l.Fatal("nothing happens")
}
