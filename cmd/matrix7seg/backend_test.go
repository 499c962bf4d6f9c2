package main

import (
	"testing"

	"github.com/flavioheleno/matrix7seg"
	"github.com/flavioheleno/matrix7seg/glyph"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunLogsFrames(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	dev, err := newDryRun(logger)
	require.NoError(t, err)

	var frames []*log.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "Frame" {
			frames = append(frames, e)
		}
	}
	require.Len(t, frames, 5)
	assert.Equal(t, matrix7seg.Shutdown, frames[0].Data["register"])
	assert.Equal(t, "0x00", frames[0].Data["data"])
	assert.Equal(t, matrix7seg.ScanLimit, frames[2].Data["register"])
	assert.Equal(t, "0x07", frames[2].Data["data"])
	assert.Equal(t, "0x01", frames[4].Data["data"])

	hook.Reset()
	require.NoError(t, dev.Clear())
	assert.Len(t, hook.AllEntries(), matrix7seg.NumDigits)
	assert.Equal(t, matrix7seg.Digit7, hook.LastEntry().Data["register"])
}

func TestDryRunRejectsOddFrames(t *testing.T) {
	logger, _ := test.NewNullLogger()
	assert.Error(t, dryRunBus{log: logger}.Write([]byte{1, 2, 3}))
}

func TestRender(t *testing.T) {
	logger, _ := test.NewNullLogger()
	dev, err := newDryRun(logger)
	require.NoError(t, err)

	require.NoError(t, dev.WriteNumber(-42, matrix7seg.Layout{ZeroPad: true}))
	assert.Equal(t, "-0000042", render(dev.Buffer(), glyph.Normal))

	require.NoError(t, dev.WriteNumber(42, matrix7seg.Layout{Rotated: true}))
	assert.Equal(t, "24      ", render(dev.Buffer(), glyph.Rotated))

	require.NoError(t, dev.WriteRaw(1, 0xff))
	assert.Equal(t, "24     ?", render(dev.Buffer(), glyph.Rotated))
}

func TestOpenDeviceDryRun(t *testing.T) {
	conf, err := parseConfig(nil)
	require.NoError(t, err)

	dev, closeDev, err := openDevice(conf)
	require.NoError(t, err)
	defer closeDev()
	assert.Equal(t, "matrix7seg.Dev{8 digits}", dev.String())
}
