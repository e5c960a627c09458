package rendering

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDates(t *testing.T) {
	in := []byte("<< /Producer (Skia/PDF m120) /CreationDate (D:20241105093000+00'00') /ModDate (D:20241105093001+00'00') >>")
	out := normalizeDates(in)

	require.Len(t, out, len(in))
	assert.Contains(t, string(out), "/CreationDate (D:20000101000000+00'00')")
	assert.Contains(t, string(out), "/ModDate (D:20000101000000+00'00')")
	assert.Contains(t, string(out), "/Producer (Skia/PDF m120)")
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine("", true, "", 0)
	require.NoError(t, err)
	assert.Equal(t, EngineNative, e.Name())

	e, err = NewEngine(EngineBrowser, false, "/usr/bin/chromium", 5*time.Second)
	require.NoError(t, err)
	be, ok := e.(*BrowserEngine)
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/chromium", be.ChromePath)
	assert.Equal(t, 5*time.Second, be.Timeout)

	_, err = NewEngine("latex", false, "", 0)
	assert.Error(t, err)
}

func TestBrowserEngine_Render(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser render in short mode")
	}
	var chrome string
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome"} {
		if p, err := exec.LookPath(name); err == nil {
			chrome = p
			break
		}
	}
	if chrome == "" {
		t.Skip("no Chrome or Chromium binary on PATH")
	}

	doc, err := Compose(sampleCV(), TemplateProfessionalBlue, FormatA4)
	require.NoError(t, err)

	out, err := NewBrowserEngine(chrome).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
