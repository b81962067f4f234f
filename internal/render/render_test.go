package render

import (
	"encoding/xml"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRRenderer_Render(t *testing.T) {
	r := NewQRRenderer()

	svg, err := r.Render("https://qr.example.com/r/promo1")
	require.NoError(t, err)

	doc := string(svg)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `<svg xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, doc, "<title>https://qr.example.com/r/promo1</title>")
	assert.Contains(t, doc, "h1v1h-1z")
	assert.True(t, strings.HasSuffix(doc, "</svg>"))

	// Документ должен быть корректным XML
	var parsed struct {
		XMLName xml.Name
		Title   string `xml:"title"`
	}
	require.NoError(t, xml.Unmarshal(svg, &parsed))
	assert.Equal(t, "svg", parsed.XMLName.Local)
	assert.Equal(t, "https://qr.example.com/r/promo1", parsed.Title)
}

func TestQRRenderer_Deterministic(t *testing.T) {
	r := NewQRRenderer()

	first, err := r.Render("https://qr.example.com/r/a")
	require.NoError(t, err)
	second, err := r.Render("https://qr.example.com/r/a")
	require.NoError(t, err)
	other, err := r.Render("https://qr.example.com/r/b")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestQRRenderer_EscapesPayload(t *testing.T) {
	svg, err := NewQRRenderer().Render("https://qr.example.com/r/a?x=1&y=<2>")
	require.NoError(t, err)

	assert.Contains(t, string(svg), "x=1&amp;y=&lt;2&gt;")
}

func TestQRRenderer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty payload", payload: ""},
		{name: "payload exceeds QR capacity", payload: strings.Repeat("a", 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQRRenderer().Render(tt.payload)
			assert.ErrorIs(t, err, ErrRenderFailure)
		})
	}
}

func TestQRRenderer_Concurrent(t *testing.T) {
	r := NewQRRenderer()
	want, err := r.Render("https://qr.example.com/r/shared")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Render("https://qr.example.com/r/shared")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
