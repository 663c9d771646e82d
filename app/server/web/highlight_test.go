package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlighter_JSON(t *testing.T) {
	h := NewHighlighter()

	t.Run("valid json is indented and highlighted", func(t *testing.T) {
		res := string(h.JSON(`{"browser":"firefox","tags":["a"]}`))
		assert.Contains(t, res, "<pre")
		assert.Contains(t, res, "class=")
		assert.Contains(t, res, "firefox")
		assert.Contains(t, res, "\n", "indented output spans lines")
	})

	t.Run("markup is escaped", func(t *testing.T) {
		res := string(h.JSON(`{"name":"<script>alert(1)</script>"}`))
		assert.NotContains(t, res, "<script>")
	})

	t.Run("invalid json still rendered", func(t *testing.T) {
		res := string(h.JSON(`not json <b>`))
		assert.NotContains(t, res, "<b>")
		assert.Contains(t, res, "not json")
	})
}

func TestHighlighter_CSS(t *testing.T) {
	h := NewHighlighter()
	css := string(h.CSS())
	assert.NotEmpty(t, css)
	assert.True(t, strings.Contains(css, ".chroma"), css)
	assert.Equal(t, css, string(h.CSS()))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "<pre>a &lt; b</pre>", string(plain("a < b")))
}
