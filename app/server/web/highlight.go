package web

import (
	"bytes"
	"encoding/json"
	"html"
	"html/template"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	log "github.com/go-pkgz/lgr"
)

// Highlighter renders stored JSON documents as highlighted HTML.
type Highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
	css       func() template.CSS
}

// NewHighlighter creates a new Highlighter instance.
func NewHighlighter() *Highlighter {
	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}
	h := &Highlighter{
		// css classes instead of inline styles, the stylesheet comes from CSS()
		formatter: chromahtml.New(chromahtml.WithClasses(true), chromahtml.WithLineNumbers(false)),
		style:     style,
	}
	h.css = sync.OnceValue(func() template.CSS {
		var buf bytes.Buffer
		if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
			log.Printf("[WARN] failed to generate highlight css: %v", err)
			return ""
		}
		return template.CSS(buf.String()) //nolint:gosec // generated by chroma
	})
	return h
}

// CSS returns the stylesheet for highlighted blocks.
func (h *Highlighter) CSS() template.CSS {
	return h.css()
}

// JSON pretty-prints and highlights a JSON document.
// Invalid JSON and highlighting failures give the escaped text as is.
func (h *Highlighter) JSON(doc string) template.HTML {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(doc), "", "  "); err == nil {
		doc = pretty.String()
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return plain(doc)
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, doc)
	if err != nil {
		return plain(doc)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return plain(doc)
	}
	return template.HTML(buf.String()) //nolint:gosec // chroma output is escaped
}

func plain(text string) template.HTML {
	return template.HTML("<pre>" + html.EscapeString(text) + "</pre>") //nolint:gosec // escaped
}
