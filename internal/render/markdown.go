package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Markdown renders entry bodies. The engine is stateless, so one instance is
// shared across the whole build.
type Markdown struct {
	engine goldmark.Markdown
}

// NewMarkdown builds the goldmark engine used for every entry body: GFM plus
// autolinks, raw HTML passed through (entry bodies are trusted author input),
// and images promoted into captioned figures.
func NewMarkdown() *Markdown {
	return &Markdown{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				renderer.WithNodeRenderers(
					util.Prioritized(&figureRenderer{}, 100),
				),
			),
		),
	}
}

// Render converts one entry body to HTML.
func (m *Markdown) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render: markdown convert: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// PlainText strips an entry body down to its text content for search
// documents. The body is parsed once and the AST walked directly instead of
// rendering HTML and scraping it back.
func (m *Markdown) PlainText(src string) string {
	source := []byte(src)
	doc := m.engine.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			b.WriteByte(' ')
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})

	// Collapse runs of whitespace the same way the walk inserted them.
	return strings.Join(strings.Fields(b.String()), " ")
}

// figureRenderer replaces the stock image output with a captioned figure so
// inline media is self-describing. Alt text becomes the caption. Images that
// authors already wrapped in a raw HTML <figure> arrive as HTML blocks, not
// image nodes, so they pass through untouched.
type figureRenderer struct{}

func (r *figureRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *figureRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	alt := strings.TrimSpace(string(n.Text(source)))

	_, _ = w.WriteString(`<figure class="entry-figure"><img src="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML([]byte(alt)))
	_, _ = w.WriteString(`"`)
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_, _ = w.WriteString(`"`)
	}
	_, _ = w.WriteString(`>`)
	if alt != "" {
		_, _ = w.WriteString(`<figcaption>`)
		_, _ = w.Write(util.EscapeHTML([]byte(alt)))
		_, _ = w.WriteString(`</figcaption>`)
	}
	_, _ = w.WriteString(`</figure>`)

	return ast.WalkSkipChildren, nil
}
