package markup

import (
	"bytes"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TransformFunc rewrites one run of prose.
type TransformFunc func(string) (string, error)

type segment struct {
	start, stop int
}

// Transform parses source as markdown and replaces every text run outside
// code, raw HTML and autolinks with fn's result. Everything else is copied
// byte for byte.
func Transform(source []byte, fn TransformFunc) ([]byte, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var segments []segment
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.CodeSpan, *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock, *ast.RawHTML, *ast.AutoLink:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if node.Segment.Len() > 0 {
				segments = append(segments, segment{start: node.Segment.Start, stop: node.Segment.Stop})
			}
		}
		return ast.WalkContinue, nil
	})

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].start < segments[j].start
	})

	var out bytes.Buffer
	out.Grow(len(source))
	last := 0
	for _, seg := range segments {
		if seg.start < last {
			continue
		}
		out.Write(source[last:seg.start])
		replaced, err := fn(string(source[seg.start:seg.stop]))
		if err != nil {
			return nil, err
		}
		out.WriteString(replaced)
		last = seg.stop
	}
	out.Write(source[last:])
	return out.Bytes(), nil
}
