package wordfreq

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/indexed"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoContent is returned for a nil input.
var ErrNoContent = errors.New("wordfreq: no content")

// InnerText returns the textual content of an HTML node and all its
// descendents, similar to innerText in JavaScript. Content of script and
// style elements is skipped. Text of adjacent nodes is separated by a blank,
// so that words do not run into each other across element boundaries.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrNoContent
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	if n.Type == html.TextNode {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// FromHTML creates a word-frequency set from the textual content of an HTML
// fragment. It does no interpretation of layout and styling.
func FromHTML(input io.Reader, opts Options) (*indexed.WeightedSet[string], error) {
	if input == nil {
		return nil, ErrNoContent
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("wordfreq: cannot parse HTML: %v", err)
		return nil, err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return FromText(strings.NewReader(b.String()), opts), nil
}
