package ostree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indexed")
	defer teardown()
	//
	tree := buildTree(t, 1, 2, 3, 4)
	var b strings.Builder
	if err := tree.ToDot(&b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed DOT output:\n%s", dot)
	}
	if !strings.Contains(dot, `label="2\nw=1 n=4 Σ=4"`) {
		t.Errorf("expected root label in DOT output:\n%s", dot)
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges, have %d", n)
	}
	t.Logf("\n%s", dot)
}

func TestToDotEmpty(t *testing.T) {
	var b strings.Builder
	if err := NewOrdered[int]().ToDot(&b); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "->") {
		t.Errorf("empty tree must not have edges")
	}
}

func TestToDotNilTree(t *testing.T) {
	var tree *Tree[int]
	var b strings.Builder
	if err := tree.ToDot(&b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n" {
		t.Errorf("unexpected DOT output for nil tree:\n%s", b.String())
	}
}
