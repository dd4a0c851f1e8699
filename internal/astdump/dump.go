// Package astdump converts Python source text into a deterministic,
// human-readable serialization of its syntax tree. The dump is what the
// analysis oracle reasons over, so identical input must always produce
// byte-identical output.
package astdump

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ParseError reports syntactically invalid Python source. It carries the
// position of the first error node; no partial dump accompanies it.
type ParseError struct {
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid python source at line %d, column %d", e.Line, e.Column)
}

// Dump parses source as Python and returns an indented serialization of
// the named-node tree: one node per line, two-space indentation, field
// labels where the grammar defines them, and leaf literals verbatim.
//
// Pure function over its input: a fresh parser is used per call, so Dump
// is safe for concurrent use.
func Dump(source string) (string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		return "", fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		bad := firstErrorNode(root)
		return "", &ParseError{
			Line:   int(bad.StartPoint().Row) + 1,
			Column: int(bad.StartPoint().Column),
		}
	}

	var b strings.Builder
	writeNode(&b, root, []byte(source), "", 0)
	return b.String(), nil
}

// writeNode serializes one node and recurses into its named children.
// Anonymous nodes (punctuation, keywords) are skipped; leaf nodes carry
// their source text quoted so literal values survive into the dump.
func writeNode(b *strings.Builder, n *sitter.Node, src []byte, field string, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	if field != "" {
		b.WriteString(field)
		b.WriteString(": ")
	}
	b.WriteString(n.Type())
	if n.NamedChildCount() == 0 {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(n.Content(src)))
	}
	b.WriteByte('\n')

	// FieldNameForChild indexes over all children, so iterate the full
	// child list and filter to named nodes.
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() {
			continue
		}
		writeNode(b, child, src, n.FieldNameForChild(i), depth+1)
	}
}

// firstErrorNode locates the shallowest-leftmost ERROR or MISSING node.
// Falls back to n itself; HasError on the root guarantees one exists.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstErrorNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return n
}
