package nodeutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source []byte) *sitter.Node {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	require.NoError(t, err)
	return tree.RootNode()
}

func TestChildren(t *testing.T) {
	root := parseSource(t, []byte("public class Test {}"))

	class := root.NamedChild(0)
	require.NoError(t, AssertTypeIs(class, "class_declaration"))

	named := NamedChildren(class)
	require.NotEmpty(t, named)
	assert.Equal(t, "modifiers", named[0].Type())

	// The `class` keyword is only visible as an unnamed child
	var types []string
	for _, child := range UnnamedChildren(class) {
		types = append(types, child.Type())
	}
	assert.Contains(t, types, "class")
	assert.Greater(t, len(types), len(named))
}

func TestAssertTypeIs(t *testing.T) {
	root := parseSource(t, []byte("class Test {}"))

	assert.NoError(t, AssertTypeIs(root, "program"))
	assert.Error(t, AssertTypeIs(root, "class_declaration"))
	assert.Error(t, AssertTypeIs(nil, "program"))
}
