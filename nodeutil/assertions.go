package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// AssertTypeIs returns an error if the node is not of the expected type
func AssertTypeIs(node *sitter.Node, expectedType string) error {
	if node == nil {
		return fmt.Errorf("assertion failed: expected node of type %s, got: nil", expectedType)
	}
	if node.Type() != expectedType {
		return fmt.Errorf("assertion failed: Type of node differs from expected: %s, got: %s", expectedType, node.Type())
	}
	return nil
}
