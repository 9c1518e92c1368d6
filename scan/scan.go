// Package scan finds the method declarations in Java source files and parses
// each of their headers as a method signature
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/NickyBoy89/methodparser/keywords"
	"github.com/NickyBoy89/methodparser/nodeutil"
	"github.com/NickyBoy89/methodparser/signature"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

var errVarargs = errors.New("varargs parameters are not supported")

// Method is a single method declaration found in a source file
type Method struct {
	// Header is the declaration rewritten in the `[modifier] type name(args)` form
	Header string `json:"header" yaml:"header"`
	// Line is the 1-based line that the declaration starts on
	Line      uint32                    `json:"line" yaml:"line"`
	Signature signature.MethodSignature `json:"signature" yaml:"signature"`
}

// Scanner parses the headers that it finds with its Parser
type Scanner struct {
	Parser signature.Parser
}

// File reads and scans a single Java file
func (s Scanner) File(ctx context.Context, fileName string) ([]Method, error) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return s.Source(ctx, source)
}

// Source returns every method declared in the given Java source, in the order
// that they appear. Declarations that can't be expressed as a signature are
// logged and skipped
func (s Scanner) Source(ctx context.Context, source []byte) ([]Method, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing java source: %w", err)
	}

	var methods []Method
	s.walk(tree.RootNode(), source, &methods)
	return methods, nil
}

func (s Scanner) walk(node *sitter.Node, source []byte, methods *[]Method) {
	switch node.Type() {
	case "ERROR":
		log.WithFields(log.Fields{
			"parsed": node.Content(source),
			"line":   node.StartPoint().Row + 1,
		}).Warn("Source parse error")
	case "method_declaration":
		if method, ok := s.parseMethod(node, source); ok {
			*methods = append(*methods, method)
		}
	}

	// Method bodies are walked too, since they can hold local and anonymous classes
	for _, child := range nodeutil.NamedChildren(node) {
		s.walk(child, source, methods)
	}
}

func (s Scanner) parseMethod(node *sitter.Node, source []byte) (Method, bool) {
	line := node.StartPoint().Row + 1

	header, err := Header(node, source)
	if err != nil {
		log.WithFields(log.Fields{
			"line":  line,
			"error": err,
		}).Warn("Skipping method declaration")
		return Method{}, false
	}

	sig, err := s.Parser.Parse(header)
	if err != nil {
		log.WithFields(log.Fields{
			"header": header,
			"line":   line,
			"error":  err,
		}).Warn("Skipping unparseable method header")
		return Method{}, false
	}

	return Method{Header: header, Line: line, Signature: sig}, true
}

// Header rewrites a `method_declaration` node into the signature form that
// `signature.Parse` accepts. Only the access modifier is kept out of the
// modifiers, and types are written without whitespace or annotations so that
// `Map<String, @NonNull Integer>` stays the single word `Map<String,Integer>`.
// C-style array dimensions such as `int a[]` are moved onto the type
func Header(node *sitter.Node, source []byte) (string, error) {
	if err := nodeutil.AssertTypeIs(node, "method_declaration"); err != nil {
		return "", err
	}

	var words []string

	for _, child := range nodeutil.NamedChildren(node) {
		if child.Type() != "modifiers" {
			continue
		}
		for _, modifier := range nodeutil.UnnamedChildren(child) {
			if keywords.IsAccessModifier(modifier.Type()) {
				words = append(words, modifier.Type())
				break
			}
		}
	}

	returnType := node.ChildByFieldName("type")
	name := node.ChildByFieldName("name")
	if returnType == nil || name == nil {
		return "", fmt.Errorf("method declaration is missing its type or name: %s", node.Content(source))
	}
	words = append(words, typeText(returnType, node.ChildByFieldName("dimensions"), source), name.Content(source))

	var params []string
	if parameters := node.ChildByFieldName("parameters"); parameters != nil {
		for _, param := range nodeutil.NamedChildren(parameters) {
			switch param.Type() {
			case "formal_parameter":
				paramType := param.ChildByFieldName("type")
				paramName := param.ChildByFieldName("name")
				if paramType == nil || paramName == nil {
					return "", fmt.Errorf("parameter is missing its type or name: %s", param.Content(source))
				}
				params = append(params, typeText(paramType, param.ChildByFieldName("dimensions"), source)+" "+paramName.Content(source))
			case "spread_parameter":
				return "", fmt.Errorf("%w: %s", errVarargs, name.Content(source))
			}
			// Receiver parameters and comments have no place in a signature
		}
	}

	return strings.Join(words, " ") + "(" + strings.Join(params, ", ") + ")", nil
}

// typeText writes out a type and any dimensions that follow the declared name.
// Only the leaf tokens are written, which drops whitespace, and annotations are
// skipped entirely since their arguments would add parentheses to the header
func typeText(typeNode, dimensions *sitter.Node, source []byte) string {
	var b strings.Builder

	var write func(node *sitter.Node)
	write = func(node *sitter.Node) {
		switch node.Type() {
		case "annotation", "marker_annotation":
			return
		}
		if node.ChildCount() == 0 {
			b.WriteString(node.Content(source))
			return
		}
		for _, child := range nodeutil.UnnamedChildren(node) {
			write(child)
		}
	}

	write(typeNode)
	if dimensions != nil {
		write(dimensions)
	}
	return b.String()
}
