package signature

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/methodparser/keywords"
)

const argumentSeparator = ", "

// Parser turns signature strings into MethodSignature values. The zero Parser
// accepts the same loose dialect as the original tool, including its quirks:
//   - a header of only a method name uses that name as the return type
//   - a header of more than three words leaves the return type unset
//   - words after the second in an argument are ignored
//
// With Strict set, each of these is reported as an error instead
type Parser struct {
	Strict bool
}

// Parse parses a signature with the default, non-strict Parser
func Parse(signature string) (MethodSignature, error) {
	return Parser{}.Parse(signature)
}

// Parse parses a signature of the form
//
//	[modifier] returnType methodName(type1 name1, type2 name2)
//
// Anything after the closing parenthesis is ignored
func (p Parser) Parse(signature string) (MethodSignature, error) {
	parts := strings.FieldsFunc(signature, func(r rune) bool {
		return r == '(' || r == ')'
	})
	if len(parts) == 0 {
		return MethodSignature{}, fmt.Errorf("%w: %q", ErrEmptySignature, signature)
	}

	words := splitWords(parts[0])
	if len(words) == 0 {
		return MethodSignature{}, fmt.Errorf("%w: %q", ErrEmptySignature, signature)
	}
	for _, word := range words {
		if word == "" {
			return MethodSignature{}, fmt.Errorf("%w: %q", ErrBlankToken, parts[0])
		}
	}

	var result MethodSignature
	result.methodName = words[len(words)-1]

	if keywords.IsAccessModifier(words[0]) {
		result.accessModifier = AccessModifier(words[0])
	}

	returnType, err := p.returnType(words)
	if err != nil {
		return MethodSignature{}, fmt.Errorf("%w: %q", err, parts[0])
	}
	result.returnType = returnType

	if len(parts) > 1 {
		for _, entry := range strings.Split(parts[1], argumentSeparator) {
			arg, err := p.parseArgument(entry)
			if err != nil {
				return MethodSignature{}, err
			}
			result.arguments = append(result.arguments, arg)
		}
	}

	return result, nil
}

// returnType picks the return type out of the header words, based only on how
// many words there are
func (p Parser) returnType(words []string) (string, error) {
	switch len(words) {
	case 1:
		// Only the method name is present, so it doubles as the return type
		if p.Strict {
			return "", ErrUnsupportedHeaderShape
		}
		return words[0], nil
	case 2:
		if p.Strict && keywords.IsAccessModifier(words[0]) {
			return "", ErrUnsupportedHeaderShape
		}
		return words[0], nil
	case 3:
		return words[1], nil
	default:
		if p.Strict {
			return "", ErrUnsupportedHeaderShape
		}
		return "", nil
	}
}

func (p Parser) parseArgument(entry string) (Argument, error) {
	words := splitWords(entry)
	if len(words) < 2 || words[0] == "" || words[1] == "" {
		return Argument{}, fmt.Errorf("%w: %q", ErrMalformedArgument, entry)
	}
	if p.Strict && len(words) > 2 {
		return Argument{}, fmt.Errorf("%w: %q has more than a type and a name", ErrMalformedArgument, entry)
	}
	return Argument{Type: words[0], Name: words[1]}, nil
}

// splitWords splits on single spaces and drops any trailing empty words, so
// that `void run ` gives the same words as `void run`
func splitWords(source string) []string {
	words := strings.Split(source, " ")
	for len(words) > 0 && words[len(words)-1] == "" {
		words = words[:len(words)-1]
	}
	return words
}
