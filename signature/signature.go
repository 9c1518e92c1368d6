// Package signature parses Java-like method signatures such as
// `private void log(String value)` into their modifier, return type, name and
// arguments.
package signature

import (
	"encoding/json"
	"strings"

	"golang.org/x/exp/slices"
)

// AccessModifier is the visibility keyword found at the start of a signature
type AccessModifier string

const (
	NoModifier AccessModifier = ""
	Private    AccessModifier = "private"
	Protected  AccessModifier = "protected"
	Public     AccessModifier = "public"
)

// Argument is a single `type name` entry of an argument list
type Argument struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

func (a Argument) String() string {
	return a.Type + " " + a.Name
}

// MethodSignature is the parsed form of a signature. It is built once by New or
// Parse and cannot be changed afterwards
type MethodSignature struct {
	accessModifier AccessModifier
	returnType     string
	methodName     string
	arguments      []Argument
}

// New builds a MethodSignature from all of its parts. An empty returnType
// means the return type could not be determined
func New(modifier AccessModifier, returnType, methodName string, arguments []Argument) MethodSignature {
	result := MethodSignature{
		accessModifier: modifier,
		returnType:     returnType,
		methodName:     methodName,
	}
	if len(arguments) > 0 {
		result.arguments = slices.Clone(arguments)
	}
	return result
}

func (s MethodSignature) AccessModifier() AccessModifier { return s.accessModifier }

// ReturnType returns the return type, or an empty string if it is unset
func (s MethodSignature) ReturnType() string { return s.returnType }

func (s MethodSignature) HasReturnType() bool { return s.returnType != "" }

func (s MethodSignature) MethodName() string { return s.methodName }

// Arguments returns a copy of the arguments in declaration order
func (s MethodSignature) Arguments() []Argument {
	return slices.Clone(s.arguments)
}

// Equal reports whether both signatures have the same parts
func (s MethodSignature) Equal(other MethodSignature) bool {
	return s.accessModifier == other.accessModifier &&
		s.returnType == other.returnType &&
		s.methodName == other.methodName &&
		slices.Equal(s.arguments, other.arguments)
}

// String renders the signature back in the form that Parse accepts
func (s MethodSignature) String() string {
	var b strings.Builder
	if s.accessModifier != NoModifier {
		b.WriteString(string(s.accessModifier))
		b.WriteByte(' ')
	}
	if s.returnType != "" {
		b.WriteString(s.returnType)
		b.WriteByte(' ')
	}
	b.WriteString(s.methodName)
	b.WriteByte('(')
	for i, arg := range s.arguments {
		if i > 0 {
			b.WriteString(argumentSeparator)
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

type encodedSignature struct {
	AccessModifier AccessModifier `json:"accessModifier,omitempty" yaml:"accessModifier,omitempty"`
	ReturnType     string         `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	MethodName     string         `json:"methodName" yaml:"methodName"`
	Arguments      []Argument     `json:"arguments" yaml:"arguments"`
}

func (s MethodSignature) encoded() encodedSignature {
	args := s.arguments
	if args == nil {
		args = []Argument{}
	}
	return encodedSignature{
		AccessModifier: s.accessModifier,
		ReturnType:     s.returnType,
		MethodName:     s.methodName,
		Arguments:      args,
	}
}

func (s MethodSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.encoded())
}

func (s MethodSignature) MarshalYAML() (interface{}, error) {
	return s.encoded(), nil
}
