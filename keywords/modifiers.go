package keywords

import "golang.org/x/exp/slices"

// List from https://www.w3schools.com/java/java_modifiers.asp
var AccessModifiers = []string{"private", "protected", "public"}

// IsAccessModifier tests if a word is exactly one of the Java access modifiers
func IsAccessModifier(word string) bool {
	return slices.Contains(AccessModifiers, word)
}
