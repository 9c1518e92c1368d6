package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAccessModifier(t *testing.T) {
	for _, word := range []string{"private", "protected", "public"} {
		assert.True(t, IsAccessModifier(word), word)
	}
	for _, word := range []string{"", "Public", "static", "void", "publicity"} {
		assert.False(t, IsAccessModifier(word), word)
	}
}
