package pastebin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidHighlighting(t *testing.T) {
	for _, name := range []string{"python", "go", "javascript", "4cs", "zxbasic", "mk-61", "cpp-qt"} {
		assert.True(t, ValidHighlighting(name), "tag %q", name)
	}

	for _, name := range []string{"", "golang", "Python", "js", "plaintext"} {
		assert.False(t, ValidHighlighting(name), "tag %q", name)
	}
}

func TestHighlightingOptions(t *testing.T) {
	opts := HighlightingOptions()

	assert.Len(t, opts, len(highlightingNames))
	assert.Equal(t, "4cs", opts[0])
	assert.Equal(t, "zxbasic", opts[len(opts)-1])

	// The slice is a copy; mutating it must not affect validation.
	opts[0] = "mutated"
	assert.True(t, ValidHighlighting("4cs"))
	assert.Equal(t, "4cs", HighlightingOptions()[0])
}
