package thai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphWidthDefaultWideAndZero(t *testing.T) {
	assert.Equal(t, defaultGlyphWidth, GlyphWidth('ก'))
	assert.Equal(t, wideGlyphWidth, GlyphWidth('ว'))
	assert.Equal(t, zeroWidth, GlyphWidth(0x0E48)) // tone mark
	assert.Equal(t, zeroWidth, GlyphWidth(0x0E34)) // combining vowel
}

func TestRequiresComplexLayout(t *testing.T) {
	assert.True(t, RequiresComplexLayout("กิ่ง")) // contains tone/combining marks
	assert.False(t, RequiresComplexLayout("Hello"))
}

func TestTextWidthIgnoresNewlines(t *testing.T) {
	assert.Equal(t, defaultGlyphWidth*3, TextWidth("abc"))
	assert.Equal(t, defaultGlyphWidth*3, TextWidth("ab\nc"))
}

func TestWrapLinesBreaksOnExplicitNewline(t *testing.T) {
	lines := WrapLines("ab\ncd", 1000)
	assert.Equal(t, []string{"ab", "cd"}, lines)
}

func TestWrapLinesBreaksOnWidthOverflow(t *testing.T) {
	lines := WrapLines("abcdef", defaultGlyphWidth*2)
	assert.Equal(t, []string{"ab", "cd", "ef"}, lines)
}

func TestWrapLinesEmptyTextReturnsOneEmptyLine(t *testing.T) {
	lines := WrapLines("", 100)
	assert.Equal(t, []string{""}, lines)
}
