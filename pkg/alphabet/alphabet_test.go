package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already uppercase", "CHAT", "CHAT"},
		{"lowercase", "chat", "CHAT"},
		{"surrounding whitespace", "  chats \n", "CHATS"},
		{"french accents stripped", "éléphant", "ELEPHANT"},
		{"cedilla stripped", "garçon", "GARCON"},
		{"mixed accents and case", "Noël", "NOEL"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestWordPoints(t *testing.T) {
	fr, err := Get("fr")
	require.NoError(t, err)
	en, err := Get("en")
	require.NoError(t, err)

	// C=3 H=4 A=1 T=1 in both languages
	assert.Equal(t, 9, fr.WordPoints("CHAT"))
	assert.Equal(t, 9, en.WordPoints("CHAT"))

	// K differs: 10 in French, 5 in English
	assert.Equal(t, 10, fr.WordPoints("K"))
	assert.Equal(t, 5, en.WordPoints("K"))

	// W differs: 10 in French, 4 in English
	assert.Equal(t, 10, fr.WordPoints("W"))
	assert.Equal(t, 4, en.WordPoints("W"))

	// unknown runes score zero
	assert.Equal(t, 0, fr.WordPoints("123"))
}

func TestGetUnknownLanguage(t *testing.T) {
	_, err := Get("xx")
	assert.Error(t, err)
	assert.False(t, Supported("xx"))
	assert.True(t, Supported("fr"))
	assert.True(t, Supported("EN"))
}

func TestInAlphabet(t *testing.T) {
	fr, _ := Get("fr")

	assert.True(t, fr.InAlphabet("CHAT"))
	assert.False(t, fr.InAlphabet("CH4T"))
	assert.False(t, fr.InAlphabet("CH-T"))
	assert.False(t, fr.InAlphabet(""))
}
