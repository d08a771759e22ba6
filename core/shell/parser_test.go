package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		line       string
		argv       []string
		background bool
	}{
		"empty":              {"", nil, false},
		"blank":              {"   ", nil, false},
		"tabs":               {"\t \t", nil, false},
		"single":             {"ls", []string{"ls"}, false},
		"args":               {"ls -l /tmp", []string{"ls", "-l", "/tmp"}, false},
		"extra blanks":       {"  ls \t -l  ", []string{"ls", "-l"}, false},
		"background token":   {"ls -l &", []string{"ls", "-l"}, true},
		"background suffix":  {"sleep 5&", []string{"sleep", "5"}, true},
		"ampersand mid":      {"echo a&b", []string{"echo", "a&b"}, false},
		"ampersand alone":    {"&", nil, true},
		"double ampersand":   {"sleep 5 &&", []string{"sleep", "5", "&"}, true},
		"many tokens":        {"a b c d e f g h i j k l", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}, false},
		"background spaced":  {"wget http://example.com/x.tgz \t&", []string{"wget", "http://example.com/x.tgz"}, true},
		"suffix single char": {"x&", []string{"x"}, true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			argv, background := Parse(tc.line)
			assert.Equal(t, tc.argv, argv)
			assert.Equal(t, tc.background, background)
		})
	}
}

func TestParseDoesNotAliasInput(t *testing.T) {
	line := "echo hello&"
	argv, background := Parse(line)
	assert.True(t, background)
	assert.Equal(t, []string{"echo", "hello"}, argv)
	// The original line is untouched; only the token copy was stripped.
	assert.Equal(t, "echo hello&", line)
}
