package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "typical mobile number", input: "13800138000", want: true},
		{name: "second digit 3", input: "13012345678", want: true},
		{name: "second digit 9", input: "19912345678", want: true},
		{name: "empty", input: "", want: false},
		{name: "too short", input: "1380013800", want: false},
		{name: "too long", input: "138001380001", want: false},
		{name: "wrong first digit", input: "23800138000", want: false},
		{name: "second digit 0", input: "10800138000", want: false},
		{name: "second digit 1", input: "11800138000", want: false},
		{name: "second digit 2", input: "12800138000", want: false},
		{name: "non-numeric tail", input: "1380013800a", want: false},
		{name: "leading whitespace", input: " 13800138000", want: false},
		{name: "trailing whitespace", input: "13800138000 ", want: false},
		{name: "embedded in longer string", input: "x13800138000y", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValid(tc.input))
		})
	}
}
