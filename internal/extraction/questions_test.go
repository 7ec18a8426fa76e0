package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberedList(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "Numbered list with a prose line dropped",
			reply: "1. What is a closure?\n2. Explain REST\nSome trailing prose\n3. Describe indexing",
			want:  []string{"1. What is a closure?", "2. Explain REST", "3. Describe indexing"},
		},
		{
			name:  "Leading and trailing whitespace on lines",
			reply: "  1. First question  \n\t2. Second question",
			want:  []string{"1. First question", "2. Second question"},
		},
		{
			name:  "No numbered lines",
			reply: "I could not come up with questions this time.",
			want:  nil,
		},
		{
			name:  "Empty reply",
			reply: "",
			want:  nil,
		},
		{
			name:  "Original numbering preserved",
			reply: "3. Third\n1. First\n2. Second",
			want:  []string{"3. Third", "1. First", "2. Second"},
		},
		{
			name:  "Number without dot is dropped",
			reply: "1) Wrong delimiter\n2. Right delimiter",
			want:  []string{"2. Right delimiter"},
		},
		{
			name:  "Multi-digit numbering",
			reply: "10. Tenth question",
			want:  []string{"10. Tenth question"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumberedList(tt.reply))
		})
	}
}
