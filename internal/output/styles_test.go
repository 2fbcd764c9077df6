package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abc", 3, "abc"},
		{"long truncates", "abcdefgh", 5, "abcd…"},
		{"zero max disables", "abcdefgh", 0, "abcdefgh"},
		{"max one", "abcdefgh", 1, "a"},
		{"multi-byte stays whole", "Mycoplasmataceae ログ", 19, "Mycoplasmataceae ログ"},
		{"multi-byte truncates on runes", "Lactobacillus délbrückii", 15, "Lactobacillus…"},
		{"all multi-byte", "腸内細菌科の種", 4, "腸内細…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

func TestFormatRowCount(t *testing.T) {
	assert.Contains(t, FormatRowCount(7), "(7 rows)")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("saved"), "saved")
}
