package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#2F5496", RGB{0x2F, 0x54, 0x96}, false},
		{"ff0000", RGB{0xFF, 0, 0}, false},
		{"black", Black, false},
		{"Navy", RGB{0, 0, 0x80}, false},
		{"", RGB{}, true},
		{"#12345", RGB{}, true},
		{"zzzzzz", RGB{}, true},
		{"12345z", RGB{}, true},
		{"#12 456", RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]Alignment{
		"":       AlignLeft,
		"LEFT":   AlignLeft,
		"center": AlignCenter,
		"Right":  AlignRight,
	} {
		got, err := ParseAlignment(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlignment("justify")
	assert.Error(t, err)
}

func TestStyleSpec_Units(t *testing.T) {
	s := StyleSpec{Name: "Heading 1", FontFamily: "Calibri", SizePt: 10.5}
	assert.Equal(t, 21, s.HalfPoints())
	assert.Equal(t, "Heading1", s.ID())
	assert.Equal(t, "2F5496", accent.Hex())
}

func TestMergeSheet(t *testing.T) {
	base := []StyleSpec{
		{Name: "A", FontFamily: "Arial", SizePt: 10},
		{Name: "B", FontFamily: "Arial", SizePt: 10},
	}
	overrides := []StyleSpec{
		{Name: "B", FontFamily: "Georgia", SizePt: 12},
		{Name: "C", FontFamily: "Arial", SizePt: 8},
	}

	merged := MergeSheet(base, overrides)

	require.Len(t, merged, 3)
	assert.Equal(t, "A", merged[0].Name)
	assert.Equal(t, "Georgia", merged[1].FontFamily)
	assert.Equal(t, "C", merged[2].Name)
	assert.Equal(t, "Arial", base[1].FontFamily, "base must not be modified")
}
