package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "already normalized", input: "+15551234567", want: "+15551234567"},
		{name: "US formatting", input: "+1 (234) 567-8900", want: "+12345678900"},
		{name: "spaces", input: "+1 555 123 4567", want: "+15551234567"},
		{name: "dots", input: "+1.555.123.4567", want: "+15551234567"},
		{name: "surrounding whitespace", input: "  +15551234567 ", want: "+15551234567"},
		{name: "missing plus", input: "15551234567", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "+1555CALLNOW", wantErr: true},
		{name: "too short", input: "+123", wantErr: true},
		{name: "too long", input: "+1234567890123456", wantErr: true},
		{name: "leading zero country code", input: "+05551234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNormalized(t *testing.T) {
	assert.True(t, IsNormalized("+15551234567"))
	assert.False(t, IsNormalized("+1 555 123 4567"))
	assert.False(t, IsNormalized("15551234567"))
}
