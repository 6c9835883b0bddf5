//go:build unit
// +build unit

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransformation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Transformation
		wantErr  bool
	}{
		{
			name:     "bare algorithm",
			input:    "RSA",
			expected: Transformation{Algorithm: "RSA"},
		},
		{
			name:     "fully qualified",
			input:    "RSA/NONE/PKCS1Padding",
			expected: Transformation{Algorithm: "RSA", Mode: "NONE", Padding: "PKCS1Padding"},
		},
		{
			name:     "surrounding whitespace is ignored",
			input:    "  AES/GCM/NoPadding ",
			expected: Transformation{Algorithm: "AES", Mode: "GCM", Padding: "NoPadding"},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "two parts", input: "AES/GCM", wantErr: true},
		{name: "four parts", input: "AES/GCM/NoPadding/X", wantErr: true},
		{name: "empty mode", input: "RSA//PKCS1Padding", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransformation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrAlgorithmUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTransformationKeys(t *testing.T) {
	tr, err := ParseTransformation("aes/gcm/NoPadding")
	require.NoError(t, err)

	assert.False(t, tr.IsBare())
	assert.Equal(t, "aes/gcm/NoPadding", tr.String())
	assert.Equal(t, "AES/GCM/NOPADDING", tr.Key())
	assert.Equal(t, "AES", tr.AlgorithmKey())
	assert.Equal(t, "AES/GCM", tr.ModeKey())

	bare, err := ParseTransformation("RSA")
	require.NoError(t, err)
	assert.True(t, bare.IsBare())
	assert.Equal(t, "RSA", bare.String())
}
