package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajdwivedi/aeonaxy-server/utils"
)

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"Valid", "Sup3rSecret!", ""},
		{"TooShort", "Ab1!", "too short"},
		{"NoUppercase", "sup3rsecret!", "uppercase"},
		{"NoLowercase", "SUP3RSECRET!", "lowercase"},
		{"NoDigit", "SuperSecret!", "number"},
		{"NoSpecial", "Sup3rSecret", "special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.CheckPasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	password := utils.GenerateRandomPassword(8)
	assert.Len(t, password, 8)
	for _, c := range password {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}
