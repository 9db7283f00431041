package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"accepts all classes", "Abcdef1!", false},
		{"accepts longer mixed", "Sup3r-Secret#Pass", false},
		{"rejects too short", "Ab1!", true},
		{"rejects missing uppercase", "alllowercase1!", true},
		{"rejects missing lowercase", "ALLUPPERCASE1!", true},
		{"rejects missing digit", "Abcdefgh!", true},
		{"rejects missing special", "Abcdefg1", true},
		{"rejects empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "WEAK_PASSWORD", domainErr.Code)
		})
	}
}
