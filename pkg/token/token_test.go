package token_test

import (
	"testing"
	"time"

	"github.com/adamcc31/devconnect-api/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	tok, err := m.Issue("user1")
	assert.NoError(t, err)

	userID, err := m.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, "user1", userID)
}

func TestVerifyClassification(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	cases := []struct {
		name   string
		token  func() string
		reason token.Reason
	}{
		{
			name:   "missing",
			token:  func() string { return "" },
			reason: token.ReasonMissing,
		},
		{
			name:   "garbage",
			token:  func() string { return "not.a.jwt" },
			reason: token.ReasonMalformed,
		},
		{
			name: "expired",
			token: func() string {
				expired := token.NewManager("test-secret", -time.Minute)
				tok, _ := expired.Issue("user1")
				return tok
			},
			reason: token.ReasonExpired,
		},
		{
			name: "forged",
			token: func() string {
				other := token.NewManager("other-secret", time.Hour)
				tok, _ := other.Issue("user1")
				return tok
			},
			reason: token.ReasonSignatureInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Verify(tc.token())
			assert.Error(t, err)

			authErr, ok := err.(*token.AuthError)
			assert.True(t, ok)
			assert.Equal(t, tc.reason, authErr.Reason)
		})
	}
}

func TestVerifyIsPure(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)
	tok, _ := m.Issue("user1")

	// Repeated verification of the same token always yields the same
	// result; there is no revocation state to consult.
	for i := 0; i < 100; i++ {
		userID, err := m.Verify(tok)
		assert.NoError(t, err)
		assert.Equal(t, "user1", userID)
	}
}
