package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	model "service-market/internal/models"
)

var testSecret = []byte("unit-test-secret")

func testUser() model.User {
	return model.User{
		UserID:       "user1",
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		ProfileImage: "https://example.com/maria.png",
		Role:         model.RoleRequester,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	user := testUser()
	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, user.UserID, claims.UserID)
	require.Equal(t, user.Name, claims.Name)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.ProfileImage, claims.ProfileImage)
	require.Equal(t, model.RoleRequester, claims.Role)
	require.Equal(t, "service-market", claims.Issuer)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				token, err := GenerateToken(testUser(), testSecret, -time.Minute)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "wrong_secret",
			token: func(t *testing.T) string {
				token, err := GenerateToken(testUser(), []byte("another-secret"), time.Hour)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
		},
		{
			name: "unsigned_alg_none",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user1"})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateToken(tc.token(t), testSecret)
			require.Error(t, err)
		})
	}
}

func TestCredentialStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore(filepath.Join(t.TempDir(), "token"), testSecret)

	token, err := GenerateToken(testUser(), testSecret, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Save(token))

	loaded, claims, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, token, loaded)
	require.Equal(t, "user1", claims.UserID)
}

func TestCredentialStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore(filepath.Join(t.TempDir(), "token"), testSecret)
	_, _, err := store.Load()
	require.Error(t, err)
}

// An expired stored credential is cleared so the next load starts clean
func TestCredentialStore_ExpiredTokenCleared(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	store := NewCredentialStore(path, testSecret)

	expired, err := GenerateToken(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Save(expired))

	_, _, err = store.Load()
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "rejected token should have been cleared")
}
