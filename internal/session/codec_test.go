package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCodec_EncodeDecode(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-secret-key-of-sufficient-length"))
	userID := uuid.New()

	token, err := codec.Encode(userID, time.Hour)
	require.NoError(t, err)

	got, err := codec.Decode(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestCodec_Decode_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-secret-key-of-sufficient-length"))

	token, err := codec.Encode(uuid.New(), -time.Second)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.Error(t, err)
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewCodec([]byte("the-right-secret-key-for-signing")).Encode(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = NewCodec([]byte("a-different-secret-verifying-key")).Decode(token)
	require.Error(t, err)
}

func TestCodec_Decode_Tampered(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-secret-key-of-sufficient-length"))

	token, err := codec.Encode(uuid.New(), time.Hour)
	require.NoError(t, err)

	tampered := []byte(token)
	// Flip a byte in the payload segment.
	tampered[len(tampered)/2] ^= 0x01

	_, err = codec.Decode(string(tampered))
	require.Error(t, err)
}

func TestCodec_Decode_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-secret-key-of-sufficient-length"))

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := codec.Decode(token)
		require.Error(t, err, "token %q", token)
	}
}

func TestCodec_Decode_RejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-secret-key-of-sufficient-length"))

	// A token claiming alg=none must not pass verification even though
	// its claims are well formed.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: uuid.New().String(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.Error(t, err)
}

func TestCodec_Decode_InvalidUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret-key-of-sufficient-length")
	codec := NewCodec(secret)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "not-a-uuid",
	})
	token, err := signed.SignedString(secret)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
