package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	ts := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := uuid.NewString()

	token := EncodeToken(ts, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTS, decodedID, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.True(t, ts.Equal(decodedTS), "Timestamp should match after decode")
	assert.Equal(t, id, decodedID)

	// Non-UTC input is normalised but still represents the same instant
	loc := time.FixedZone("SAST", 2*60*60)
	local := ts.In(loc)
	decodedTS, _, err = DecodeToken(EncodeToken(local, id))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decodedTS))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	missingSep := base64.RawURLEncoding.EncodeToString([]byte("2025-01-01T00:00:00Z"))
	_, _, err = DecodeToken(missingSep)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badTime := base64.RawURLEncoding.EncodeToString([]byte("yesterday|abc"))
	_, _, err = DecodeToken(badTime)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")
}
