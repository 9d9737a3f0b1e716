package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

const sessionCookieName = "hearthside_session"
const minSecretLen = 32

// SessionCookieName returns the name of the session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the signing key from the configured secret,
// zero-padding anything shorter than 32 bytes.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// CreateSessionToken builds a signed session token for the given user id.
func CreateSessionToken(userID int64, secret []byte) string {
	payload := []byte(strconv.FormatInt(userID, 10))
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString(payload) + "." + sig
}

// VerifySessionToken checks the signature and returns the user id.
func VerifySessionToken(token string, secret []byte) (int64, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return 0, errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return 0, err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return 0, errors.New("invalid signature")
	}

	userID, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return 0, errors.New("invalid token payload")
	}
	return userID, nil
}
