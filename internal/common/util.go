package common

import (
	"crypto/rand"
	"encoding/base64"
)

// MakeRandURLSafeString generates a random URL-safe string from size bytes
// of cryptographically secure randomness. The bytes are encoded with
// unpadded base64url, so the final string is longer than size (4 characters
// per 3 bytes).
//
// Example:
//
//	s, err := MakeRandURLSafeString(32) // 256 bits of entropy
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // e.g., "3q2xj0...-_A"
//
// It returns an error if the random number generator fails.
func MakeRandURLSafeString(size int) (string, error) {

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
