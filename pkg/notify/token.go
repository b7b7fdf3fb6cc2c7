package notify

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateToken returns a new single-use verification/management token
func GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
