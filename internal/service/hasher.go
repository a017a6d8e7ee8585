package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashIdentifier seudonimiza un identificador: sha256(salt + valor recortado) en hex.
func HashIdentifier(salt, value string) string {
	sum := sha256.Sum256([]byte(salt + strings.TrimSpace(value)))
	return hex.EncodeToString(sum[:])
}
