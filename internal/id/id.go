// Package id generates short random identifiers.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Generate returns <prefix>-<8 hex chars>, e.g. "execrole-1f2e3d4c".
// The result is a valid STS role session name for prefixes made of
// letters, digits and =,.@- characters.
func Generate(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		b = []byte(time.Now().Format("0405"))
	}
	return prefix + "-" + hex.EncodeToString(b)
}
