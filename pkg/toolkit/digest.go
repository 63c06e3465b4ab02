// Package toolkit holds small helpers shared by the bridge and OCR packages:
// content digests, PNG persistence and bounded random numbers.
package toolkit

import (
	"crypto/md5" //#nosec G501 -- content fingerprint, not a security boundary
	"encoding/hex"
	"os"
)

// MD5OfBytes returns the lowercase hex MD5 digest of b.
func MD5OfBytes(b []byte) string {
	sum := md5.Sum(b) //#nosec G401
	return hex.EncodeToString(sum[:])
}

// MD5OfFile returns the lowercase hex MD5 digest of the file at path.
func MD5OfFile(path string) (string, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- caller-provided path
	if err != nil {
		return "", err
	}
	return MD5OfBytes(data), nil
}
