package filex

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// ChunkSize is the read size used while hashing.
const ChunkSize = 8192

// HashReader returns the hex SHA-256 of everything read from r, consuming it
// in ChunkSize pieces.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, ChunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile returns the hex SHA-256 of the file at path.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return HashReader(f)
}
