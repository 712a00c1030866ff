package util

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
)

func GetSha256HashOfString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func GetSha256HashOfStream(r io.ReadCloser) (string, error) {
	defer r.Close()

	hasher := sha256.New()

	if _, err := io.Copy(hasher, r); err != nil {
		return "", errors.New("sha256: error hashing stream: " + err.Error())
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
