// Package codec implements the reversible text-safe transform shared by
// both transfer formats: serialized bytes in, printable string out. The
// concrete transform is standard base64, which is what the payloads embedded
// in visual codes and pasted sync codes are expected to be.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode converts arbitrary serialized bytes into a printable string.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reverses Encode. Surrounding whitespace is tolerated since pasted
// codes often pick some up.
func Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("decode text-safe payload: %w", err)
	}
	return data, nil
}
