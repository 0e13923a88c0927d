package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh record id: a random component from a v4 UUID plus
// the current time in base36. IDs only need to be unique within a category,
// but the random prefix keeps them collision-resistant across devices that
// never coordinate.
func NewID() string {
	r := strings.ReplaceAll(uuid.NewString(), "-", "")
	return r[:13] + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
