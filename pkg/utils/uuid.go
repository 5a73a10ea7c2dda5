package utils

import "github.com/google/uuid"

// IsUUID reports whether s parses as a UUID. Detail routes accept either a
// record ID or a slug; this is how they tell the two apart.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
