package registry

import "github.com/google/uuid"

// GeneratePackID generates a new unique pack ID using UUID v4
func GeneratePackID() string {
	return uuid.New().String()
}
