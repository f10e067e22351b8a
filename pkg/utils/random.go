package utils

import "github.com/google/uuid"

// GenerateID создает уникальный ID для юнита (UUIDv4).
func GenerateID() string {
	return uuid.NewString()
}
