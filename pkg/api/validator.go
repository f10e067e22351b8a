package api

import (
	"errors"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if strings.TrimSpace(p.Dir) == "" {
		return errors.New("dir is required")
	}
	return nil
}

func (p SettingPayload) Validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return errors.New("key is required")
	}
	return nil
}
