package handlers

import (
	"encoding/json"
	"fmt"

	"snipes-server/internal/domain"
	"snipes-server/pkg/api"
)

// DecodeFunc превращает сырой payload клиента в команду движка.
type DecodeFunc func(raw json.RawMessage) (domain.Command, error)

// TypedDecodeFunc - это "чистый" конструктор команды, который работает с готовой структурой T
type TypedDecodeFunc[T any] func(payload T) (domain.Command, error)

// WithPayload берет "чистый" конструктор и превращает его в стандартный DecodeFunc.
// Она берет на себя Unmarshal и Validate.
func WithPayload[T any](build TypedDecodeFunc[T]) DecodeFunc {
	return func(raw json.RawMessage) (domain.Command, error) {
		var payload T

		// 1. Распаковка JSON
		if len(raw) == 0 {
			return domain.Command{}, fmt.Errorf("invalid payload format: empty payload")
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return domain.Command{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Автоматическая валидация
		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return domain.Command{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Сборка команды
		return build(payload)
	}
}

// WithEmptyPayload - обертка для команд без данных (ADVANCE_*, CREATE_WALLS)
func WithEmptyPayload(build func() domain.Command) DecodeFunc {
	return func(_ json.RawMessage) (domain.Command, error) {
		// Входящий JSON игнорируем, логике он не нужен.
		return build(), nil
	}
}
