package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSetting - ключ настройки не входит в закрытый набор SettingKey.
var ErrUnknownSetting = errors.New("unknown setting")

// Settings - глобальные флаги игры. Значение неизменяемое:
// команда ChangeSetting кладет в новый снимок копию, полученную через With.
type Settings struct {
	Ricochet       bool `json:"ricochet"`
	SnipesMayShoot bool `json:"snipesMayShoot"`
}

// DefaultSettings - пули гибнут на границе, снайпы стреляют.
func DefaultSettings() Settings {
	return Settings{Ricochet: false, SnipesMayShoot: true}
}

// SettingKey - закрытый набор настраиваемых флагов.
type SettingKey uint8

const (
	SettingUnknown SettingKey = iota
	SettingRicochet
	SettingSnipesMayShoot
)

var settingStringToKey = map[string]SettingKey{
	"ricochet":         SettingRicochet,
	"snipesmayshoot":   SettingSnipesMayShoot,
	"snipes_may_shoot": SettingSnipesMayShoot,
}

var settingKeyToString = map[SettingKey]string{
	SettingRicochet:       "ricochet",
	SettingSnipesMayShoot: "snipesMayShoot",
}

// ParseSettingKey сопоставляет имя из JSON с ключом. Неизвестные ключи - ошибка,
// а не молчаливая запись в настройки.
func ParseSettingKey(s string) (SettingKey, error) {
	if k, ok := settingStringToKey[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return SettingUnknown, fmt.Errorf("%w: %q", ErrUnknownSetting, s)
}

func (k SettingKey) String() string {
	if s, ok := settingKeyToString[k]; ok {
		return s
	}
	return "unknown"
}

// With возвращает копию настроек с перезаписанным флагом.
// Неизвестный ключ оставляет настройки как есть.
func (s Settings) With(key SettingKey, value bool) Settings {
	switch key {
	case SettingRicochet:
		s.Ricochet = value
	case SettingSnipesMayShoot:
		s.SnipesMayShoot = value
	}
	return s
}

// Get читает флаг по ключу.
func (s Settings) Get(key SettingKey) (bool, bool) {
	switch key {
	case SettingRicochet:
		return s.Ricochet, true
	case SettingSnipesMayShoot:
		return s.SnipesMayShoot, true
	}
	return false, false
}
