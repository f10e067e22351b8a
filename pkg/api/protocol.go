package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений сервера
const (
	ResponseUpdate = "UPDATE"
	ResponseError  = "ERROR"
)

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" арены после очередной команды.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" (снимок) или "ERROR" (команда отклонена).
	Type string `json:"type"`

	// Tick счетчик ходов снайпов (MoveCounter).
	Tick int `json:"tick"`

	// Hero герой. nil, если герой убит.
	Hero *UnitView `json:"hero,omitempty"`

	// HeroAlive дублирует Hero != nil для клиентов, которым удобнее флаг.
	HeroAlive bool `json:"heroAlive"`

	// Snipes и Bullets содержат только живых. Slot - позиция в слотах движка,
	// стабильна между тиками и годится как ключ для рендера.
	Snipes  []UnitView `json:"snipes"`
	Bullets []UnitView `json:"bullets"`

	Walls []WallView `json:"walls"`

	Settings SettingsView `json:"settings"`

	// Arena метаданные о размере арены.
	Arena *ArenaMeta `json:"arena,omitempty"`

	// Sizes размеры юнитов для отрисовки.
	Sizes *SizesView `json:"sizes,omitempty"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// ArenaMeta содержит размеры арены, чтобы клиент знал, какой холст подготовить.
type ArenaMeta struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// UnitView это DTO для героя, снайпа или пули.
type UnitView struct {
	ID   string  `json:"id"`
	Slot int     `json:"slot"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Dir  string  `json:"dir"`
}

// WallView это DTO для отрезка стены.
type WallView struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// SettingsView текущие переключатели симуляции.
type SettingsView struct {
	Ricochet       bool `json:"ricochet"`
	SnipesMayShoot bool `json:"snipesMayShoot"`
}

// SizesView размеры сущностей и толщина стен.
type SizesView struct {
	Hero   float64 `json:"hero"`
	Snipe  float64 `json:"snipe"`
	Bullet float64 `json:"bullet"`
	Wall   float64 `json:"wall"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название команды (MOVE_HERO, HERO_SHOOT, CHANGE_SETTING, ...).
	Action string `json:"action"`

	// Payload JSON-объект с данными для команды. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE_HERO и HERO_SHOOT.
type DirectionPayload struct {
	Dir string `json:"dir"` // north, north_east, ... или up/right/down/left
}

// SettingPayload используется для CHANGE_SETTING.
type SettingPayload struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}
