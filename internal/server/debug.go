package server

import (
	"encoding/json"
	"net/http"

	"snipes-server/internal/domain"
	"snipes-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleDumpState)
	mux.HandleFunc("/debug/walls", h.handleWalls)
}

// /debug/state - полный снимок мира, включая пустые слоты (null)
func (h *DebugHandler) handleDumpState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}

// /debug/walls - отрезки стен и размер поля препятствий
func (h *DebugHandler) handleWalls(w http.ResponseWriter, r *http.Request) {
	type WallsSummary struct {
		Segments   []domain.Wall `json:"segments"`
		PointCount int           `json:"point_count"`
	}

	world := h.Service.Snapshot()
	writeJSON(w, WallsSummary{
		Segments:   world.Walls,
		PointCount: len(world.WallPoints),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil, возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
