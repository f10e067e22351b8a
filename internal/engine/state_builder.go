package engine

import (
	"snipes-server/internal/domain"
	"snipes-server/pkg/api"
)

// BuildState создает "снимок" мира для клиента.
// Дырки в слотах отфильтровываются здесь: клиент видит только живых, с номером слота.
func BuildState(w domain.World) api.ServerResponse {
	resp := api.ServerResponse{
		Type:      api.ResponseUpdate,
		Tick:      w.MoveCounter,
		HeroAlive: w.HeroAlive(),
		Snipes:    toUnitViews(w.Snipes),
		Bullets:   toUnitViews(w.Bullets),
		Walls:     make([]api.WallView, 0, len(w.Walls)),
		Settings: api.SettingsView{
			Ricochet:       w.Settings.Ricochet,
			SnipesMayShoot: w.Settings.SnipesMayShoot,
		},
		Arena: &api.ArenaMeta{Width: domain.ArenaWidth, Height: domain.ArenaHeight},
		Sizes: &api.SizesView{
			Hero:   domain.HeroSize,
			Snipe:  domain.SnipeSize,
			Bullet: domain.BulletSize,
			Wall:   domain.WallSize,
		},
	}

	if w.Hero != nil {
		hero := toUnitView(w.Hero, 0)
		resp.Hero = &hero
	}

	for _, wall := range w.Walls {
		resp.Walls = append(resp.Walls, api.WallView{X1: wall.X1, Y1: wall.Y1, X2: wall.X2, Y2: wall.Y2})
	}

	return resp
}

// ErrorResponse сообщает клиенту, что его команда отклонена.
func ErrorResponse(err error) api.ServerResponse {
	return api.ServerResponse{Type: api.ResponseError, Error: err.Error()}
}

func toUnitViews(slots []*domain.Unit) []api.UnitView {
	views := make([]api.UnitView, 0, len(slots))
	for i, u := range slots {
		if u == nil {
			continue
		}
		views = append(views, toUnitView(u, i))
	}
	return views
}

func toUnitView(u *domain.Unit, slot int) api.UnitView {
	return api.UnitView{
		ID:   u.ID,
		Slot: slot,
		X:    u.X,
		Y:    u.Y,
		Dir:  u.Dir.String(),
	}
}
