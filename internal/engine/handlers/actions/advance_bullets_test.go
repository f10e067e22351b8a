package actions

import (
	"testing"

	"snipes-server/internal/domain"
	"snipes-server/internal/systems"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceBullets_KillsHero(t *testing.T) {
	w := emptyWorld()
	w.Snipes = []*domain.Unit{unit("far", 100, 700, domain.East)}
	w.Bullets = []*domain.Unit{unit("b1", 405, 405, domain.South)}

	next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())

	assert.Nil(t, next.Hero, "hero must die")
	assert.False(t, next.HeroAlive())
	require.Len(t, next.Bullets, 1)
	assert.Nil(t, next.Bullets[0], "bullet must be consumed")
	require.NotNil(t, next.Snipes[0], "far snipe is unaffected")
	assert.Equal(t, *w.Snipes[0], *next.Snipes[0])

	// Старый снимок не тронут
	require.NotNil(t, w.Hero)
	require.NotNil(t, w.Bullets[0])
}

func TestAdvanceBullets_MovesFreeBullet(t *testing.T) {
	w := emptyWorld()
	w.Bullets = []*domain.Unit{nil, unit("b1", 100, 100, domain.SouthEast)}

	next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())

	require.Len(t, next.Bullets, 2, "slots are kept")
	assert.Nil(t, next.Bullets[0])
	require.NotNil(t, next.Bullets[1])
	assert.Equal(t, domain.Point{X: 110, Y: 110}, *next.Bullets[1].Point())
	assert.Equal(t, "b1", next.Bullets[1].ID)
	assert.Equal(t, domain.Point{X: 100, Y: 100}, *w.Bullets[1].Point())
}

func TestAdvanceBullets_KillsSnipe(t *testing.T) {
	w := emptyWorld()
	w.Snipes = []*domain.Unit{
		unit("victim", 300, 300, domain.North),
		unit("bystander", 600, 200, domain.North),
	}
	w.Bullets = []*domain.Unit{unit("b1", 306, 294, domain.West)}

	next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())

	assert.Nil(t, next.Snipes[0])
	assert.NotNil(t, next.Snipes[1])
	assert.Nil(t, next.Bullets[0])
	assert.NotNil(t, next.Hero)
}

func TestAdvanceBullets_PreTickListForDeaths(t *testing.T) {
	// Пуля уходит от героя за тик, но смерть считается по позиции до тика
	w := emptyWorld()
	w.Bullets = []*domain.Unit{unit("b1", 395, 400, domain.West)}

	next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())

	assert.Nil(t, next.Hero)
	assert.Nil(t, next.Bullets[0])
}

func TestAdvanceBullets_Walls(t *testing.T) {
	w := emptyWorld()
	w.WallPoints = systems.RasterizeSegment(domain.Wall{X1: 200, Y1: 100, X2: 200, Y2: 500})
	w.Bullets = []*domain.Unit{unit("b1", 190, 300, domain.NorthEast)}

	t.Run("absorbed without ricochet", func(t *testing.T) {
		next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())
		assert.Nil(t, next.Bullets[0])
	})

	t.Run("bounces with ricochet", func(t *testing.T) {
		rw := w
		rw.Settings.Ricochet = true
		next := HandleAdvanceBullets(newCtx(1), rw, domain.AdvanceBullets())

		require.NotNil(t, next.Bullets[0])
		assert.Equal(t, domain.Point{X: 190, Y: 300}, *next.Bullets[0].Point())
		assert.Equal(t, domain.NorthWest, next.Bullets[0].Dir)
	})
}

func TestAdvanceBullets_Border(t *testing.T) {
	w := emptyWorld()
	w.Bullets = []*domain.Unit{unit("b1", 795, 300, domain.East)}

	next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())
	assert.Nil(t, next.Bullets[0], "bullet leaves the arena")

	w.Settings.Ricochet = true
	next = HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())
	require.NotNil(t, next.Bullets[0])
	assert.Equal(t, domain.Point{X: 800 - domain.BulletSize, Y: 300}, *next.Bullets[0].Point())
	assert.Equal(t, domain.West, next.Bullets[0].Dir)
}

func TestAdvanceBullets_DeadHeroStaysDead(t *testing.T) {
	w := emptyWorld()
	w.Hero = nil
	w.Bullets = []*domain.Unit{unit("b1", 400, 400, domain.North)}

	next := HandleAdvanceBullets(newCtx(1), w, domain.AdvanceBullets())

	assert.Nil(t, next.Hero)
	require.NotNil(t, next.Bullets[0])
	assert.Equal(t, 390.0, next.Bullets[0].Y)
}
