package actions

import (
	"math/rand"
	"testing"

	"snipes-server/internal/domain"
	"snipes-server/internal/systems"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceSnipes_DirectionReassignedEveryLimit(t *testing.T) {
	const seed = 99

	w := emptyWorld()
	w.Hero = nil
	w.Snipes = []*domain.Unit{unit("s1", 400, 400, domain.South)}

	// Тот же сид - те же розыгрыши направлений
	expected := rand.New(rand.NewSource(seed))
	first := systems.RandomDirection(expected)
	second := systems.RandomDirection(expected)

	ctx := newCtx(seed)
	for tick := 0; tick <= domain.DirectionLimit; tick++ {
		w = HandleAdvanceSnipes(ctx, w, domain.AdvanceSnipes())
		require.NotNil(t, w.Snipes[0])

		want := first
		if tick == domain.DirectionLimit {
			want = second
		}
		assert.Equal(t, want, w.Snipes[0].Dir, "tick %d", tick)
		assert.Empty(t, w.Bullets, "snipes may not shoot")
	}

	assert.Equal(t, domain.DirectionLimit+1, w.MoveCounter)
}

func TestAdvanceSnipes_StepsWithoutReassignment(t *testing.T) {
	w := emptyWorld()
	w.Hero = nil
	w.MoveCounter = 3
	w.Snipes = []*domain.Unit{nil, unit("s1", 100, 100, domain.South)}

	next := HandleAdvanceSnipes(newCtx(1), w, domain.AdvanceSnipes())

	assert.Nil(t, next.Snipes[0], "holes stay holes")
	assert.Equal(t, domain.Point{X: 100, Y: 110}, *next.Snipes[1].Point())
	assert.Equal(t, domain.South, next.Snipes[1].Dir)
	assert.Equal(t, 4, next.MoveCounter)
	assert.Equal(t, domain.Point{X: 100, Y: 100}, *w.Snipes[1].Point(), "input untouched")
}

func TestAdvanceSnipes_BlockedSnipeStaysAndReflects(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *domain.World)
	}{
		{"wall", func(w *domain.World) {
			w.WallPoints = []domain.Point{{X: 100, Y: 110}}
		}},
		{"bullet", func(w *domain.World) {
			w.Bullets = []*domain.Unit{unit("b", 102, 112, domain.North)}
		}},
		{"hero", func(w *domain.World) {
			w.Hero = unit("hero", 100, 125, domain.North)
		}},
		{"other snipe", func(w *domain.World) {
			w.Snipes = append(w.Snipes, unit("s2", 100, 118, domain.North))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := emptyWorld()
			w.Hero = nil
			w.MoveCounter = 1
			w.Snipes = []*domain.Unit{unit("s1", 100, 100, domain.South)}
			tt.setup(&w)

			next := HandleAdvanceSnipes(newCtx(1), w, domain.AdvanceSnipes())

			require.NotNil(t, next.Snipes[0])
			assert.Equal(t, domain.Point{X: 100, Y: 100}, *next.Snipes[0].Point())
			assert.Equal(t, domain.North, next.Snipes[0].Dir)
		})
	}
}

func TestAdvanceSnipes_UsesPreMoveNeighbours(t *testing.T) {
	// s2 уходит с дороги в этом же тике, но s1 сверяется со старой позицией s2
	w := emptyWorld()
	w.Hero = nil
	w.MoveCounter = 1
	w.Snipes = []*domain.Unit{
		unit("s1", 100, 100, domain.East),
		unit("s2", 115, 100, domain.East),
	}

	next := HandleAdvanceSnipes(newCtx(1), w, domain.AdvanceSnipes())

	assert.Equal(t, domain.Point{X: 100, Y: 100}, *next.Snipes[0].Point())
	assert.Equal(t, domain.West, next.Snipes[0].Dir)
	assert.Equal(t, domain.Point{X: 125, Y: 100}, *next.Snipes[1].Point())
}

func TestAdvanceSnipes_BorderBounce(t *testing.T) {
	w := emptyWorld()
	w.Hero = nil
	w.MoveCounter = 1
	w.Snipes = []*domain.Unit{unit("s1", 792, 400, domain.East)}

	next := HandleAdvanceSnipes(newCtx(1), w, domain.AdvanceSnipes())

	assert.Equal(t, domain.Point{X: 800 - domain.SnipeSize, Y: 400}, *next.Snipes[0].Point())
	assert.Equal(t, domain.West, next.Snipes[0].Dir)
}

func TestAdvanceSnipes_Shooting(t *testing.T) {
	newWorld := func(counter int, mayShoot bool) domain.World {
		w := emptyWorld()
		w.Hero = unit("hero", 400, 400, domain.North)
		w.MoveCounter = counter
		w.Settings.SnipesMayShoot = mayShoot
		w.Snipes = []*domain.Unit{
			unit("aligned", 400, 300, domain.West),
			unit("offset", 350, 330, domain.West),
		}
		return w
	}

	t.Run("fires on interval", func(t *testing.T) {
		next := HandleAdvanceSnipes(newCtx(1), newWorld(domain.SnipeShootInterval, true), domain.AdvanceSnipes())

		require.Len(t, next.Bullets, 1, "only the aligned snipe fires")
		b := next.Bullets[0]
		assert.Equal(t, domain.South, b.Dir)
		// Пуля стартует от позиции до хода: 300 + 2*20
		assert.Equal(t, domain.Point{X: 400, Y: 340}, *b.Point())
	})

	t.Run("silent between intervals", func(t *testing.T) {
		next := HandleAdvanceSnipes(newCtx(1), newWorld(domain.SnipeShootInterval+1, true), domain.AdvanceSnipes())
		assert.Empty(t, next.Bullets)
	})

	t.Run("silent when disabled", func(t *testing.T) {
		next := HandleAdvanceSnipes(newCtx(1), newWorld(domain.SnipeShootInterval, false), domain.AdvanceSnipes())
		assert.Empty(t, next.Bullets)
	})

	t.Run("dead hero is never targeted", func(t *testing.T) {
		w := newWorld(domain.SnipeShootInterval, true)
		w.Hero = nil
		next := HandleAdvanceSnipes(newCtx(1), w, domain.AdvanceSnipes())
		assert.Empty(t, next.Bullets)
	})
}
