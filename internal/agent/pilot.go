package agent

import (
	"math/rand"

	"snipes-server/internal/domain"
	"snipes-server/internal/systems"
)

// Pilot - автопилот героя.
//
// Если какой-то снайп стоит на одном из 8 лучей от героя и ближе радиуса обнаружения,
// пилот стреляет в него. Иначе герой бродит: направление перевыбирается раз
// в DirectionLimit тиков или сразу, если прошлый шаг уперся в препятствие.
type Pilot struct {
	rng *rand.Rand

	dir      domain.Direction
	drawnAt  int
	lastPos  *domain.Point
	lastMove bool
}

func NewPilot(rng *rand.Rand) *Pilot {
	return &Pilot{rng: rng}
}

// Decide выбирает команду для героя. false - герой мертв, делать нечего.
func (p *Pilot) Decide(w domain.World) (domain.Command, bool) {
	if w.Hero == nil {
		return domain.Command{}, false
	}

	for _, s := range w.Snipes {
		if dir, ok := systems.DetectAndAim(w.Hero, s); ok {
			p.lastMove = false
			return domain.HeroShoot(dir), true
		}
	}

	pos := w.Hero.Point()
	stuck := p.lastMove && p.lastPos != nil && *p.lastPos == *pos
	if p.dir == domain.DirectionNone || stuck || w.MoveCounter-p.drawnAt >= domain.DirectionLimit {
		p.dir = systems.RandomDirection(p.rng)
		p.drawnAt = w.MoveCounter
	}

	p.lastPos = pos
	p.lastMove = true
	return domain.MoveHero(p.dir), true
}
