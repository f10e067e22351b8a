// Headless прогоняет игру без сети и таймера: тики идут подряд,
// героем управляет автопилот. Удобно для проверки сидов и баланса.
package main

import (
	"flag"
	"math/rand"

	"snipes-server/internal/agent"
	"snipes-server/internal/domain"
	"snipes-server/internal/engine"
	"snipes-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	var seed int64
	var ticks int
	var autopilot bool
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 keeps env/random)")
	flag.IntVar(&ticks, "ticks", 500, "How many ticks to simulate")
	flag.BoolVar(&autopilot, "autopilot", true, "Let the pilot drive the hero between ticks")
	flag.Parse()

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	svc := engine.NewService(cfg, nil)
	pilot := agent.NewPilot(rand.New(rand.NewSource(cfg.Seed + 1)))

	shots := 0
	played := 0
	var w domain.World
	for played < ticks {
		if autopilot {
			if cmd, ok := pilot.Decide(svc.Snapshot()); ok {
				if cmd.Type == domain.CommandHeroShoot {
					shots++
				}
				svc.Step(cmd)
			}
		}
		w = svc.Tick()
		played++
		if !w.HeroAlive() {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":        cfg.Seed,
		"ticks":       played,
		"hero_alive":  w.HeroAlive(),
		"live_snipes": len(w.LiveSnipes()),
		"shots":       shots,
	}).Info("Simulation finished")
}
