// Command soak runs several independent arena levels headless, each with a
// scripted player, and logs a summary per level.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/arena-engine/engine/config"
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/level"
	"github.com/1siamBot/arena-engine/engine/logger"
	"github.com/1siamBot/arena-engine/engine/stats"
)

const (
	playerTemplate = "hero"
	enemyTemplate  = "giant_rat"
	waveMinDist    = 4.0
	waveMaxDist    = 7.0
	ctxCheckEvery  = 256 // ticks between cancellation checks
)

// result summarises one soak level
type result struct {
	RunID      string
	Seed       int64
	Ticks      uint64
	Waves      int
	Kills      int
	PlayerHP   int
	PlayerDied bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("config")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	templates := stats.NewRegistry()
	if cfg.TemplatesPath != "" {
		if err := templates.LoadFile(cfg.TemplatesPath); err != nil {
			logger.Log.WithError(err).Fatal("templates")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]result, cfg.SoakLevels)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.SoakLevels; i++ {
		g.Go(func() error {
			r, err := run(ctx, cfg, templates, cfg.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("level %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).Error("soak failed")
		os.Exit(1)
	}

	for _, r := range results {
		logger.Log.WithFields(logrus.Fields{
			"run_id":      r.RunID,
			"seed":        r.Seed,
			"ticks":       r.Ticks,
			"waves":       r.Waves,
			"kills":       r.Kills,
			"player_hp":   r.PlayerHP,
			"player_died": r.PlayerDied,
		}).Info("soak level finished")
	}
}

// run simulates one level for cfg.SoakSeconds of game time. Templates are
// only read, so levels may share the registry.
func run(ctx context.Context, cfg config.Config, templates *stats.Registry, seed int64) (result, error) {
	l := level.New(fmt.Sprintf("soak-%d", seed), seed, templates)
	res := result{RunID: l.RunID, Seed: seed}

	p, err := l.SpawnPlayer(playerTemplate, core.Vec2{})
	if err != nil {
		return res, err
	}
	l.Bus.On(core.EvtActorDied, func(e core.Event) {
		if e.Source != p.ID() {
			res.Kills++
		}
	})

	b := &bot{player: p}
	loop := core.NewGameLoop(core.StepFunc(func(dt float64) {
		b.step(l.Entities(), dt)
		l.Tick(dt)
	}), cfg.TickRate)
	loop.Play()

	total := uint64(cfg.SoakSeconds * cfg.TickRate)
	for loop.CurrentTick() < total && !p.IsDead() {
		if loop.CurrentTick()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if l.EnemiesAlive() == 0 && cfg.Enemies > 0 {
			l.Reap()
			if _, err := l.SpawnWave(enemyTemplate, cfg.Enemies, p.Position(), waveMinDist, waveMaxDist); err != nil {
				return res, err
			}
			res.Waves++
		}
		loop.Advance(loop.Step())
	}

	res.Ticks = loop.CurrentTick()
	res.PlayerHP = p.Health()
	res.PlayerDied = p.IsDead()
	return res, nil
}
