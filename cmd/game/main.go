package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/1siamBot/arena-engine/engine/config"
	"github.com/1siamBot/arena-engine/engine/core"
	"github.com/1siamBot/arena-engine/engine/input"
	"github.com/1siamBot/arena-engine/engine/level"
	"github.com/1siamBot/arena-engine/engine/logger"
	"github.com/1siamBot/arena-engine/engine/render"
	"github.com/1siamBot/arena-engine/engine/stats"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	PlayerTemplate = "hero"
	EnemyTemplate  = "giant_rat"
	WaveMinDist    = 4.0
	WaveMaxDist    = 7.0
)

// arena is the simulation the game loop steps: player intent, then the level
type arena struct {
	level  *level.Level
	input  *input.InputState
	camera *render.Camera
}

func (s *arena) Tick(dt float64) {
	if p := s.level.Player(); p != nil {
		input.Apply(p, s.input.TakeIntent(s.camera.ScreenToWorld), dt)
	}
	s.level.Tick(dt)
}

// Game implements ebiten.Game interface
type Game struct {
	cfg      config.Config
	renderer *render.ArenaRenderer
	gameLoop *core.GameLoop
	input    *input.InputState
	level    *level.Level
	wave     int

	showMinimap bool
}

func NewGame(cfg config.Config, templates *stats.Registry) (*Game, error) {
	g := &Game{
		cfg:         cfg,
		input:       input.NewInputState(),
		level:       level.New("arena", cfg.Seed, templates),
		showMinimap: true,
	}
	sprites := render.NewSpriteManager("", templates.Animations())
	g.renderer = render.NewArenaRenderer(ScreenWidth, ScreenHeight, sprites)

	if _, err := g.level.SpawnPlayer(PlayerTemplate, core.Vec2{}); err != nil {
		return nil, err
	}
	if err := g.spawnWave(); err != nil {
		return nil, err
	}

	g.gameLoop = core.NewGameLoop(&arena{
		level:  g.level,
		input:  g.input,
		camera: g.renderer.Camera,
	}, cfg.TickRate)
	g.gameLoop.Play()

	return g, nil
}

func (g *Game) spawnWave() error {
	center := g.level.Player().Position()
	if _, err := g.level.SpawnWave(EnemyTemplate, g.cfg.Enemies, center, WaveMinDist, WaveMaxDist); err != nil {
		return fmt.Errorf("spawn wave: %w", err)
	}
	g.wave++
	logger.Log.WithFields(logrus.Fields{
		"run_id":  g.level.RunID,
		"wave":    g.wave,
		"enemies": g.cfg.Enemies,
	}).Info("wave spawned")
	return nil
}

func (g *Game) Update() error {
	g.input.Update()

	// Pause
	if g.input.IsKeyJustPressed(ebiten.KeyP) {
		switch g.gameLoop.State {
		case core.StatePlaying:
			g.gameLoop.Pause()
		case core.StatePaused:
			g.gameLoop.Play()
		}
	}
	// Toggle minimap
	if g.input.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	// Zoom with scroll wheel
	if g.input.ScrollY != 0 {
		g.renderer.Camera.ZoomAt(g.input.ScrollY*0.1, g.input.MouseX, g.input.MouseY)
	}

	// Game simulation tick
	g.gameLoop.Update()
	g.renderer.Advance(1.0 / float64(ebiten.TPS()))

	p := g.level.Player()
	if p.IsDead() && g.gameLoop.State == core.StatePlaying {
		logger.Log.WithFields(logrus.Fields{
			"run_id": g.level.RunID,
			"wave":   g.wave,
			"tick":   g.level.TickCount,
		}).Info("player died")
		g.gameLoop.End()
	}

	// Clear corpses and send the next wave once the field is empty
	if g.level.EnemiesAlive() == 0 && !p.IsDead() {
		g.level.Reap()
		if err := g.spawnWave(); err != nil {
			return err
		}
	}

	pos := p.Position()
	g.renderer.Camera.CenterOn(pos.X, pos.Y)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawFloor(screen)
	g.renderer.DrawActors(screen, g.level.Entities())

	if g.showMinimap {
		g.renderer.DrawMinimap(screen, g.level.Entities(), ScreenWidth-170, ScreenHeight-170, 160, 12)
	}

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.level.Player()
	status := "playing"
	switch g.gameLoop.State {
	case core.StatePaused:
		status = "paused"
	case core.StateGameOver:
		status = "game over"
	}

	info := fmt.Sprintf(
		"Arena | FPS: %.0f | Tick: %d | %s\n"+
			"HP: %d/%d | State: %s | Wave: %d | Enemies: %d\n"+
			"[WASD] Move [Mouse] Aim [Space/LClick] Attack [Shift/RClick] Dash\n"+
			"[P] Pause [M] Minimap [Scroll] Zoom",
		ebiten.ActualFPS(),
		g.gameLoop.CurrentTick(),
		status,
		p.Health(), p.MaxHealth(), p.State(),
		g.wave, g.level.EnemiesAlive(),
	)

	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
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

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game, err := NewGame(cfg, templates)
	if err != nil {
		logger.Log.WithError(err).Fatal("new game")
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Error("game exited")
		os.Exit(1)
	}
}
