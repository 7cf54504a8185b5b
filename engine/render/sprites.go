package render

import (
	"fmt"
	"image"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/1siamBot/arena-engine/engine/logger"
)

const (
	spriteDirections = 8
	spriteFrames     = 3
)

// SpriteManager holds actor sprites keyed by template animation name
type SpriteManager struct {
	// Default sprite per animation key
	Sprites map[string]*ebiten.Image
	// Directional sprites: key = animation, [direction 0-7][frame 0-2]
	DirSprites map[string][spriteDirections][spriteFrames]*ebiten.Image
}

// NewSpriteManager loads sprites for the given animation keys from dir.
// An empty dir searches the usual assets locations. Missing files are
// skipped and the renderer falls back to plain shapes.
func NewSpriteManager(dir string, keys []string) *SpriteManager {
	sm := &SpriteManager{
		Sprites:    make(map[string]*ebiten.Image),
		DirSprites: make(map[string][spriteDirections][spriteFrames]*ebiten.Image),
	}
	if dir == "" {
		dir = getAssetsDir()
	}

	for _, name := range keys {
		if img := loadFromFile(filepath.Join(dir, "sprites", name+".png")); img != nil {
			sm.Sprites[name] = img
		}
		var frames [spriteDirections][spriteFrames]*ebiten.Image
		loaded := false
		for d := 0; d < spriteDirections; d++ {
			for f := 0; f < spriteFrames; f++ {
				img := loadFromFile(filepath.Join(dir, "sprites", fmt.Sprintf("%s_d%d_f%d.png", name, d, f)))
				if img != nil {
					frames[d][f] = img
					loaded = true
				}
			}
		}
		if loaded {
			sm.DirSprites[name] = frames
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"dir":         dir,
		"sprites":     len(sm.Sprites),
		"directional": len(sm.DirSprites),
	}).Info("sprites loaded")
	return sm
}

// Get returns the sprite for an animation key, facing and frame, or nil
func (sm *SpriteManager) Get(key string, facing float64, frame int) *ebiten.Image {
	if sm == nil {
		return nil
	}
	frames, ok := sm.DirSprites[key]
	if !ok {
		return sm.Sprites[key]
	}
	f := frame % spriteFrames
	if f < 0 {
		f = 0
	}
	if img := frames[DirectionIndex(facing)][f]; img != nil {
		return img
	}
	return sm.Sprites[key]
}

// DirectionIndex maps a heading to one of eight sprite directions,
// 0 = east, counting clockwise on screen (y grows downward).
func DirectionIndex(angle float64) int {
	sector := 2 * math.Pi / spriteDirections
	i := int(math.Round(angle / sector))
	i %= spriteDirections
	if i < 0 {
		i += spriteDirections
	}
	return i
}

func getAssetsDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "assets")
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	return "assets"
}

func loadFromFile(path string) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		logger.Log.WithError(err).WithField("path", path).Warn("could not decode sprite")
		return nil
	}

	return ebiten.NewImageFromImage(img)
}
