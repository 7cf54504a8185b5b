// Command generate_sprites renders placeholder top-down sprites for every
// animation key in the template registry: a default image plus eight
// directions by three walk frames.
package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"

	"github.com/1siamBot/arena-engine/engine/logger"
	"github.com/1siamBot/arena-engine/engine/stats"
)

const (
	spriteSize  = 64
	supersample = 2 // sprites are drawn this much larger then filtered down
	directions  = 8
	frames      = 3
)

// body colors picked per animation key
var palette = []color.RGBA{
	colornames.Cornflowerblue,
	colornames.Sienna,
	colornames.Olivedrab,
	colornames.Slategray,
	colornames.Darkkhaki,
	colornames.Indianred,
}

func main() {
	out := flag.String("out", "assets", "assets directory")
	templates := flag.String("templates", "", "optional YAML template overrides")
	flag.Parse()

	reg := stats.NewRegistry()
	if *templates != "" {
		if err := reg.LoadFile(*templates); err != nil {
			logger.Log.WithError(err).Fatal("templates")
		}
	}

	n, err := generate(filepath.Join(*out, "sprites"), reg.Animations())
	if err != nil {
		logger.Log.WithError(err).Fatal("generate sprites")
	}
	logger.Log.WithField("files", n).Info("sprites written")
}

// generate writes every sprite for keys into dir and returns the file count
func generate(dir string, keys []string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	n := 0
	for _, key := range keys {
		body := bodyColor(key)
		if err := savePNG(filepath.Join(dir, key+".png"), finalSprite(body, 0, 0)); err != nil {
			return n, err
		}
		n++
		for d := 0; d < directions; d++ {
			for f := 0; f < frames; f++ {
				path := filepath.Join(dir, fmt.Sprintf("%s_d%d_f%d.png", key, d, f))
				if err := savePNG(path, finalSprite(body, dirAngle(d), f)); err != nil {
					return n, err
				}
				n++
			}
		}
	}
	return n, nil
}

func bodyColor(key string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(key))
	return palette[h.Sum32()%uint32(len(palette))]
}

func dirAngle(dir int) float64 { return float64(dir) * 2 * math.Pi / directions }

// finalSprite draws at supersample scale and filters down to spriteSize
func finalSprite(body color.RGBA, angle float64, frame int) *image.RGBA {
	big := actorSprite(body, angle, frame, spriteSize*supersample)
	dst := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), xdraw.Over, nil)
	return dst
}

// actorSprite draws a round body facing angle with two feet that swing
// with the walk frame.
func actorSprite(body color.RGBA, angle float64, frame, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := size / 2
	r := size/2 - size*3/32

	drawSoftShadow(img, c, c+3, r, r*3/4, 0.35)

	// Feet
	swing := float64(frame-1) * float64(size) / 16
	fx, fy := math.Cos(angle), math.Sin(angle)
	px, py := -fy, fx
	for _, side := range []float64{-1, 1} {
		off := swing * side
		x := float64(c) + px*side*float64(r)*0.55 + fx*off
		y := float64(c) + py*side*float64(r)*0.55 + fy*off
		fCircle(img, int(x), int(y), r/4, darken(body, 0.4))
	}

	fCircleGrad(img, c, c, r, brighten(body, 0.25), darken(body, 0.2))

	// Facing marker
	tip := float64(r) * 0.9
	thickLine(img, c, c, c+int(fx*tip), c+int(fy*tip), float64(size)/20, colornames.White)
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
