package main

import (
	"image"
	"image/color"
	"math"
)

func cu8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampF64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clampF64(t, 0, 1)
	return color.RGBA{
		cu8(float64(a.R)*(1-t) + float64(b.R)*t),
		cu8(float64(a.G)*(1-t) + float64(b.G)*t),
		cu8(float64(a.B)*(1-t) + float64(b.B)*t),
		cu8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

func darken(c color.RGBA, amt float64) color.RGBA {
	f := 1.0 - clampF64(amt, 0, 0.9)
	return color.RGBA{cu8(float64(c.R) * f), cu8(float64(c.G) * f), cu8(float64(c.B) * f), c.A}
}

func brighten(c color.RGBA, amt float64) color.RGBA {
	return lerpColor(c, color.RGBA{255, 255, 255, c.A}, amt)
}

// blend draws c over the pixel at (x, y), ignoring points outside img
func blend(img *image.RGBA, x, y int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y || c.A == 0 {
		return
	}
	ex := img.RGBAAt(x, y)
	if ex.A == 0 {
		img.SetRGBA(x, y, c)
		return
	}
	a := float64(c.A) / 255.0
	img.SetRGBA(x, y, color.RGBA{
		cu8(float64(ex.R)*(1-a) + float64(c.R)*a),
		cu8(float64(ex.G)*(1-a) + float64(c.G)*a),
		cu8(float64(ex.B)*(1-a) + float64(c.B)*a),
		cu8(math.Max(float64(ex.A), float64(c.A))),
	})
}

func drawSoftShadow(img *image.RGBA, cx, cy, rx, ry int, intensity float64) {
	for py := cy - ry*2; py <= cy+ry*2; py++ {
		for px := cx - rx*2; px <= cx+rx*2; px++ {
			dx, dy := float64(px-cx)/float64(rx), float64(py-cy)/float64(ry)
			d2 := dx*dx + dy*dy
			if d2 < 4.0 {
				blend(img, px, py, color.RGBA{0, 0, 0, cu8(intensity * 255 * math.Exp(-d2*1.2))})
			}
		}
	}
}

func lineAA(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0))
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		blend(img, x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(x0) + t*float64(x1-x0)
		y := float64(y0) + t*float64(y1-y0)
		ix, iy := int(x), int(y)
		fx, fy := x-float64(ix), y-float64(iy)
		blend(img, ix, iy, color.RGBA{c.R, c.G, c.B, cu8(float64(c.A) * (1 - fx) * (1 - fy))})
		blend(img, ix+1, iy, color.RGBA{c.R, c.G, c.B, cu8(float64(c.A) * fx * (1 - fy))})
		blend(img, ix, iy+1, color.RGBA{c.R, c.G, c.B, cu8(float64(c.A) * (1 - fx) * fy)})
		blend(img, ix+1, iy+1, color.RGBA{c.R, c.G, c.B, cu8(float64(c.A) * fx * fy)})
	}
}

func thickLine(img *image.RGBA, x0, y0, x1, y1 int, thick float64, c color.RGBA) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l, dx/l
	for t := -thick / 2; t <= thick/2; t += 0.5 {
		lineAA(img, x0+int(nx*t), y0+int(ny*t), x1+int(nx*t), y1+int(ny*t), c)
	}
}

func fCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	fCircleGrad(img, cx, cy, r, c, c)
}

// fCircleGrad fills an antialiased disc shading from center to edge
func fCircleGrad(img *image.RGBA, cx, cy, r int, center, edge color.RGBA) {
	for py := cy - r - 1; py <= cy+r+1; py++ {
		for px := cx - r - 1; px <= cx+r+1; px++ {
			d := math.Sqrt(float64((px-cx)*(px-cx) + (py-cy)*(py-cy)))
			if d <= float64(r)+0.5 {
				c := lerpColor(center, edge, d/float64(r))
				if d > float64(r)-0.5 {
					c.A = cu8(float64(c.A) * (float64(r) + 0.5 - d))
				}
				blend(img, px, py, c)
			}
		}
	}
}
