package detect

import (
	"image"
	"math"
	"sort"

	"github.com/soocke/circle-shot-go/domain/vision"
)

// maxCenterChecks bounds radius estimation work on noisy frames.
const maxCenterChecks = 100

// HoughDetector is a pure Go Hough-gradient circle detector. It follows the
// classic pipeline:
//
//  1. Sobel gradients and Canny edges (hysteresis between EdgeThreshold/2 and EdgeThreshold),
//     each edge refined to sub-pixel position along its gradient
//  2. each edge pixel votes along its gradient line for radii in [MinRadius, MaxRadius]
//  3. the accumulator is box-filtered (3x3) and local maxima above
//     AccumulatorThreshold become center candidates, strongest first, refined
//     by the vote centroid of their 3x3 neighbourhood
//  4. centers closer than MinDist to an accepted center are dropped
//  5. the radius is the best supported distance from the center to the edge set
//
// Reported centers use continuous coordinates: pixel (i, j) covers
// [i, i+1) x [j, j+1).
type HoughDetector struct {
	params Params
}

// NewHoughDetector returns a detector using p. Non-positive DP is treated as 1.
func NewHoughDetector(p Params) *HoughDetector {
	if p.DP <= 0 {
		p.DP = 1
	}
	if p.MinRadius < 1 {
		p.MinRadius = 1
	}
	if p.MaxRadius < p.MinRadius {
		p.MaxRadius = p.MinRadius
	}
	return &HoughDetector{params: p}
}

type edgePoint struct{ x, y float64 }

type center struct {
	x, y  float64
	votes int
}

// Detect implements Detector.
func (d *HoughDetector) Detect(gray *image.Gray) ([]vision.Circle, error) {
	if gray == nil {
		return nil, ErrNilRaster
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return nil, nil
	}
	p := d.params
	dx, dy := sobel(gray, w, h)
	mag := magnitude(dx, dy)
	edges := canny(dx, dy, w, h, p.EdgeThreshold/2, p.EdgeThreshold)

	pts := make([]edgePoint, 0, 512)
	grads := make([]int, 0, 512)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if edges[y*w+x] {
				pts = append(pts, subpixelEdge(mag, dx, dy, w, x, y))
				grads = append(grads, y*w+x)
			}
		}
	}
	if len(pts) == 0 {
		return nil, nil
	}

	accW := int(float64(w)/p.DP) + 1
	accH := int(float64(h)/p.DP) + 1
	acc := make([]int, accW*accH)
	sumX := make([]float64, accW*accH)
	sumY := make([]float64, accW*accH)
	for k, e := range pts {
		gx, gy := dx[grads[k]], dy[grads[k]]
		norm := math.Hypot(gx, gy)
		if norm == 0 {
			continue
		}
		vx, vy := gx/norm, gy/norm
		for _, sign := range [2]float64{1, -1} {
			for r := p.MinRadius; r <= p.MaxRadius; r++ {
				cx := (e.x + sign*float64(r)*vx) / p.DP
				cy := (e.y + sign*float64(r)*vy) / p.DP
				ix, iy := int(math.Round(cx)), int(math.Round(cy))
				if ix < 0 || iy < 0 || ix >= accW || iy >= accH {
					break
				}
				cell := iy*accW + ix
				acc[cell]++
				sumX[cell] += cx
				sumY[cell] += cy
			}
		}
	}

	centers := findCenters(votes{acc, sumX, sumY}, boxFilter3(acc, accW, accH), accW, accH, p)
	if len(centers) == 0 {
		return nil, nil
	}

	var accepted []center
	out := make([]vision.Circle, 0, 4)
	minDist2 := p.MinDist * p.MinDist
	checked := 0
	for _, c := range centers {
		if checked >= maxCenterChecks {
			break
		}
		tooClose := false
		for _, o := range accepted {
			ddx, ddy := c.x-o.x, c.y-o.y
			if ddx*ddx+ddy*ddy < minDist2 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		checked++
		r, support := estimateRadius(c, pts, p.MinRadius, p.MaxRadius)
		if float64(support) < p.AccumulatorThreshold {
			continue
		}
		accepted = append(accepted, c)
		out = append(out, vision.Circle{
			X:      c.x + 0.5 + float64(b.Min.X),
			Y:      c.y + 0.5 + float64(b.Min.Y),
			Radius: r,
		})
	}
	return out, nil
}

// sobel computes 3x3 Sobel gradients. Border pixels are left at zero.
func sobel(gray *image.Gray, w, h int) (dx, dy []float64) {
	dx = make([]float64, w*h)
	dy = make([]float64, w*h)
	px := func(x, y int) float64 { return float64(gray.Pix[y*gray.Stride+x]) }
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			tl, tc, tr := px(x-1, y-1), px(x, y-1), px(x+1, y-1)
			ml, mr := px(x-1, y), px(x+1, y)
			bl, bc, br := px(x-1, y+1), px(x, y+1), px(x+1, y+1)
			dx[y*w+x] = (tr + 2*mr + br) - (tl + 2*ml + bl)
			dy[y*w+x] = (bl + 2*bc + br) - (tl + 2*tc + tr)
		}
	}
	return dx, dy
}

// magnitude is the L1 gradient norm.
func magnitude(dx, dy []float64) []float64 {
	mag := make([]float64, len(dx))
	for i := range mag {
		mag[i] = math.Abs(dx[i]) + math.Abs(dy[i])
	}
	return mag
}

const tan22 = 0.41421356 // tan(22.5°)

// gradientNeighbours returns the offsets of the two pixels compared during
// non-maximum suppression. The second one lies at (sx, sy) from the pixel.
func gradientNeighbours(gx, gy float64, w int) (n1, n2, sx, sy int) {
	ax, ay := math.Abs(gx), math.Abs(gy)
	switch {
	case ay <= ax*tan22: // horizontal gradient
		return -1, 1, 1, 0
	case ay > ax/tan22: // vertical gradient
		return -w, w, 0, 1
	case (gx > 0) == (gy > 0): // diagonal down-right
		return -w - 1, w + 1, 1, 1
	default:
		return -w + 1, w - 1, -1, 1
	}
}

// subpixelEdge fits a parabola through the magnitude across the edge at
// (x, y) and returns the position of its peak.
func subpixelEdge(mag, dx, dy []float64, w, x, y int) edgePoint {
	i := y*w + x
	o1, o2, sx, sy := gradientNeighbours(dx[i], dy[i], w)
	n1, m, n2 := mag[i+o1], mag[i], mag[i+o2]
	t := 0.0
	if den := n1 - 2*m + n2; den < 0 {
		t = (n1 - n2) / (2 * den)
		t = math.Max(-0.5, math.Min(0.5, t))
	}
	return edgePoint{x: float64(x) + t*float64(sx), y: float64(y) + t*float64(sy)}
}

// canny thins gradient magnitude (L1 norm) by non-maximum suppression and keeps
// weak edges only when connected to a strong one.
func canny(dx, dy []float64, w, h int, low, high float64) []bool {
	mag := magnitude(dx, dy)
	thin := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}
			o1, o2, _, _ := gradientNeighbours(dx[i], dy[i], w)
			if m > mag[i+o1] && m >= mag[i+o2] {
				thin[i] = m
			}
		}
	}

	edges := make([]bool, w*h)
	stack := make([]int, 0, 256)
	for i, m := range thin {
		if m > high && !edges[i] {
			edges[i] = true
			stack = append(stack, i)
		}
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jx, jy := j%w, j/w
			for ny := jy - 1; ny <= jy+1; ny++ {
				for nx := jx - 1; nx <= jx+1; nx++ {
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					k := ny*w + nx
					if !edges[k] && thin[k] > low {
						edges[k] = true
						stack = append(stack, k)
					}
				}
			}
		}
	}
	return edges
}

func boxFilter3(acc []int, w, h int) []int {
	out := make([]int, len(acc))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			s := 0
			for ky := -1; ky <= 1; ky++ {
				row := (y + ky) * w
				s += acc[row+x-1] + acc[row+x] + acc[row+x+1]
			}
			out[y*w+x] = s
		}
	}
	return out
}

// votes holds per-cell vote counts and the sums of the exact vote positions.
type votes struct {
	count      []int
	sumX, sumY []float64
}

// findCenters returns local maxima of the smoothed accumulator above the
// threshold, strongest first. Each position is the mean of the raw votes
// around the maximum.
func findCenters(raw votes, acc []int, w, h int, p Params) []center {
	var out []center
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			v := acc[i]
			if float64(v) <= p.AccumulatorThreshold {
				continue
			}
			if v > acc[i-1] && v >= acc[i+1] && v > acc[i-w] && v >= acc[i+w] {
				cx, cy := voteCentroid(raw, w, x, y)
				out = append(out, center{x: cx * p.DP, y: cy * p.DP, votes: v})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].votes > out[j].votes })
	return out
}

// voteCentroid returns the mean vote position over the 3x3 cells around
// (x, y). The caller keeps (x, y) off the border.
func voteCentroid(v votes, w, x, y int) (float64, float64) {
	n := 0
	var sx, sy float64
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			k := (y+ky)*w + x + kx
			n += v.count[k]
			sx += v.sumX[k]
			sy += v.sumY[k]
		}
	}
	if n == 0 {
		return float64(x), float64(y)
	}
	return sx / float64(n), sy / float64(n)
}

// estimateRadius histograms edge distances from c in 1px bins and returns the
// mean distance of the best supported 3-bin window together with its support.
func estimateRadius(c center, pts []edgePoint, minR, maxR int) (float64, int) {
	n := maxR - minR + 1
	counts := make([]int, n)
	sums := make([]float64, n)
	lo, hi := float64(minR)-0.5, float64(maxR)+0.5
	for _, e := range pts {
		d := math.Hypot(e.x-c.x, e.y-c.y)
		if d < lo || d >= hi {
			continue
		}
		bin := int(d - lo)
		if bin >= n {
			bin = n - 1
		}
		counts[bin]++
		sums[bin] += d
	}
	bestBin, bestCount := -1, 0
	for i := 0; i < n; i++ {
		s := counts[i]
		if i > 0 {
			s += counts[i-1]
		}
		if i < n-1 {
			s += counts[i+1]
		}
		if s > bestCount {
			bestBin, bestCount = i, s
		}
	}
	if bestBin < 0 {
		return 0, 0
	}
	var sum float64
	for i := bestBin - 1; i <= bestBin+1; i++ {
		if i >= 0 && i < n {
			sum += sums[i]
		}
	}
	return sum / float64(bestCount), bestCount
}
