// Package export renders stored runs as standalone SVG images.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/docksim/internal/rendezvous"
	"github.com/san-kum/docksim/internal/storage"
)

const (
	chaseStroke  = "#00ccff"
	targetStroke = "#888899"
	markColor    = "#ff00ff"
)

type point struct{ X, Y float64 }

type bounds struct {
	minX, maxX, minY, maxY float64
}

func (b *bounds) add(p point) {
	b.minX, b.maxX = math.Min(b.minX, p.X), math.Max(b.maxX, p.X)
	b.minY, b.maxY = math.Min(b.minY, p.Y), math.Max(b.maxY, p.Y)
}

// pad grows the box by 10% on each side and makes it square so distances
// are not distorted.
func (b *bounds) pad() {
	span := math.Max(b.maxX-b.minX, b.maxY-b.minY)
	if span == 0 {
		span = 1
	}
	cx, cy := (b.minX+b.maxX)/2, (b.minY+b.maxY)/2
	half := span * 0.6
	b.minX, b.maxX = cx-half, cx+half
	b.minY, b.maxY = cy-half, cy+half
}

// ApproachSVG draws the chase and target paths of a stored run together with
// the final standoff point. It returns "" when the trace has fewer than two
// samples.
func ApproachSVG(trace *storage.Trace, width, height int) string {
	if trace == nil || len(trace.States) < 2 {
		return ""
	}

	chase := make([]point, len(trace.States))
	target := make([]point, len(trace.States))
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for i, s := range trace.States {
		chase[i] = point{s[0], s[1]}
		target[i] = point{s[3], s[4]}
		b.add(chase[i])
		b.add(target[i])
	}

	last := trace.States[len(trace.States)-1]
	sp := rendezvous.Standoff(rendezvous.Pose{X: last[3], Y: last[4], Theta: last[5]})
	b.add(point{sp.X, sp.Y})
	b.pad()

	project := func(p point) (float64, float64) {
		x := (p.X - b.minX) / (b.maxX - b.minX) * float64(width)
		y := float64(height) - (p.Y-b.minY)/(b.maxY-b.minY)*float64(height)
		return x, y
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	writePath(&sb, target, targetStroke, project)
	writePath(&sb, chase, chaseStroke, project)

	x0, y0 := project(chase[0])
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="none" stroke="%s"/>
`, x0, y0, chaseStroke)
	x1, y1 := project(chase[len(chase)-1])
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, x1, y1, chaseStroke)
	tx, ty := project(target[len(target)-1])
	fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>
`, tx, ty, targetStroke)
	sx, sy := project(point{sp.X, sp.Y})
	fmt.Fprintf(&sb, `<path stroke="%s" stroke-width="2" d="M%.1f,%.1f h12 M%.1f,%.1f v12"/>
`, markColor, sx-6, sy, sx, sy-6)

	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, pts []point, stroke string, project func(point) (float64, float64)) {
	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
	for i, p := range pts {
		x, y := project(p)
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString(`"/>
`)
}
