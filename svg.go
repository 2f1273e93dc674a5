package scaffoldmaker

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/msan126/scaffoldmaker/colon"
)

// RingSvgPath converts a ring to a closed SVG path of cubic Bezier segments, using the
// x and y coordinates of its points.
func RingSvgPath(r colon.Ring) string {
	n := r.Len()
	if n == 0 {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "M%f,%f", r.X[0].X, r.X[0].Y)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p0, d0, p1, d1 := r.X[i], r.D1[i], r.X[j], r.D1[j]
		// Hermite to Bezier control points
		fmt.Fprintf(buf, " C%f,%f %f,%f %f,%f",
			p0.X+d0.X/3, p0.Y+d0.Y/3, p1.X-d1.X/3, p1.Y-d1.Y/3, p1.X, p1.Y)
	}
	buf.WriteString(" Z")
	return buf.String()
}

// WriteSvg writes an SVG file drawing the rings as outlines of a specified color
// (#rrggbb). The view box fits all rings with a small margin.
func WriteSvg(w io.Writer, rings []colon.Ring, color string) error {
	if color == "" {
		color = "#000000"
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rings {
		for _, p := range r.X {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	dx, dy := maxX-minX, maxY-minY
	margin := 0.05 * math.Max(dx, dy)
	minX, minY = minX-margin, minY-margin
	dx, dy = dx+2*margin, dy+2*margin
	stroke := 0.005 * math.Max(dx, dy)

	fmt.Fprintf(w, `<?xml version="1.0" standalone="no"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="%f %f %f %f" preserveAspectRatio="xMidYMid meet">
<g fill="none" stroke="%s" stroke-width="%f">%s`,
		minX, minY, dx, dy, color, stroke, "\n")
	for _, r := range rings {
		fmt.Fprintf(w, "<path d=\"%s\"/>\n", RingSvgPath(r))
	}
	_, err := fmt.Fprintln(w, `</g></svg>`)
	return err
}
