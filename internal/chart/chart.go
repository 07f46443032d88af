// Package chart renders shot charts as SVG: an NCAA court diagram with made
// shots drawn as green circles and missed shots as red crosses.
package chart

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/fortuna/courtside/internal/store"
)

// Court geometry in feet, full court with the origin at center court. This
// matches the coordinate system the play-by-play feed uses for shots.
const (
	courtLength = 94.0
	courtWidth  = 50.0
	halfLength  = courtLength / 2
	halfWidth   = courtWidth / 2

	laneWidth     = 12.0
	laneDepth     = 19.0 // baseline to free-throw line
	rimOffset     = 5.25 // baseline to rim center
	rimRadius     = 0.75
	backboardWide = 6.0
	backboardOff  = 4.0 // baseline to backboard
	centerRadius  = 6.0
	arcRadius     = 22.15 // three-point arc
)

// Canvas layout in pixels.
const (
	width     = 940
	height    = 600
	marginX   = 20
	marginTop = 80
	courtPxW  = width - 2*marginX
	scale     = float64(courtPxW) / courtLength
)

const (
	courtStyle = "fill:none;stroke:#333;stroke-width:2"
	makeStyle  = "fill:#2e8b57;fill-opacity:0.8;stroke:white;stroke-width:1"
	missStyle  = "stroke:#d9534f;stroke-width:2.5;stroke-opacity:0.8"
)

// vmap maps one range into another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// px maps a court x coordinate (feet, center origin) to canvas pixels.
func px(x float64) int {
	return int(vmap(x, -halfLength, halfLength, marginX, width-marginX))
}

// py maps a court y coordinate to canvas pixels. SVG y grows downward, so
// the range is flipped.
func py(y float64) int {
	courtPxH := courtWidth * scale
	return int(vmap(y, -halfWidth, halfWidth, marginTop+courtPxH, marginTop))
}

func ft(v float64) int {
	return int(v * scale)
}

// Render draws the court and the shot set and returns the SVG document.
func Render(title string, makes, misses []store.ShotAttempt) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	drawCourt(canvas)

	for _, shot := range makes {
		canvas.Circle(px(shot.CoordinateX), py(shot.CoordinateY), 6, makeStyle)
	}
	for _, shot := range misses {
		drawCross(canvas, px(shot.CoordinateX), py(shot.CoordinateY), 6)
	}

	canvas.Gstyle("font-family:Helvetica,Arial,sans-serif")
	canvas.Text(width/2, 30, title, "text-anchor:middle;font-size:20px;font-weight:bold;fill:#1e3c72")

	// Legend
	canvas.Circle(marginX+10, 55, 6, makeStyle)
	canvas.Text(marginX+24, 60, fmt.Sprintf("Made (%d)", len(makes)), "font-size:14px;fill:#333")
	drawCross(canvas, marginX+130, 55, 6)
	canvas.Text(marginX+144, 60, fmt.Sprintf("Miss (%d)", len(misses)), "font-size:14px;fill:#333")
	canvas.Gend()

	canvas.End()
	return buf.Bytes()
}

// drawCourt draws the full-court diagram: boundary, half-court circle, and
// a lane, backboard, rim and three-point arc at each end.
func drawCourt(canvas *svg.SVG) {
	canvas.Rect(px(-halfLength), py(halfWidth), ft(courtLength), ft(courtWidth), courtStyle)
	canvas.Line(px(0), py(-halfWidth), px(0), py(halfWidth), courtStyle)
	canvas.Circle(px(0), py(0), ft(centerRadius), courtStyle)

	for _, side := range []float64{-1, 1} {
		baseline := side * halfLength
		ftLine := side * (halfLength - laneDepth)
		rimX := side * (halfLength - rimOffset)
		boardX := side * (halfLength - backboardOff)

		// Lane
		canvas.Rect(
			min(px(baseline), px(ftLine)), py(laneWidth/2),
			ft(laneDepth), ft(laneWidth), courtStyle)

		// Free-throw circle
		canvas.Circle(px(ftLine), py(0), ft(centerRadius), courtStyle)

		// Backboard and rim
		canvas.Line(px(boardX), py(-backboardWide/2), px(boardX), py(backboardWide/2), courtStyle)
		canvas.Circle(px(rimX), py(0), ft(rimRadius), courtStyle)

		// Three-point arc, drawn from sideline to sideline around the rim
		startX, startY := rimX, arcRadius
		endX, endY := rimX, -arcRadius
		canvas.Arc(px(startX), py(startY), ft(arcRadius), ft(arcRadius), 0,
			false, side > 0, px(endX), py(endY), courtStyle)
	}
}

// drawCross draws an X marker centered at (x, y).
func drawCross(canvas *svg.SVG, x, y, r int) {
	canvas.Line(x-r, y-r, x+r, y+r, missStyle)
	canvas.Line(x-r, y+r, x+r, y-r, missStyle)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
