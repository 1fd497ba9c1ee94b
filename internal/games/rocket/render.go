package rocket

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket/sim"
)

// Visual characters for rendering
const (
	RocketChar    = '▲'
	FlameChar     = '*'
	WreckChar     = 'X'
	ObstacleFill  = '░'
	CorridorChar  = '┄'
	SurfaceChar   = '▀'
	StarChar      = '·'
	MinPlayWidth  = 24
	MinPlayHeight = 8
)

// obstacleFrames cycle as an obstacle spins.
var obstacleFrames = []rune{'◐', '◓', '◑', '◒'}

// earthTexture scrolls along the surface as the Earth turns.
var earthTexture = []rune("▓▓▒░ ░▒▓▓▓▒▒░  ░░▒▓▒░ ")

// Viewport maps world X/Y onto a rectangle of screen cells.
// The side view drops Z; every entity shares the rocket's lane.
type Viewport struct {
	X, Y, W, H int
	MinX, MaxX float64
	MinY, MaxY float64
}

// Project converts a world position to a screen cell.
// Reports false when the position falls outside the viewport.
func (v Viewport) Project(p core.Vec3) (col, row int, ok bool) {
	if p.X < v.MinX || p.X > v.MaxX || p.Y < v.MinY || p.Y > v.MaxY {
		return 0, 0, false
	}
	col = v.X + int(math.Round((p.X-v.MinX)/(v.MaxX-v.MinX)*float64(v.W-1)))
	row = v.Y + v.H - 1 - int(math.Round((p.Y-v.MinY)/(v.MaxY-v.MinY)*float64(v.H-1)))
	return col, row, true
}

// cellsPerUnit returns how many columns and rows one world unit spans.
func (v Viewport) cellsPerUnit() (cx, cy float64) {
	return float64(v.W-1) / (v.MaxX - v.MinX), float64(v.H-1) / (v.MaxY - v.MinY)
}

// viewport fits the playfield below the HUD row.
func (g *Game) viewport(dst *core.Screen) Viewport {
	top := g.cfg.Corridor.MaxY
	if g.cfg.Obstacles.MaxHeight > top {
		top = g.cfg.Obstacles.MaxHeight
	}
	return Viewport{
		X: 0, Y: 1,
		W: dst.Width(), H: dst.Height() - 1,
		MinX: g.cfg.Obstacles.LeftX - 1, MaxX: g.cfg.Obstacles.RightX + 1,
		MinY: -0.4, MaxY: top + 0.4,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if dst.Width() < MinPlayWidth || dst.Height() < MinPlayHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	vp := g.viewport(dst)
	snap := g.session.Snapshot()

	g.renderStars(dst, vp)
	g.renderEarth(dst, vp)
	g.renderCorridor(dst, vp)
	// Obstacles first so the rocket stays visible on top.
	var rocket sim.Rocket
	for _, e := range g.session.Entities() {
		switch e.Kind {
		case sim.KindObstacle:
			renderObstacle(dst, vp, e.Obstacle, snap.Elapsed)
		case sim.KindRocket:
			rocket = e.Rocket
		}
	}
	renderRocket(dst, vp, rocket)
	g.renderHUD(dst, snap)

	switch snap.Status {
	case sim.StatusPaused:
		renderOverlay(dst, "PAUSED", "P, Esc or click to resume", core.ColorYellow)
	case sim.StatusGameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d   R restart   Q quit", snap.Score), core.ColorRed)
	}
}

// renderStars draws a fixed star field turning with the Earth.
func (g *Game) renderStars(dst *core.Screen, vp Viewport) {
	cx := float64(vp.X) + float64(vp.W)/2
	cy := float64(vp.Y+vp.H) + float64(vp.H)/2 // Pivot below the screen, like the Earth's centre
	spin := g.earthAngle * math.Pi / 180

	for i := 0; i < 48; i++ {
		// Golden-angle spiral gives an even, deterministic spread
		angle := float64(i)*2.39996 + spin
		radius := float64(vp.H) * (0.6 + 1.4*float64(i%16)/16)
		x := int(math.Round(cx + math.Cos(angle)*radius*2))
		y := int(math.Round(cy - math.Abs(math.Sin(angle))*radius))
		if y >= vp.Y && y < vp.Y+vp.H && dst.Get(x, y) == ' ' {
			dst.SetColor(x, y, StarChar, core.ColorGray)
		}
	}
}

// renderEarth draws the surface at Y=0 with a texture that scrolls as the
// Earth turns.
func (g *Game) renderEarth(dst *core.Screen, vp Viewport) {
	_, surface, ok := vp.Project(core.V3(vp.MinX, 0, 0))
	if !ok {
		return
	}

	cx, _ := vp.cellsPerUnit()
	offset := int(g.earthAngle * math.Pi / 180 * EarthRadius * cx)

	n := len(earthTexture)
	for x := vp.X; x < vp.X+vp.W; x++ {
		dst.SetColor(x, surface, SurfaceChar, core.ColorBlue)
		for y := surface + 1; y < vp.Y+vp.H; y++ {
			r := earthTexture[((x+offset+y*3)%n+n)%n]
			dst.SetColor(x, y, r, core.ColorBlue)
		}
	}
}

// renderCorridor marks the floor and ceiling of the flight corridor.
func (g *Game) renderCorridor(dst *core.Screen, vp Viewport) {
	for _, y := range []float64{g.cfg.Corridor.MinY, g.cfg.Corridor.MaxY} {
		if _, row, ok := vp.Project(core.V3(vp.MinX, y, 0)); ok {
			for x := vp.X; x < vp.X+vp.W; x++ {
				if dst.Get(x, row) == ' ' {
					dst.SetColor(x, row, CorridorChar, core.ColorGray)
				}
			}
		}
	}
}

func renderObstacle(dst *core.Screen, vp Viewport, o sim.Obstacle, elapsed float64) {
	col, row, ok := vp.Project(o.Pos)
	if !ok {
		return
	}

	cx, cy := vp.cellsPerUnit()
	rx := o.Radius * cx
	ry := o.Radius * cy
	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			if rx > 0 && ry > 0 {
				fx, fy := float64(dx)/rx, float64(dy)/ry
				if fx*fx+fy*fy > 1 {
					continue
				}
			}
			dst.SetColor(col+dx, row+dy, ObstacleFill, core.ColorOrange)
		}
	}

	// Spin angle in degrees grows with simulated time
	angle := elapsed * 50 * o.RotationSpeed
	frame := int(angle/90) % len(obstacleFrames)
	dst.SetColor(col, row, obstacleFrames[frame], core.ColorOrange)
}

func renderRocket(dst *core.Screen, vp Viewport, r sim.Rocket) {
	col, row, ok := vp.Project(r.Pos)
	if !ok {
		return
	}

	if !r.Alive {
		dst.SetColor(col, row, WreckChar, core.ColorRed)
		return
	}

	dst.SetColor(col, row, RocketChar, core.ColorBrightWhite)
	if r.Velocity > 0 {
		dst.SetColor(col, row+1, FlameChar, core.ColorYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" SCORE %d   TIME %.1f   SPEED %.4f   OBSTACLES %d",
		snap.Score, snap.Elapsed, snap.Difficulty, len(snap.Obstacles))
	dst.DrawTextColor(0, 0, hud, core.ColorCyan)

	if g.warning != "" {
		dst.DrawTextColor(0, dst.Height()-1, g.warning, core.ColorRed)
	}
}

// renderOverlay draws a centred message box.
func renderOverlay(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := len([]rune(subtitle)) + 4
	if boxW > dst.Width() {
		boxW = dst.Width()
	}
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColor(titleX, boxY+1, title, c)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
