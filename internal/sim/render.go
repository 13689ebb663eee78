package sim

import (
	"fmt"

	"github.com/pkoval/daynight/internal/core"
)

// Visual characters for rendering
const (
	DayChar   = '░'
	NightChar = '█'
	OrbChar   = '●'
	TrailChar = '·'
)

// RenderOptions control the optional layers of the grid view.
type RenderOptions struct {
	GridLines bool // draw a border around the grid
	Trails    bool // mark each entity's previous position
}

// Render draws the counts HUD and the grid with its entities into the
// screen buffer. The grid is centered in the space below the HUD row;
// cells outside the buffer are clipped by the screen itself.
func (s *Simulation) Render(dst *core.Screen, opts RenderOptions) {
	dst.Clear()

	hud := fmt.Sprintf("day %d · night %d · tick %d", s.dayCount, s.nightCount, s.tick)
	dst.DrawTextCentered(0, hud, core.ColorFrame)

	ox := (dst.Width() - s.grid.W) / 2
	oy := 1 + (dst.Height()-1-s.grid.H)/2
	if ox < 0 {
		ox = 0
	}
	if oy < 1 {
		oy = 1
	}

	if opts.GridLines {
		dst.DrawBox(core.NewRect(ox-1, oy-1, s.grid.W+2, s.grid.H+2), core.ColorFrame)
	}

	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			if s.grid.at(x, y) == Night {
				dst.SetCell(ox+x, oy+y, NightChar, core.ColorNight)
			} else {
				dst.SetCell(ox+x, oy+y, DayChar, core.ColorDay)
			}
		}
	}

	for _, e := range s.entities {
		if opts.Trails && (e.PX != e.X || e.PY != e.Y) {
			dst.SetCell(ox+e.PX, oy+e.PY, TrailChar, core.ColorTrail)
		}
		color := core.ColorDayOrb
		if e.Type == Night {
			color = core.ColorNightOrb
		}
		dst.SetCell(ox+e.X, oy+e.Y, OrbChar, color)
	}
}
