package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/dvdsaver/bounce"
)

// cellRect is a block of cells, inclusive of X0/Y0 and exclusive of X1/Y1.
type cellRect struct {
	X0, Y0, X1, Y1 int
}

// logoCells maps the logo's logical box to terminal cells. Column 0 is the
// left edge and row 0 the top edge; logical +y is up.
func logoCells(s bounce.State, cfg Config, cols, rows int) cellRect {
	size := s.Size()
	halfW := float32(cols) * cfg.CellWidth / 2
	halfH := float32(rows) * cfg.CellHeight / 2

	left := (s.Position.X - size.X/2 + halfW) / cfg.CellWidth
	right := (s.Position.X + size.X/2 + halfW) / cfg.CellWidth
	top := (halfH - (s.Position.Y + size.Y/2)) / cfg.CellHeight
	bottom := (halfH - (s.Position.Y - size.Y/2)) / cfg.CellHeight

	r := cellRect{
		X0: int(math.Round(float64(left))),
		X1: int(math.Round(float64(right))),
		Y0: int(math.Round(float64(top))),
		Y1: int(math.Round(float64(bottom))),
	}
	r.X0, r.X1 = max(r.X0, 0), min(r.X1, cols)
	r.Y0, r.Y1 = max(r.Y0, 0), min(r.Y1, rows)
	return r
}

func (h *Host) draw() {
	bg := tcell.StyleDefault
	if h.cfg.Background.A != 0 {
		c := h.cfg.Background
		bg = bg.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	h.screen.SetStyle(bg)
	h.screen.Clear()

	cols, rows := h.screen.Size()
	r := logoCells(h.state, h.cfg, cols, rows)
	fill := cellColor(h.state.Color)
	block := bg.Background(fill).Foreground(tcell.ColorBlack)
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			h.screen.SetContent(x, y, ' ', nil, block)
		}
	}

	label := []rune(h.cfg.Label)
	if w := r.X1 - r.X0; w >= len(label) && r.Y1 > r.Y0 {
		y := r.Y0 + (r.Y1-r.Y0)/2
		x := r.X0 + (w-len(label))/2
		for i, ch := range label {
			h.screen.SetContent(x+i, y, ch, nil, block.Bold(true))
		}
	}
	h.screen.Show()
}
