package terrain

import "pixelfolio.dev/internal/models"

// Palette maps tile kinds and overlay objects to glyphs and colors
type Palette struct {
	Glyphs map[Kind]string
	Colors map[Kind]string

	Star   string
	Avatar string
	Hat    string
	Icons  map[string]string // landmark icon tag -> glyph
}

// DefaultPalette returns the standard palette colored with the world theme
func DefaultPalette(theme models.Theme) *Palette {
	return &Palette{
		Glyphs: map[Kind]string{
			Grass:  ",",
			Path:   ".",
			Flower: "*",
			Tree:   "T",
		},
		Colors: map[Kind]string{
			Grass:  theme.Pine,
			Path:   "#3b5b4a",
			Flower: theme.Lime,
			Tree:   "#2a5a46",
		},
		Star:   "+",
		Avatar: "@",
		Hat:    "A",
		Icons: map[string]string{
			"terminal": "#",
			"rocket":   "^",
			"shop":     "$",
		},
	}
}

// Icon returns the glyph for a landmark icon tag
func (p *Palette) Icon(tag string) string {
	if g, ok := p.Icons[tag]; ok {
		return g
	}
	return "?"
}

// Render converts the grid into glyph/color pairs row by row
func (g *Grid) Render(p *Palette) [][]models.RenderedTile {
	rows := make([][]models.RenderedTile, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]models.RenderedTile, g.Width)
		for x := 0; x < g.Width; x++ {
			k := g.Tiles[y][x]
			rows[y][x] = models.RenderedTile{
				Character: p.Glyphs[k],
				Color:     p.Colors[k],
			}
		}
	}
	return rows
}
