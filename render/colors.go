package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
)

// Tokyo Night base colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbNeutral    = tcell.NewRGBColor(59, 66, 97)
	RgbBlocked    = tcell.NewRGBColor(86, 95, 137)
	RgbText       = tcell.NewRGBColor(192, 202, 245)
	RgbCursor     = tcell.NewRGBColor(224, 175, 104)

	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
)

// playerRGB is indexed by PlayerID, the human player is blue
var playerRGB = [...][3]int32{
	{122, 162, 247}, // blue
	{247, 118, 142}, // red
	{158, 206, 106}, // green
	{224, 175, 104}, // orange
	{187, 154, 247}, // purple
	{125, 207, 255}, // cyan
	{255, 158, 100}, // amber
	{169, 177, 214}, // grey
}

// PlayerColor returns a player's color scaled by tile strength
// Strength five is the full color, strength one is dimmest
func PlayerColor(p core.PlayerID, s component.Strength) tcell.Color {
	rgb := playerRGB[int(p)%len(playerRGB)]
	scale := 0.35 + 0.65*float64(s)/float64(component.StrengthMax)
	return tcell.NewRGBColor(
		int32(float64(rgb[0])*scale),
		int32(float64(rgb[1])*scale),
		int32(float64(rgb[2])*scale),
	)
}

// TileStyle is the cell style for a tile
func TileStyle(owner core.PlayerID, s component.Strength, terrain component.Terrain) tcell.Style {
	switch {
	case terrain == component.TerrainNonColorable:
		return StyleBackground.Foreground(RgbBlocked)
	case s == component.StrengthNeutral:
		return StyleBackground.Foreground(RgbNeutral)
	default:
		return StyleBackground.Background(PlayerColor(owner, s)).Foreground(RgbBackground)
	}
}

// Glyphs
const (
	GlyphNeutral = '·'
	GlyphBlocked = '█'
)

// strengthGlyph is indexed by Strength
var strengthGlyph = [...]rune{GlyphNeutral, '1', '2', '3', '4', '5'}

// TileGlyph is the rune drawn for a tile
func TileGlyph(s component.Strength, terrain component.Terrain) rune {
	if terrain == component.TerrainNonColorable {
		return GlyphBlocked
	}
	if int(s) < len(strengthGlyph) {
		return strengthGlyph[s]
	}
	return '?'
}

// kindGlyph is indexed by emitter Kind
var kindGlyph = [emitter.KindCount]rune{'P', 'S', 'L', 'N', 'F', 'E'}

// KindGlyph is the rune drawn for an emitter
func KindGlyph(k emitter.Kind) rune {
	if k >= emitter.KindCount {
		return '?'
	}
	return kindGlyph[k]
}
