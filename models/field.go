package models

// Field is a physical playing area and the top-level container of a schedule.
type Field struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
	Color string `json:"color"`
}

// Position is the display position of a node inside its container.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FieldPalette is cycled through when fields are created without a color.
var FieldPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#14b8a6", "#f97316",
}

// PaletteColor returns the palette entry for the i-th field, wrapping around.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return FieldPalette[i%len(FieldPalette)]
}
