package widget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Color names of the table. They resolve to base theme colors unless
// overridden with Theme.SetColor.
const (
	ColorNameTableBackground       fyne.ThemeColorName = "keyedTableBackground"
	ColorNameTableBorder           fyne.ThemeColorName = "keyedTableBorder"
	ColorNameTableForeground       fyne.ThemeColorName = "keyedTableForeground"
	ColorNameHeaderRowBackground   fyne.ThemeColorName = "keyedTableHeaderRowBackground"
	ColorNameHeaderRowBorder       fyne.ThemeColorName = "keyedTableHeaderRowBorder"
	ColorNameHeaderRowForeground   fyne.ThemeColorName = "keyedTableHeaderRowForeground"
	ColorNameStripedRowBackground  fyne.ThemeColorName = "keyedTableStripedRowBackground"
	ColorNamePlaceholderForeground fyne.ThemeColorName = "keyedTablePlaceholderForeground"
)

// baseColors maps each table color to the base theme color it follows.
var baseColors = map[fyne.ThemeColorName]fyne.ThemeColorName{
	ColorNameTableBackground:       theme.ColorNameBackground,
	ColorNameTableBorder:           theme.ColorNameForeground,
	ColorNameTableForeground:       theme.ColorNameForeground,
	ColorNameHeaderRowBackground:   theme.ColorNamePrimary,
	ColorNameHeaderRowBorder:       theme.ColorNameForegroundOnPrimary,
	ColorNameHeaderRowForeground:   theme.ColorNameForegroundOnPrimary,
	ColorNameStripedRowBackground:  theme.ColorNameHover,
	ColorNamePlaceholderForeground: theme.ColorNamePlaceHolder,
}

// Theme wraps a base theme and adds the table color names. Overrides set
// on base color names also apply to the table colors that follow them.
type Theme struct {
	base     fyne.Theme
	colors   map[fyne.ThemeColorName]color.Color
	variants map[fyne.ThemeVariant]map[fyne.ThemeColorName]color.Color
	sizes    map[fyne.ThemeSizeName]float32
}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme wraps base; a nil base selects the default theme.
func NewTheme(base fyne.Theme) *Theme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &Theme{
		base:     base,
		colors:   make(map[fyne.ThemeColorName]color.Color),
		variants: make(map[fyne.ThemeVariant]map[fyne.ThemeColorName]color.Color),
		sizes: map[fyne.ThemeSizeName]float32{
			theme.SizeNameSeparatorThickness: 1,
		},
	}
}

// SetColor overrides a color for every variant.
func (t *Theme) SetColor(name fyne.ThemeColorName, c color.Color) {
	t.colors[name] = c
}

// SetVariantColor overrides a color for one variant. It takes precedence
// over SetColor.
func (t *Theme) SetVariantColor(name fyne.ThemeColorName, variant fyne.ThemeVariant, c color.Color) {
	if t.variants[variant] == nil {
		t.variants[variant] = make(map[fyne.ThemeColorName]color.Color)
	}
	t.variants[variant][name] = c
}

// SetSize overrides a size.
func (t *Theme) SetSize(name fyne.ThemeSizeName, size float32) {
	t.sizes[name] = size
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := t.variants[variant][name]; ok {
		return c
	}
	if c, ok := t.colors[name]; ok {
		return c
	}
	if base, ok := baseColors[name]; ok {
		return t.Color(base, variant)
	}
	return t.base.Color(name, variant)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := t.sizes[name]; ok {
		return size
	}
	return t.base.Size(name)
}

// themeColor resolves a table color for w. Without a Theme installed the
// table colors fall back to their base theme colors.
func themeColor(name fyne.ThemeColorName, w fyne.Widget) color.Color {
	if _, ok := fyne.CurrentApp().Settings().Theme().(*Theme); ok {
		return theme.ColorForWidget(name, w)
	}
	if base, ok := baseColors[name]; ok {
		return theme.ColorForWidget(base, w)
	}
	return theme.ColorForWidget(name, w)
}
