package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	kwidget "github.com/magpierre/fyne-keyedtable/widget"
)

var (
	materialBlue = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	lightBlue    = color.NRGBA{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}
	hoverBlue    = color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff}
)

var lightPalette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:              color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
	theme.ColorNameButton:                  materialBlue,
	theme.ColorNamePrimary:                 materialBlue,
	theme.ColorNameHover:                   hoverBlue,
	theme.ColorNameFocus:                   color.NRGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff},
	theme.ColorNameForeground:              color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
	theme.ColorNameInputBackground:         color.White,
	theme.ColorNameSelection:               color.NRGBA{R: 0xbb, G: 0xde, B: 0xfb, A: 0xff},
	kwidget.ColorNameHeaderRowForeground:   color.White,
	kwidget.ColorNameStripedRowBackground:  color.NRGBA{R: 0xe8, G: 0xf1, B: 0xfb, A: 0xff},
	kwidget.ColorNamePlaceholderForeground: color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff},
}

var darkPalette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:             color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
	theme.ColorNameButton:                 lightBlue,
	theme.ColorNamePrimary:                lightBlue,
	theme.ColorNameHover:                  hoverBlue,
	theme.ColorNameFocus:                  color.NRGBA{R: 0x90, G: 0xca, B: 0xf9, A: 0xff},
	theme.ColorNameForeground:             color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	theme.ColorNameInputBackground:        color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff},
	theme.ColorNameSelection:              color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	kwidget.ColorNameHeaderRowForeground:  color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
	kwidget.ColorNameStripedRowBackground: color.NRGBA{R: 0x26, G: 0x2b, B: 0x33, A: 0xff},
}

// newAppTheme returns the application theme: the material palette per
// variant on top of the default theme, with the keyed table colors.
func newAppTheme() *kwidget.Theme {
	th := kwidget.NewTheme(theme.DefaultTheme())
	for name, c := range lightPalette {
		th.SetVariantColor(name, theme.VariantLight, c)
	}
	for name, c := range darkPalette {
		th.SetVariantColor(name, theme.VariantDark, c)
	}
	th.SetSize(theme.SizeNamePadding, 6)
	th.SetSize(theme.SizeNameScrollBar, 12)
	return th
}
