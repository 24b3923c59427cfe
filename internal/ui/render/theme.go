package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/wend-cli/wend/internal/config"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	HiddenFg    tcell.Color
	SelectedFg  tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
	FlashBg     tcell.Color
	FlashFg     tcell.Color
}

// defaultColorTheme returns the built-in color scheme.
func defaultColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectedFg:  tcell.Color214,
		CursorBg:    tcell.Color33,
		CursorFg:    tcell.ColorWhite,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
		FlashBg:     tcell.ColorGreen,
		FlashFg:     tcell.ColorBlack,
	}
}

// ThemeFromConfig overlays configured colors onto the defaults. Color names
// are anything tcell understands: W3C names or #rrggbb.
func ThemeFromConfig(cfg *config.Config) ColorTheme {
	theme := defaultColorTheme()
	if cfg == nil {
		return theme
	}
	overlayColor(&theme.DirectoryFg, cfg.Theme.Directory)
	overlayColor(&theme.SymlinkFg, cfg.Theme.Symlink)
	overlayColor(&theme.SelectedFg, cfg.Theme.Selected)
	overlayColor(&theme.HiddenFg, cfg.Theme.Hidden)
	overlayColor(&theme.CursorFg, cfg.Theme.CursorFg)
	overlayColor(&theme.CursorBg, cfg.Theme.CursorBg)
	return theme
}

func overlayColor(dst *tcell.Color, name string) {
	if name == "" {
		return
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		*dst = c
	}
}
