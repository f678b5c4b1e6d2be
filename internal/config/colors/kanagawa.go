package colors

// Kanagawa palette entries used by the wave, dragon and lotus presets.
var palette = struct {
	sumiInk1, sumiInk3, sumiInk4, sumiInk6 string
	fujiWhite, fujiGray, springGreen       string
	oniViolet, crystalBlue                 string

	dragonBlack1, dragonBlack3, dragonBlack5 string
	dragonWhite, dragonGray, dragonGreen2    string
	dragonViolet, dragonAsh                  string

	lotusWhite3, lotusWhite5, lotusInk1 string
	lotusGray3, lotusGreen, lotusViolet4 string
	lotusBlue4                           string
}{
	sumiInk1:    "#1F1F28",
	sumiInk3:    "#2A2A37",
	sumiInk4:    "#363646",
	sumiInk6:    "#54546D",
	fujiWhite:   "#DCD7BA",
	fujiGray:    "#727169",
	springGreen: "#98BB6C",
	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",

	dragonBlack1: "#0D0C0C",
	dragonBlack3: "#181616",
	dragonBlack5: "#393836",
	dragonWhite:  "#C5C9C5",
	dragonGray:   "#A6A69C",
	dragonGreen2: "#8A9A7B",
	dragonViolet: "#8992A7",
	dragonAsh:    "#737C73",

	lotusWhite3:  "#F2ECBC",
	lotusWhite5:  "#E4D794",
	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusGreen:   "#6F894E",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset:        "wave",
		Background:    palette.sumiInk1,
		Accent:        palette.oniViolet,
		ButtonBg:      palette.sumiInk3,
		SelectedBg:    palette.springGreen,
		Border:        palette.sumiInk4,
		PressedBorder: palette.crystalBlue,
		Text:          palette.fujiWhite,
		SelectedText:  palette.sumiInk1,
		Subtle:        palette.fujiGray,
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset:        "dragon",
		Background:    palette.dragonBlack1,
		Accent:        palette.dragonViolet,
		ButtonBg:      palette.dragonBlack3,
		SelectedBg:    palette.dragonGreen2,
		Border:        palette.dragonBlack5,
		PressedBorder: palette.dragonAsh,
		Text:          palette.dragonWhite,
		SelectedText:  palette.dragonBlack1,
		Subtle:        palette.dragonGray,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset:        "lotus",
		Background:    palette.lotusWhite3,
		Accent:        palette.lotusViolet4,
		ButtonBg:      palette.lotusWhite5,
		SelectedBg:    palette.lotusGreen,
		Border:        palette.lotusInk1,
		PressedBorder: palette.lotusBlue4,
		Text:          palette.lotusInk1,
		SelectedText:  palette.lotusWhite3,
		Subtle:        palette.lotusGray3,
	}
}
