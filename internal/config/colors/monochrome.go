package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Background: "#121212",
		Accent:     "#FFFFFF",

		ButtonBg:   "#1C1C1C",
		SelectedBg: "#FFFFFF",

		Border:        "#808080",
		PressedBorder: "#FFFFFF",

		Text:         "#D0D0D0",
		SelectedText: "#000000",
		Subtle:       "#6C6C6C",
	}
}
