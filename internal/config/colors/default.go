package colors

// Default returns the default color scheme (green felt with a sage selection)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Background: "#1C1C1C",
		Accent:     "#99CC80",

		// Buttons
		ButtonBg:   "#2C2C2E",
		SelectedBg: "#99CC80",

		// Strokes
		Border:        "#000000",
		PressedBorder: "#585858",

		// Text
		Text:         "#E5E5EA",
		SelectedText: "#1C1C1C",
		Subtle:       "#8E8E93",
	}
}
