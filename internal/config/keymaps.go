package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Pips
	Pip2 string `yaml:"pip_2"`
	Pip3 string `yaml:"pip_3"`
	Pip4 string `yaml:"pip_4"`
	Pip5 string `yaml:"pip_5"`
	Pip6 string `yaml:"pip_6"`

	// Quantity
	PrevQuantity string `yaml:"prev_quantity"`
	NextQuantity string `yaml:"next_quantity"`
	ScrollLeft   string `yaml:"scroll_left"`
	ScrollRight  string `yaml:"scroll_right"`

	// Reset clears the bid and scrolls back to 1
	Reset string `yaml:"reset"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Pip2: "2",
		Pip3: "3",
		Pip4: "4",
		Pip5: "5",
		Pip6: "6",

		PrevQuantity: "h",
		NextQuantity: "l",
		ScrollLeft:   "[",
		ScrollRight:  "]",

		Reset: "r",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// PipKeys returns the pip bindings indexed by face, 2 through 6.
func (k KeyMappings) PipKeys() map[int]string {
	return map[int]string{2: k.Pip2, 3: k.Pip3, 4: k.Pip4, 5: k.Pip5, 6: k.Pip6}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fields := []struct {
		value *string
		def   string
	}{
		{&k.Pip2, defaults.Pip2},
		{&k.Pip3, defaults.Pip3},
		{&k.Pip4, defaults.Pip4},
		{&k.Pip5, defaults.Pip5},
		{&k.Pip6, defaults.Pip6},
		{&k.PrevQuantity, defaults.PrevQuantity},
		{&k.NextQuantity, defaults.NextQuantity},
		{&k.ScrollLeft, defaults.ScrollLeft},
		{&k.ScrollRight, defaults.ScrollRight},
		{&k.Reset, defaults.Reset},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, f := range fields {
		if *f.value == "" {
			*f.value = f.def
		}
	}
}
