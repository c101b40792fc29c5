package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Focus
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`

	// Column drag
	PickUp string `yaml:"pick_up"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Column width
	Widen  string `yaml:"widen"`
	Narrow string `yaml:"narrow"`

	// Quality
	QualityUp   string `yaml:"quality_up"`
	QualityDown string `yaml:"quality_down"`

	// Other
	ToggleFooter string `yaml:"toggle_footer"`
	ShowHelp     string `yaml:"show_help"`
	Quit         string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevRow:    "k",
		NextRow:    "j",

		PickUp: " ",
		Drop:   "enter",
		Cancel: "esc",

		Widen:  ">",
		Narrow: "<",

		QualityUp:   "+",
		QualityDown: "-",

		ToggleFooter: "f",
		ShowHelp:     "?",
		Quit:         "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevRow, d.PrevRow)
	fill(&k.NextRow, d.NextRow)
	fill(&k.PickUp, d.PickUp)
	fill(&k.Drop, d.Drop)
	fill(&k.Cancel, d.Cancel)
	fill(&k.Widen, d.Widen)
	fill(&k.Narrow, d.Narrow)
	fill(&k.QualityUp, d.QualityUp)
	fill(&k.QualityDown, d.QualityDown)
	fill(&k.ToggleFooter, d.ToggleFooter)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
