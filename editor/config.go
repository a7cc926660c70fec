package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // display width of '\t'; default 4
	Style        Style

	// Key bindings; zero value means DefaultKeyMap.
	KeyMap KeyMap

	// OnChange is invoked after every effective text mutation.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if !c.KeyMap.valid() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
