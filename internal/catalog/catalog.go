package catalog

// Language is one entry in the fixed language catalog.
type Language struct {
	// ID is the immutable catalog token, e.g. "french".
	ID string

	// Name is the English display name.
	Name string

	// Flag is the flag glyph shown next to the name.
	Flag string
}

// Languages is the fixed, ordered catalog of learnable languages.
// Defined at process start and never mutated.
var Languages = []Language{
	{ID: "armenian", Name: "Armenian", Flag: "🇦🇲"},
	{ID: "english", Name: "English", Flag: "🇺🇸"},
	{ID: "french", Name: "French", Flag: "🇫🇷"},
	{ID: "german", Name: "German", Flag: "🇩🇪"},
	{ID: "italian", Name: "Italian", Flag: "🇮🇹"},
	{ID: "japanese", Name: "Japanese", Flag: "🇯🇵"},
	{ID: "korean", Name: "Korean", Flag: "🇰🇷"},
	{ID: "mandarin", Name: "Mandarin", Flag: "🇨🇳"},
	{ID: "portuguese", Name: "Portuguese", Flag: "🇵🇹"},
	{ID: "russian", Name: "Russian", Flag: "🇷🇺"},
	{ID: "spanish", Name: "Spanish", Flag: "🇪🇸"},
}

// ByID returns the catalog entry for id, or false if id is unknown.
func ByID(id string) (Language, bool) {
	for _, l := range Languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// Levels are the learner proficiency levels offered across all views.
var Levels = []string{"Beginner", "Intermediate", "Advanced"}
