package catalog

// Badge is the display asset pair for a category: a glyph and a color
// token resolved by the theme.
type Badge struct {
	Glyph string
	Color string
}

// badges is the fixed slug → asset mapping. Unrecognized slugs fall
// back to fallbackBadge rather than erroring.
var badges = map[string]Badge{
	"gaming":    {Glyph: "🎮", Color: "secondary"},
	"tech":      {Glyph: "💻", Color: "primary"},
	"meme":      {Glyph: "😂", Color: "accent"},
	"social":    {Glyph: "💬", Color: "success"},
	"fandom":    {Glyph: "⭐", Color: "accent"},
	"lifestyle": {Glyph: "🍜", Color: "secondary"},
	"work":      {Glyph: "💼", Color: "primary"},
}

var fallbackBadge = Badge{Glyph: "📖", Color: "dim"}

// BadgeFor returns the badge for a category slug, falling back to a
// neutral badge for unknown slugs.
func BadgeFor(slug string) Badge {
	if b, ok := badges[slug]; ok {
		return b
	}
	return fallbackBadge
}
