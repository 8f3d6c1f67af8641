package catalog

import "testing"

func TestBadgeForKnownSlug(t *testing.T) {
	b := BadgeFor("gaming")
	if b.Glyph == "" || b == fallbackBadge {
		t.Errorf("gaming badge = %+v, want a dedicated badge", b)
	}
}

func TestBadgeForUnknownSlugFallsBack(t *testing.T) {
	if got := BadgeFor("no-such-slug"); got != fallbackBadge {
		t.Errorf("unknown slug badge = %+v, want fallback", got)
	}
}

func TestEveryBadgeHasGlyphAndColor(t *testing.T) {
	for slug, b := range badges {
		if b.Glyph == "" || b.Color == "" {
			t.Errorf("badge %q incomplete: %+v", slug, b)
		}
	}
}
