package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/theme"
)

// Tabs is a horizontal category tab bar cycled with left/right keys.
type Tabs struct {
	Labels   []string // display labels, parallel to Slugs
	Slugs    []string
	Selected int
}

// NewTabs builds a tab bar from category slugs and a slug→label
// resolver. The first slug is selected.
func NewTabs(slugs []string, label func(slug string) string) Tabs {
	labels := make([]string, len(slugs))
	for i, slug := range slugs {
		labels[i] = label(slug)
	}
	return Tabs{Labels: labels, Slugs: slugs}
}

// Next moves the selection right, wrapping around.
func (t *Tabs) Next() {
	if len(t.Slugs) == 0 {
		return
	}
	t.Selected = (t.Selected + 1) % len(t.Slugs)
}

// Prev moves the selection left, wrapping around.
func (t *Tabs) Prev() {
	if len(t.Slugs) == 0 {
		return
	}
	t.Selected = (t.Selected - 1 + len(t.Slugs)) % len(t.Slugs)
}

// Slug returns the selected category slug.
func (t Tabs) Slug() string {
	if t.Selected < 0 || t.Selected >= len(t.Slugs) {
		return catalog.CategoryAll
	}
	return t.Slugs[t.Selected]
}

// View renders the tab bar with category badges.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		badge := catalog.BadgeFor(t.Slugs[i])
		text := badge.Glyph + " " + label
		if i == t.Selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BadgeColor(badge.Color)).
				Bold(true).
				Underline(true).
				Render(text))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(text))
		}
	}
	return strings.Join(parts, "  │  ")
}
