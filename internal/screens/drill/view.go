package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/components"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if !d.loaded {
		return theme.Hint.Render("\n  Loading sentence deck...")
	}
	if d.errMsg != "" {
		return lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("\n  Could not load the deck: " + d.errMsg + "\n\n  Press any key to go back.")
	}

	var sb strings.Builder

	sb.WriteString("  " + d.tabs.View() + "\n")
	if d.searching || d.search.Value() != "" {
		label := lipgloss.NewStyle().Foreground(theme.Secondary).Render("  Search: ")
		sb.WriteString(label + d.search.View() + "\n")
	}

	card, ok := catalog.CardAt(d.cards, d.cursor)
	if !ok {
		if len(d.deck) == 0 {
			sb.WriteString(theme.Hint.Render("\n  The deck is empty. Import some words first."))
		} else {
			sb.WriteString(theme.Hint.Render("\n  No sentences match this filter."))
		}
		return sb.String()
	}

	sb.WriteString("  " + d.renderInfoLine(card, width) + "\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  "+strings.Repeat("─", max(width-4, 0))) + "\n\n")

	prompt, reference := card.Zh, card.En
	promptLabel, refLabel := "Translate to English", "Reference translation"
	if d.direction == EnToZh {
		prompt, reference = card.En, card.Zh
		promptLabel, refLabel = "Translate to Chinese", "Reference sentence"
	}

	sb.WriteString("  " + theme.Hint.Render(promptLabel) + "\n")
	sb.WriteString("  " + theme.Hanzi.Render(prompt) + "\n\n")

	sb.WriteString("  " + d.input.View() + "\n")

	if d.revealed {
		sb.WriteString("\n  " + theme.Hint.Render(refLabel) + "\n")
		sb.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(reference) + "\n")
		if card.Note != "" {
			sb.WriteString("  " + theme.Hint.Render("note: "+card.Note) + "\n")
		}
	}

	sb.WriteString("\n" + d.renderDeckProgress(width))

	if d.statusMsg != "" {
		sb.WriteString("\n" + theme.Hint.Render("  "+d.statusMsg))
	}
	return sb.String()
}

// renderInfoLine shows the owning word, its category badge, and the
// position in the deck.
func (d *DrillScreen) renderInfoLine(card catalog.DrillCard, width int) string {
	badge := catalog.BadgeFor(card.CategorySlug)

	left := lipgloss.NewStyle().
		Foreground(theme.BadgeColor(badge.Color)).
		Bold(true).
		Render(fmt.Sprintf("%s %s", badge.Glyph, card.WordHanzi)) +
		theme.Hint.Render("  "+card.WordMeaning)

	dir := "中 → EN"
	if d.direction == EnToZh {
		dir = "EN → 中"
	}
	right := theme.Hint.Render(fmt.Sprintf("%s   %d/%d", dir, d.cursor.Pos()+1, d.cursor.Len()))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderDeckProgress shows how much of the deck has ever been
// completed, across sessions.
func (d *DrillScreen) renderDeckProgress(width int) string {
	done := 0
	for _, c := range d.deck {
		if d.session.Progress.IsDone(c.ID) {
			done++
		}
	}
	percent := 0.0
	if len(d.deck) > 0 {
		percent = float64(done) / float64(len(d.deck))
	}
	bar := components.NewProgressBar("  Deck", percent, true, max(width-8, 20))
	return bar.View()
}
