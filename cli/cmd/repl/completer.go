package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/reldate/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "presets", "zone", "edit", "clear", "quit"}

// presetSource adapts a preset catalog to [fuzzy.Source]. Each preset is
// matched on its value and title together.
type presetSource []lang.Preset

func (s presetSource) String(i int) string { return s[i].Value + " " + s[i].Title }

func (s presetSource) Len() int { return len(s) }

// completion returns the text that replaces the input when match is
// accepted.
func (m model) completion(match fuzzy.Match) string {
	if m.mode == modeCtrl {
		return match.Str
	}

	return m.presets[match.Index].Value
}

// computeMatches calculates the fuzzy match results for the current input,
// ranked best-first. Empty input has no matches so the hint stays visible.
func (m model) computeMatches() fuzzy.Matches {
	word := strings.TrimSpace(m.input.Value())
	if word == "" {
		return nil
	}

	if m.mode == modeCtrl {
		return fuzzy.Find(word, ctrlCommands)
	}

	if len(m.presets) == 0 {
		return nil
	}

	return fuzzy.FindFrom(word, presetSource(m.presets))
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
