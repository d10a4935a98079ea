package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

type card struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Rating      string `json:"rating" yaml:"rating"`
	Upper       string `json:"upper" yaml:"upper"`
	Lower       string `json:"lower" yaml:"lower"`
	Shoe        string `json:"shoe" yaml:"shoe"`
}

type report struct {
	Occasion string `json:"occasion" yaml:"occasion"`
	Style    string `json:"style" yaml:"style"`
	Cards    []card `json:"recommendations" yaml:"recommendations"`
}

func newReport(occasion valueobjects.Occasion, recs []entities.Recommendation) report {
	info := occasion.Info()
	r := report{Occasion: info.Name, Style: info.Style, Cards: []card{}}
	for _, rec := range recs {
		r.Cards = append(r.Cards, card{
			Title:       rec.Title,
			Description: rec.Description,
			Rating:      rec.Rating,
			Upper:       string(rec.Colors.Upper),
			Lower:       string(rec.Colors.Lower),
			Shoe:        string(rec.Colors.Shoe),
		})
	}
	return r
}

func renderJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// renderText draws each card with a block of its colors. The renderer is
// bound to w, so output to a pipe or file carries no escape codes.
func renderText(w io.Writer, r report) error {
	lg := lipgloss.NewRenderer(w)

	heading := lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#C026D3"))
	title := lg.NewStyle().Bold(true)
	rating := lg.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Italic(true)
	muted := lg.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	box := lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#D1D5DB")).
		Padding(0, 1)

	var b strings.Builder
	if len(r.Cards) == 0 {
		b.WriteString(heading.Render("Select your occasion and clothing details"))
		b.WriteString("\n")
		b.WriteString(muted.Render("Give all three colors to get recommendations."))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(heading.Render(fmt.Sprintf("Your %s Style Recommendations", r.Occasion)))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("Curated for a %s occasion", r.Style)))
	b.WriteString("\n")

	for _, c := range r.Cards {
		swatches := lipgloss.JoinHorizontal(lipgloss.Top,
			swatch(lg, "Upper", c.Upper),
			"  ",
			swatch(lg, "Lower", c.Lower),
			"  ",
			swatch(lg, "Shoes", c.Shoe),
		)
		body := lipgloss.JoinVertical(lipgloss.Left,
			title.Render(c.Title)+"  "+rating.Render(c.Rating),
			muted.Render(c.Description),
			"",
			swatches,
		)
		b.WriteString(box.Render(body))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func swatch(lg *lipgloss.Renderer, label, color string) string {
	block := lg.NewStyle().Background(lipgloss.Color(color)).Render("      ")
	return lipgloss.JoinVertical(lipgloss.Left, block, label, color)
}
