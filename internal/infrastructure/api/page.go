package api

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/application/usecases"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

//go:embed templates/index.html
var templatesFS embed.FS

const defaultPickerValue = "#000000"

type slotView struct {
	Slot        valueobjects.Slot
	Title       string
	Icon        string
	Placeholder string
	Color       valueobjects.Color
	PickerValue string
	Image       template.URL
	Generation  uint64
}

type cellView struct {
	Label string
	Color valueobjects.Color
	Image template.URL
}

type cardView struct {
	Title       string
	Description string
	Rating      string
	Cells       []cellView
}

type occasionView struct {
	valueobjects.OccasionOption
	Selected bool
}

type pageData struct {
	Slots          []slotView
	Swatches       []valueobjects.Color
	Occasions      []occasionView
	Heading        string
	Subheading     string
	ShowReset      bool
	Cards          []cardView
	AdvisorEnabled bool
	CanAskAdvisor  bool
}

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() *pageRenderer {
	tmpl := template.Must(template.New("index.html").ParseFS(templatesFS, "templates/index.html"))
	return &pageRenderer{tmpl: tmpl}
}

func (p *pageRenderer) render(w io.Writer, output *usecases.SelectionOutput, advisorEnabled bool) error {
	return p.tmpl.Execute(w, buildPageData(output, advisorEnabled))
}

func buildPageData(output *usecases.SelectionOutput, advisorEnabled bool) pageData {
	sel := output.Selection
	info := sel.Occasion().Info()

	data := pageData{
		Swatches:       valueobjects.Swatches,
		Heading:        "Your " + info.Name + " Style Recommendations",
		ShowReset:      sel.HasAnyInput(),
		AdvisorEnabled: advisorEnabled,
		CanAskAdvisor:  advisorEnabled && sel.IsComplete(),
	}
	if sel.Occasion() != valueobjects.OccasionNone {
		data.Subheading = "Curated for a " + info.Style + " occasion"
	}

	for _, slot := range valueobjects.Slots {
		color := sel.Color(slot)
		data.Slots = append(data.Slots, slotView{
			Slot:        slot,
			Title:       slot.Title(),
			Icon:        slot.Icon(),
			Placeholder: slot.Placeholder(),
			Color:       color,
			PickerValue: pickerValue(color),
			Image:       imageURL(sel.Image(slot)),
			Generation:  sel.Generation(slot),
		})
	}

	for _, opt := range valueobjects.OccasionOptions {
		data.Occasions = append(data.Occasions, occasionView{
			OccasionOption: opt,
			Selected:       opt.ID == sel.Occasion(),
		})
	}

	for _, rec := range output.Recommendations {
		data.Cards = append(data.Cards, buildCard(rec))
	}
	return data
}

func buildCard(rec entities.Recommendation) cardView {
	card := cardView{Title: rec.Title, Description: rec.Description, Rating: rec.Rating}
	for _, slot := range valueobjects.Slots {
		card.Cells = append(card.Cells, cellView{
			Label: slot.Label(),
			Color: rec.Colors.For(slot),
			Image: imageURL(rec.ImageFor(slot)),
		})
	}
	return card
}

// pickerValue returns what an <input type="color"> accepts, which is only
// a 7 character hex value.
func pickerValue(c valueobjects.Color) string {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return defaultPickerValue
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return defaultPickerValue
		}
	}
	return strings.ToLower(s)
}

// imageURL marks stored image data URLs as safe for src attributes. Anything
// else is dropped so it cannot reach the page.
func imageURL(ref valueobjects.ImageReference) template.URL {
	if !strings.HasPrefix(string(ref), "data:image/") {
		return ""
	}
	return template.URL(ref)
}
