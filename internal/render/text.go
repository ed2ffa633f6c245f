package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pbaille/blueprint/internal/domain"
)

var (
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleBadge   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	styleItem    = lipgloss.NewStyle().PaddingLeft(2)
	styleGray    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleLink    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleDivider = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Text writes the terminal view of a reading
func Text(w io.Writer, r *domain.Reading) error {
	v := NewView(r)
	var b strings.Builder

	b.WriteString(styleName.Render(v.FullName) + "\n")
	b.WriteString(styleBadge.Render(v.Sign) + "  " + styleBadge.Render(fmt.Sprintf("Life Path %d", v.LifePath)) + "\n")
	b.WriteString(styleDivider.Render(strings.Repeat("─", 40)) + "\n")

	for _, s := range v.Sections {
		writeList(&b, s.Title, s.Items)
	}
	writeList(&b, "Compatible Signs", v.Compatible)

	b.WriteString("\n" + styleTitle.Render("Style & Fashion") + "\n")
	for _, s := range v.Styles {
		b.WriteString(styleItem.Render(s.Category+": "+s.Description) + "\n")
		if s.ShopLink != "" {
			b.WriteString(styleItem.Render(styleLink.Render("Shop: "+s.ShopLink)) + "\n")
		}
	}

	b.WriteString("\n" + styleTitle.Render("Lucky Charms & Amulets") + "\n")
	for _, c := range v.Charms {
		b.WriteString(styleItem.Render(c.Name+": "+c.Description) + "\n")
	}

	if r.Chart.ID != "" {
		b.WriteString("\n" + styleGray.Render("Chart "+r.Chart.ID) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// TextError writes a one-line failure message
func TextError(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, styleError.Render(msg))
	return err
}

// ChartLine is the one-line summary used by list and search
func ChartLine(c domain.Chart) string {
	return fmt.Sprintf("%s  %s  %-11s  Life Path %-2d  %s",
		styleGray.Render(shortID(c.ID)),
		c.BirthDate.Format("2006-01-02"),
		c.ZodiacSign,
		c.LifePathNumber,
		c.FullName,
	)
}

func writeList(b *strings.Builder, title string, items []string) {
	b.WriteString("\n" + styleTitle.Render(title) + "\n")
	for _, item := range items {
		b.WriteString(styleItem.Render("• "+item) + "\n")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
