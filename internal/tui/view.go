package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelfolio.dev/internal/models"
)

const aboutText = `I build playful, performant experiences that blend modern engineering
with nostalgic game aesthetics: crisp pixels, gamified navigation and
a little bit of XP for your trouble.`

// View implements tea.Model
func (m Model) View() string {
	snap := m.game.Snapshot()

	var body string
	switch {
	case m.showAbout:
		body = m.place(m.aboutView())
	case snap.Dialog != "":
		body = m.place(m.dialogView())
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.mapView(snap), " ", m.sidebarView(snap))
	}

	var sb strings.Builder
	sb.WriteString(m.headerView(snap))
	sb.WriteString("\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) headerView(snap models.Snapshot) string {
	label := m.game.Tracker().Label()
	xp := fmt.Sprintf("XP %d", snap.Experience)
	bar := m.xpBar.ViewAs(float64(snap.Progress) / 100)

	return m.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("RETRO PORTFOLIO"), "   ", label, "  ", bar, "  ", xp))
}

func (m Model) mapView(snap models.Snapshot) string {
	reg := m.game.Registry()
	theme := m.styles.Theme
	bonus := reg.Bonus().Position

	var sb strings.Builder
	for y := 0; y < reg.Rows(); y++ {
		for x := 0; x < reg.Cols(); x++ {
			pos := models.Position{X: x, Y: y}
			sb.WriteString(m.cell(pos, snap, bonus, theme))
		}
		if y < reg.Rows()-1 {
			sb.WriteString("\n")
		}
	}
	return m.styles.Map.Render(sb.String())
}

// cell picks the topmost layer at pos: avatar, landmark, star, terrain
func (m Model) cell(pos models.Position, snap models.Snapshot, bonus models.Position, theme models.Theme) string {
	if pos == snap.Position {
		glyph := m.palette.Avatar
		if snap.Avatar.Hat {
			glyph = m.palette.Hat
		}
		return Cell(glyph, snap.Avatar.Color, theme.Ink)
	}

	if lm, ok := m.game.Registry().At(pos); ok {
		color := theme.Mist
		for _, id := range snap.Discovered {
			if id == lm.ID {
				color = theme.Lime
				break
			}
		}
		return Cell(m.palette.Icon(lm.Icon), color, theme.Ink)
	}

	if pos == bonus {
		return Cell(m.palette.Star, theme.Mist, "")
	}

	k := m.tiles.Get(pos)
	return Cell(m.palette.Glyphs[k], m.palette.Colors[k], "")
}

func (m Model) sidebarView(snap models.Snapshot) string {
	var avatar strings.Builder
	avatar.WriteString(m.styles.Heading.Render("Avatar Customization"))
	avatar.WriteString("\n")
	for _, c := range m.game.Registry().Swatches() {
		marker := "  "
		if c == snap.Avatar.Color {
			marker = "> "
		}
		avatar.WriteString(marker + Cell("■", c, "") + c + "\n")
	}
	hat := "Hat: OFF"
	if snap.Avatar.Hat {
		hat = "Hat: ON"
	}
	avatar.WriteString(m.styles.Button.Render(hat))

	var achievements strings.Builder
	achievements.WriteString(m.styles.Heading.Render("Achievements"))
	for _, a := range m.game.Achievements() {
		achievements.WriteString("\n")
		if a.Unlocked {
			achievements.WriteString(m.styles.Unlocked.Render("[x] " + a.Label))
		} else {
			achievements.WriteString(m.styles.Muted.Render("[ ] " + a.Label))
		}
	}

	var projects strings.Builder
	projects.WriteString(m.styles.Heading.Render("Projects"))
	for i, lm := range m.game.Registry().Landmarks() {
		projects.WriteString(fmt.Sprintf("\n%d %s %s", i+1, m.palette.Icon(lm.Icon), lm.Title))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Panel.Render(avatar.String()),
		m.styles.Panel.Render(achievements.String()),
		m.styles.Panel.Render(projects.String()),
	)
}

func (m Model) dialogView() string {
	lm, ok := m.game.ActiveLandmark()
	if !ok {
		return ""
	}

	description := strings.TrimSpace(lm.Description)
	if m.markdown != nil {
		if out, err := m.markdown.Render(lm.Description); err == nil {
			description = strings.Trim(out, "\n")
		}
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.palette.Icon(lm.Icon) + " " + lm.Title))
	sb.WriteString("\n\n")
	sb.WriteString(description)
	sb.WriteString("\n\n")
	sb.WriteString("Tech: " + strings.Join(lm.Tech, ", "))
	if lm.Link != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Button.Render("VIEW PROJECT") + " " + lm.Link)
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("esc to close"))

	return m.styles.Dialog.Render(sb.String())
}

func (m Model) aboutView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("About Me"))
	sb.WriteString("\n\n")
	sb.WriteString(aboutText)
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Button.Render("Back to Map") + " " + m.styles.Muted.Render("esc or tab"))
	return m.styles.Dialog.Render(sb.String())
}

// place centers a dialog in the window once its size is known
func (m Model) place(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	h := m.height - 4
	if h < lipgloss.Height(box) {
		h = lipgloss.Height(box)
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, box)
}
