package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.view {
	case ViewReplies:
		body = m.renderReplies()
	default:
		body = m.renderFeed()
	}

	if m.mode == ModeCompose || m.mode == ModeReply {
		body = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderModal(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}
	if m.mode == ModeHelp {
		body = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m Model) renderHeader() string {
	title := "Confide"
	if m.moodFilter != "" {
		title = fmt.Sprintf("Confide — %s %s", moodGlyph(m.moodFilter), m.moodFilter)
	}
	header := m.styles.Header.Render(title)

	var right string
	if m.profile != nil {
		right = m.styles.Muted.Render(fmt.Sprintf("@%s  %d credits", m.profile.Username, m.profile.Credits))
		if m.profile.Premium {
			right += " " + m.styles.Mood.Render("★")
		}
	} else {
		right = m.styles.Muted.Render("anonymous")
	}
	if m.unread > 0 {
		right += " " + m.styles.Badge.Render(fmt.Sprintf("%d ✉", m.unread))
	}

	gap := m.width - lipgloss.Width(header) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return header + strings.Repeat(" ", gap) + right
}

func (m Model) renderFeed() string {
	var s strings.Builder
	s.WriteString(m.renderHeader() + "\n")
	s.WriteString(m.styles.Border.Render(strings.Repeat("─", max(m.width-4, 10))) + "\n\n")

	if len(m.confessions) == 0 {
		if m.busy {
			s.WriteString(m.styles.Muted.Render("  Loading the feed..."))
		} else {
			s.WriteString(m.styles.Muted.Render("  Nothing here yet. Press 'c' to confess."))
		}
	}

	for i, conf := range m.confessions {
		style := m.styles.Item
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
			style = m.styles.ItemSelected
		}

		marks := ""
		if conf.Spotlighted {
			marks += " ✦"
		}
		if conf.Mine {
			marks += " (you)"
		}

		line := fmt.Sprintf("%s%s %s%s", cursor, moodGlyph(conf.Mood),
			truncate(conf.Content, max(m.width-30, 20)), marks)
		meta := m.styles.Muted.Render(fmt.Sprintf(" %d♥ %d replies", conf.Reactions, conf.ReplyCount))

		s.WriteString(style.Render(line) + meta + "\n")
	}

	return m.styles.Feed.Width(m.width).Height(m.height - 2).Render(s.String())
}

func (m Model) renderReplies() string {
	var s strings.Builder
	s.WriteString(m.renderHeader() + "\n")

	if m.current != nil {
		s.WriteString(m.styles.Mood.Render(moodGlyph(m.current.Mood)) + " " +
			m.styles.Item.Render(m.current.Content) + "\n")
	}
	s.WriteString(m.styles.Border.Render(strings.Repeat("─", max(m.width-4, 10))) + "\n\n")

	if len(m.replies) == 0 {
		s.WriteString(m.styles.Muted.Render("  No replies yet. Press 'r' to be the first."))
	}

	for i, reply := range m.replies {
		style := m.styles.Item
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
			style = m.styles.ItemSelected
		}
		line := fmt.Sprintf("%s%s", cursor, truncate(reply.Content, max(m.width-24, 20)))
		meta := m.styles.Muted.Render(fmt.Sprintf(" %d♥", reply.Likes))
		s.WriteString(style.Render(line) + meta + "\n")
	}

	return m.styles.Feed.Width(m.width).Height(m.height - 2).Render(s.String())
}

func (m Model) renderModal() string {
	title := "New confession"
	hint := "Enter:post  Tab:mood  Esc:cancel"
	if m.mode == ModeReply {
		title = "Reply"
		hint = "Enter:send  Esc:cancel"
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n"
	if m.mode == ModeCompose {
		content += m.styles.Mood.Render(fmt.Sprintf("mood: %s %s",
			moodGlyph(currentMood(m.mood)), currentMood(m.mood))) + "\n"
	}
	content += "\n" + m.input.View() + "\n\n"
	content += m.styles.Help.Render(hint)

	return m.styles.Modal.Render(content)
}

func (m Model) renderStatusBar() string {
	help := "c:confess  x:react  enter:replies  m:mood  t:theme  R:refresh  ?:help  q:quit"
	if m.view == ViewReplies {
		help = "r:reply  esc:back  j/k:move  q:quit"
	}
	if m.message != "" {
		help = m.message
	}

	status := ""
	if m.busy {
		status = "Working..."
	}
	if status != "" {
		avail := m.width - lipgloss.Width(help) - len(status) - 2
		if avail > 0 {
			help += strings.Repeat(" ", avail) + status
		} else {
			help += " " + status
		}
	}

	return m.styles.StatusBar.Width(m.width).Render(help)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓     Move down         │
│  k/↑     Move up           │
│  enter   Open replies      │
│  esc     Back to feed      │
│                            │
│  Actions                   │
│  ───────                   │
│  c       New confession    │
│  x       React             │
│  r       Reply             │
│  m       Cycle mood filter │
│  t       Cycle theme       │
│  R       Refresh           │
│                            │
│  Other                     │
│  ─────                     │
│  L       Logout            │
│  ?       Toggle help       │
│  q       Quit              │
│                            │
╰────────────────────────────╯

      Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
