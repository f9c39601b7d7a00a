package dashboard

import (
	"fmt"
	"strings"
	"time"

	"shopfloor/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const refreshInterval = 2 * time.Second

// WorkOrderStore is the part of *workorder.Store the dashboard reads and drives.
type WorkOrderStore interface {
	List() []domain.WorkOrder
	SetStatus(workOrderID string, status domain.Status) error
}

type tickMsg time.Time

// Model is a terminal view over the work orders: a status filter cycled with tab,
// a keyword search opened with / and quick status changes on the selected order.
type Model struct {
	store     WorkOrderStore
	now       func() time.Time
	filters   []domain.Status
	filter    int
	search    textinput.Model
	searching bool
	cursor    int
	bar       progress.Model
	err       string
	width     int
	height    int
}

func New(store WorkOrderStore) Model {
	search := textinput.New()
	search.Placeholder = "id, site, work center, operation, team or employee"
	search.Prompt = "search: "

	return Model{
		store:   store,
		now:     time.Now,
		filters: append([]domain.Status{domain.StatusAll}, domain.Statuses()...),
		search:  search,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage()),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Filter() domain.Status {
	return m.filters[m.filter]
}

// Visible returns the orders passing the current status filter and search keyword, in store order.
func (m Model) Visible() []domain.WorkOrder {
	return domain.QueryWorkOrders(m.store.List(),
		&domain.WorkOrderQuery{Status: m.Filter(), Keyword: strings.TrimSpace(m.search.Value())})
}

func (m Model) Selected() (domain.WorkOrder, bool) {
	orders := m.Visible()
	if m.cursor < 0 || m.cursor >= len(orders) {
		return domain.WorkOrder{}, false
	}
	return orders[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.clampCursor()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		m.err = ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.filter = (m.filter + 1) % len(m.filters)
			m.cursor = 0
		case "shift+tab":
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.cursor = 0
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "j", "down":
			if m.cursor < len(m.Visible())-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "s":
			m.setSelectedStatus(domain.StatusInProgress)
		case "p":
			m.setSelectedStatus(domain.StatusPaused)
		case "c":
			m.setSelectedStatus(domain.StatusCompleted)
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		fallthrough
	case "enter":
		m.searching = false
		m.search.Blur()
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *Model) setSelectedStatus(status domain.Status) {
	selected, ok := m.Selected()
	if !ok {
		return
	}
	if err := m.store.SetStatus(selected.ID, status); err != nil {
		m.err = err.Error()
		return
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("shopfloor work orders"))
	b.WriteString("\n\n")

	var tabs []string
	for i, f := range m.filters {
		if i == m.filter {
			tabs = append(tabs, activeFilterStyle.Render(string(f)))
		} else {
			tabs = append(tabs, dimStyle.Render(string(f)))
		}
	}
	b.WriteString("  " + strings.Join(tabs, "  "))
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString("  " + m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	orders := m.Visible()
	if len(orders) == 0 {
		b.WriteString(dimStyle.Render("  No work orders match."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %-10s %-10s %-12s %-20s %-12s %-20s %5s %s",
			"ID", "Site", "Work center", "Operation", "Status", "Progress", "", "Due")
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")

		now := m.now()
		for i, o := range orders {
			due := o.EndDate.String()
			if o.IsOverdue(now) {
				due = overdueStyle.Render(due + " !")
			}
			row := fmt.Sprintf("  %s %s %s %s %s %s %4d%% %s",
				truncate(o.ID, 10), truncate(o.Site, 10), truncate(o.WorkCenter, 12), truncate(o.Operation, 20),
				renderStatus(o.Status, 12), m.bar.ViewAs(ratio(o.Progress)), o.Progress, due)
			if i == m.cursor {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  tab filter • / search • j/k move • s start • p pause • c complete • q quit"))
	b.WriteString("\n")
	return b.String()
}

func ratio(progress int) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 100 {
		return 1
	}
	return float64(progress) / 100
}

// truncate cuts s to max runes and pads it to max columns, keeping multi-byte names whole.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		if max <= 3 {
			s = string(runes[:max])
		} else {
			s = string(runes[:max-3]) + "..."
		}
	}
	return padRight(s, max)
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
