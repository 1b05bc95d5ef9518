package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sort indicators shown next to the active column header.
const (
	arrowAsc  = "▲"
	arrowDesc = "▼"
)

type column struct {
	title string
	key   model.SortKey
	width int
}

var dealColumns = []column{
	{title: "Title", key: model.SortByTitle, width: 36},
	{title: "Platform", key: model.SortByPlatform, width: 12},
	{title: "Price", key: model.SortByPrice, width: 10},
	{title: "Was", width: 9},
	{title: "Discount", key: model.SortByDiscount, width: 12},
	{title: "Store", key: model.SortByStore, width: 16},
}

// DealTableModel is a page of deals in a bubbles table.
type DealTableModel struct {
	theme    themes.Theme
	sort     *model.SortSpec
	deals    []model.Deal
	table    table.Model
	width    int
	height   int
	sortable bool
}

// NewDealTable creates an empty table. Sortable tables show the active
// sort column with an arrow and number their headers for the sort keys.
func NewDealTable(theme themes.Theme, sortable bool) DealTableModel {
	t := table.New(
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := DealTableModel{
		theme:    theme,
		table:    t,
		sortable: sortable,
		width:    100,
		height:   12,
	}
	m.refreshColumns()
	return m
}

// SetDeals replaces the visible rows.
func (m *DealTableModel) SetDeals(deals []model.Deal) {
	m.deals = deals
	rows := make([]table.Row, 0, len(deals))
	for _, d := range deals {
		rows = append(rows, table.Row{
			d.Title,
			d.Platform,
			FormatPrice(d.Price),
			FormatPrice(d.OldPrice),
			fmt.Sprintf("%d%%", d.Discount()),
			d.Store,
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// SetSort marks the active sort column.
func (m *DealTableModel) SetSort(spec model.SortSpec) {
	m.sort = &spec
	m.refreshColumns()
}

// Resize fits the table into the given box. The title column absorbs any
// width left over by the fixed columns.
func (m *DealTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.refreshColumns()
	// The header and its border take two of the lines.
	m.table.SetHeight(max(height, 3))
}

// Focus gives the table keyboard focus for cursor movement.
func (m *DealTableModel) Focus() {
	m.table.Focus()
}

// Blur drops keyboard focus.
func (m *DealTableModel) Blur() {
	m.table.Blur()
}

// Focused reports whether the table has focus.
func (m DealTableModel) Focused() bool {
	return m.table.Focused()
}

// Selected returns the deal under the cursor.
func (m DealTableModel) Selected() (model.Deal, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.deals) {
		return model.Deal{}, false
	}
	return m.deals[i], true
}

// Len returns the number of visible rows.
func (m DealTableModel) Len() int {
	return len(m.deals)
}

// Update moves the cursor.
func (m DealTableModel) Update(msg tea.Msg) (DealTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m DealTableModel) View() string {
	return m.table.View()
}

func (m *DealTableModel) refreshColumns() {
	fixed := 0
	for _, c := range dealColumns[1:] {
		fixed += c.width + 2
	}
	titleWidth := max(m.width-fixed-2, 12)

	columns := make([]table.Column, 0, len(dealColumns))
	for i, c := range dealColumns {
		width := c.width
		if i == 0 {
			width = titleWidth
		}
		columns = append(columns, table.Column{Title: m.header(c), Width: width})
	}
	m.table.SetColumns(columns)
}

func (m DealTableModel) header(c column) string {
	if !m.sortable || c.key == "" {
		return c.title
	}

	var b strings.Builder
	if n := sortKeyNumber(c.key); n > 0 {
		fmt.Fprintf(&b, "%d ", n)
	}
	b.WriteString(c.title)
	if m.sort != nil && m.sort.Key == c.key {
		b.WriteString(" ")
		if m.sort.Direction == model.Descending {
			b.WriteString(arrowDesc)
		} else {
			b.WriteString(arrowAsc)
		}
	}
	return b.String()
}

func sortKeyNumber(key model.SortKey) int {
	for i, k := range model.SortKeys {
		if k == key {
			return i + 1
		}
	}
	return 0
}

// FormatPrice renders a dollar amount.
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}
