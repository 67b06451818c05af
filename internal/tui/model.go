// Package tui provides the Bubble Tea evaluation interface.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hungknow/community-nutriition-interface/internal/chart"
	"github.com/hungknow/community-nutriition-interface/internal/growth"
	"github.com/hungknow/community-nutriition-interface/internal/report"
	"github.com/hungknow/community-nutriition-interface/internal/store"
)

const (
	tabEvaluate = iota
	tabHistory
)

const (
	fieldName = iota
	fieldSex
	fieldBirth
	fieldKind
	fieldValue
	fieldLength
	fieldDate
	fieldCount
)

const dateLayout = "2006-01-02"

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
)

// Options configures the evaluation UI.
type Options struct {
	ChartHeight   int
	HistoryWindow int
	ForceColor    bool
	Labels        report.Labels
}

// Model implements the Bubble Tea evaluation UI.
type Model struct {
	reg    *growth.Registry
	st     *store.Store
	opts   Options
	labels report.Labels

	tabs      []string
	activeTab int

	inputs     []textinput.Model
	focusIndex int

	result viewport.Model
	errMsg string
	notice string

	width  int
	height int
}

// NewModel constructs an evaluation UI model. The store may be nil, in which
// case results are not persisted and the history tab shows a hint instead.
func NewModel(reg *growth.Registry, st *store.Store, opts Options) *Model {
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = 10
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 3
	}
	labels := opts.Labels
	if labels == nil {
		labels = report.DefaultLabels()
	}
	m := &Model{
		reg:    reg,
		st:     st,
		opts:   opts,
		labels: labels,
		tabs:   []string{"Evaluate", "History"},
		result: viewport.New(0, 0),
	}
	m.initInputs()
	return m
}

func (m *Model) initInputs() {
	prompts := []string{
		"Child name (optional): ",
		"Sex (female/male): ",
		"Date of birth (YYYY-MM-DD): ",
		"Kind (weight/height/weight-for-length): ",
		"Value (kg or cm): ",
		"Length for weight-for-length (cm): ",
		"Evaluation date (optional): ",
	}
	m.inputs = make([]textinput.Model, fieldCount)
	for i, prompt := range prompts {
		input := textinput.New()
		input.Prompt = prompt
		input.CharLimit = 0
		input.Cursor.SetMode(cursor.CursorBlink)
		m.inputs[i] = input
	}
	m.inputs[fieldSex].SetValue("female")
	m.inputs[fieldKind].SetValue("weight")
	m.focusIndex = fieldName
	m.inputs[fieldName].Focus()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t", "left", "right":
			if msg.String() == "ctrl+t" || m.activeTab == tabHistory {
				m.moveTab()
				return m, tea.ClearScreen
			}
		case "tab", "down":
			if m.activeTab == tabEvaluate {
				m.moveFocus(1)
				return m, nil
			}
		case "shift+tab", "up":
			if m.activeTab == tabEvaluate {
				m.moveFocus(-1)
				return m, nil
			}
		case "enter":
			if m.activeTab == tabEvaluate {
				m.submit()
			} else {
				m.refreshHistory()
			}
			return m, nil
		}
		if m.activeTab == tabEvaluate {
			var cmd tea.Cmd
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveTab() {
	m.activeTab = (m.activeTab + 1) % len(m.tabs)
	m.errMsg = ""
	if m.activeTab == tabHistory {
		m.refreshHistory()
	}
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex += delta
	if m.focusIndex < 0 {
		m.focusIndex = fieldCount - 1
	}
	if m.focusIndex >= fieldCount {
		m.focusIndex = 0
	}
	m.inputs[m.focusIndex].Focus()
}

func (m *Model) submit() {
	m.errMsg = ""
	m.notice = ""

	req, err := m.buildRequest()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	row, ds, err := m.reg.Resolve(req)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	status := growth.Classify(row, req.Value)

	var buf bytes.Buffer
	ev := report.Evaluation{Request: req, Row: row, Status: status}
	if err := report.RenderEvaluation(&buf, ev, m.labels); err != nil {
		m.errMsg = err.Error()
		return
	}
	buf.WriteString("\n")
	marker := &chart.Point{X: row.X, Y: req.Value}
	chartOpts := chart.Options{
		Title:      fmt.Sprintf("%s bands", req.Kind),
		Width:      chart.ChartWidthFor(m.width),
		Height:     m.opts.ChartHeight,
		ForceColor: m.opts.ForceColor,
		YUnit:      req.Kind.Unit(),
		XUnit:      ds.Axis.String(),
	}
	if err := chart.Render(&buf, ds, marker, chartOpts); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.result.SetContent(buf.String())

	if name := strings.TrimSpace(m.inputs[fieldName].Value()); name != "" && m.st != nil {
		if err := m.persist(name, req, status); err != nil {
			m.errMsg = fmt.Sprintf("failed to save measurement: %v", err)
			return
		}
		m.notice = fmt.Sprintf("Saved measurement for %s.", name)
	}
}

func (m *Model) persist(name string, req growth.Request, status growth.Status) error {
	ctx := context.Background()
	child, err := m.st.GetChildByName(ctx, name)
	if err != nil {
		id, err := m.st.AddChild(ctx, store.Child{
			Name:        name,
			Sex:         req.Sex,
			DateOfBirth: req.DateOfBirth,
		})
		if err != nil {
			return err
		}
		child = store.Child{ID: id, Name: name, Sex: req.Sex, DateOfBirth: req.DateOfBirth}
	}
	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err = m.st.InsertMeasurement(ctx, store.Measurement{
		ChildID:    child.ID,
		Kind:       req.Kind,
		Value:      req.Value,
		LengthCm:   req.Length,
		MeasuredAt: at,
		Status:     status,
	})
	return err
}

func (m *Model) refreshHistory() {
	m.errMsg = ""
	if m.st == nil {
		m.result.SetContent("History is unavailable without a database.")
		return
	}
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	if name == "" {
		m.result.SetContent("Enter a child name on the Evaluate tab to see history.")
		return
	}
	ctx := context.Background()
	child, err := m.st.GetChildByName(ctx, name)
	if err != nil {
		m.result.SetContent(fmt.Sprintf("No recorded child named %q.", name))
		return
	}
	measurements, err := m.st.ListMeasurements(ctx, child.ID, store.HistoryFilter{})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	var buf bytes.Buffer
	if err := report.RenderHistory(&buf, child, measurements, m.opts.HistoryWindow, m.labels); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.result.SetContent(buf.String())
}

func (m *Model) buildRequest() (growth.Request, error) {
	sex, err := growth.ParseSex(strings.TrimSpace(m.inputs[fieldSex].Value()))
	if err != nil {
		return growth.Request{}, err
	}
	kind, err := growth.ParseKind(strings.TrimSpace(m.inputs[fieldKind].Value()))
	if err != nil {
		return growth.Request{}, err
	}
	dob, err := time.ParseInLocation(dateLayout, strings.TrimSpace(m.inputs[fieldBirth].Value()), time.Local)
	if err != nil {
		return growth.Request{}, fmt.Errorf("invalid date of birth: %w", err)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldValue].Value()), 64)
	if err != nil {
		return growth.Request{}, fmt.Errorf("invalid value: %w", err)
	}
	req := growth.Request{Kind: kind, Sex: sex, DateOfBirth: dob, Value: value}

	if kind == growth.WeightForLength {
		length, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldLength].Value()), 64)
		if err != nil {
			return growth.Request{}, fmt.Errorf("invalid length: %w", err)
		}
		req.Length = length
	}
	if raw := strings.TrimSpace(m.inputs[fieldDate].Value()); raw != "" {
		at, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return growth.Request{}, fmt.Errorf("invalid evaluation date: %w", err)
		}
		req.At = at
	}
	return req, nil
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	formHeight := fieldCount + 3
	resultHeight := m.height - formHeight - 3
	if resultHeight < 3 {
		resultHeight = 3
	}
	m.result.Width = m.width
	m.result.Height = resultHeight
	for i := range m.inputs {
		promptWidth := lipgloss.Width(m.inputs[i].Prompt)
		m.inputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	if m.activeTab == tabEvaluate {
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString(headerStyle.Render("enter: evaluate  tab: next field  ctrl+t: history  esc: quit"))
		b.WriteString("\n")
	} else {
		b.WriteString(headerStyle.Render("enter: refresh  ctrl+t: evaluate  esc: quit"))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(headerStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(resultStyle.Render(m.result.View()))
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
