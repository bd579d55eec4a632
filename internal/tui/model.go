package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dateformatters/internal/formatter"
	"github.com/julianstephens/dateformatters/internal/models"
	"github.com/julianstephens/dateformatters/internal/utils"
)

// FormFields is the editable text behind the form. huh writes into it
// through pointers; recompute reads it back into a FormatOptions snapshot.
type FormFields struct {
	Date      string
	DateStyle models.Style
	TimeStyle models.Style
	Pattern   string
	AMSymbol  string
	PMSymbol  string
	Locale    string
}

func fieldsFromOptions(opts models.FormatOptions) *FormFields {
	return &FormFields{
		Date:      utils.FormatDateInput(opts.Date),
		DateStyle: opts.DateStyle,
		TimeStyle: opts.TimeStyle,
		Pattern:   opts.Pattern,
		AMSymbol:  opts.AMSymbol,
		PMSymbol:  opts.PMSymbol,
		Locale:    opts.Locale,
	}
}

type Model struct {
	engine   *formatter.Engine
	initial  models.FormatOptions
	opts     models.FormatOptions
	fields   *FormFields
	form     *huh.Form
	keys     KeyMap
	help     help.Model
	now      func() time.Time
	result   string
	pattern  string
	warning  string
	warned   string
	quitting bool
	width    int
	height   int
}

func NewModel(engine *formatter.Engine, opts models.FormatOptions) Model {
	fields := fieldsFromOptions(opts)
	m := Model{
		engine:  engine,
		initial: opts,
		opts:    opts,
		fields:  fields,
		form:    newForm(fields, opts.Date.Location()),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		now:     time.Now,
	}
	m.recompute()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Result is the current rendering of the snapshot.
func (m Model) Result() string {
	return m.result
}

// recompute rebuilds the snapshot from the form fields and re-renders it.
// An unparseable date keeps the last valid one.
func (m *Model) recompute() {
	loc := m.opts.Date.Location()
	if date, err := utils.ParseDateInput(m.fields.Date, loc, m.now()); err == nil {
		m.opts.Date = date
	}
	m.opts.DateStyle = m.fields.DateStyle
	m.opts.TimeStyle = m.fields.TimeStyle
	m.opts.Pattern = m.fields.Pattern
	m.opts.AMSymbol = m.fields.AMSymbol
	m.opts.PMSymbol = m.fields.PMSymbol
	m.opts.Locale = m.fields.Locale

	f := m.engine.Prepare(m.opts)
	m.result = f.Format(m.opts.Date)
	m.pattern = f.EffectivePattern()

	m.warning = ""
	if !f.LocaleFallback() {
		m.warned = ""
		return
	}
	m.warning = "⚠ Unknown locale, showing " + f.Locale.ID()
	// Recompute runs on every message; log only when the rejected identifier changes
	if m.warned != m.opts.Locale {
		m.warned = m.opts.Locale
		formatter.WarnFallback(m.opts.Locale, f.Locale)
	}
}

// reset restores the options the program started with.
func (m *Model) reset() tea.Cmd {
	m.opts = m.initial
	m.fields = fieldsFromOptions(m.initial)
	m.form = newForm(m.fields, m.initial.Date.Location())
	m.recompute()
	return m.form.Init()
}
