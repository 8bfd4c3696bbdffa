// Package tui holds the interactive terminal surfaces: the what-if slider board
// and the plan input form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/cli"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/shopspring/decimal"
)

// slider is one adjustable input with its step and bounds.
type slider struct {
	label    string
	step     decimal.Decimal
	min, max decimal.Decimal
	get      func(domain.ProjectionInput) decimal.Decimal
	set      func(*domain.ProjectionInput, decimal.Decimal)
	format   func(decimal.Decimal) string
}

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func formatRate(v decimal.Decimal) string { return v.StringFixed(1) + "%" }

func formatAgeValue(v decimal.Decimal) string { return cli.FormatAge(int(v.IntPart())) }

func defaultSliders() []slider {
	return []slider{
		{
			label: "초기 자본", step: d(1_000_000), min: d(0), max: d(5_000_000_000),
			get:    func(in domain.ProjectionInput) decimal.Decimal { return in.InitialCapital },
			set:    func(in *domain.ProjectionInput, v decimal.Decimal) { in.InitialCapital = v },
			format: cli.FormatWonDecimal,
		},
		{
			label: "월 저축액", step: d(100_000), min: d(0), max: d(20_000_000),
			get:    func(in domain.ProjectionInput) decimal.Decimal { return in.MonthlySaving },
			set:    func(in *domain.ProjectionInput, v decimal.Decimal) { in.MonthlySaving = v },
			format: cli.FormatWonDecimal,
		},
		{
			label: "연 수익률", step: d(0.1), min: d(1), max: d(30),
			get:    func(in domain.ProjectionInput) decimal.Decimal { return in.AnnualReturnRate },
			set:    func(in *domain.ProjectionInput, v decimal.Decimal) { in.AnnualReturnRate = v },
			format: formatRate,
		},
		{
			label: "물가상승률", step: d(0.1), min: d(0), max: d(10),
			get:    func(in domain.ProjectionInput) decimal.Decimal { return in.InflationRate },
			set:    func(in *domain.ProjectionInput, v decimal.Decimal) { in.InflationRate = v },
			format: formatRate,
		},
		{
			label: "목표 월 생활비", step: d(100_000), min: d(1_000_000), max: d(30_000_000),
			get:    func(in domain.ProjectionInput) decimal.Decimal { return in.TargetMonthlySpending },
			set:    func(in *domain.ProjectionInput, v decimal.Decimal) { in.TargetMonthlySpending = v },
			format: cli.FormatWonDecimal,
		},
		{
			label: "현재 나이", step: d(1), min: d(0), max: d(100),
			get:    func(in domain.ProjectionInput) decimal.Decimal { return decimal.NewFromInt(int64(in.CurrentAge)) },
			set:    func(in *domain.ProjectionInput, v decimal.Decimal) { in.CurrentAge = int(v.IntPart()) },
			format: formatAgeValue,
		},
	}
}

// move shifts the slider's value by n steps, clamped to its bounds.
func (s slider) move(in *domain.ProjectionInput, n int64) {
	v := s.get(*in).Add(s.step.Mul(decimal.NewFromInt(n)))
	if v.LessThan(s.min) {
		v = s.min
	}
	if v.GreaterThan(s.max) {
		v = s.max
	}
	s.set(in, v)
}

// SaveFunc persists the current input, typically as last-used preferences.
type SaveFunc func(domain.ProjectionInput) error

// WhatIf is the bubbletea model of the slider board. Every change reprojects.
type WhatIf struct {
	sliders []slider
	cursor  int
	initial domain.ProjectionInput
	input   domain.ProjectionInput
	summary domain.ScenarioSummary
	save    SaveFunc
	status  string

	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
}

// NewWhatIf starts the board at in. save may be nil.
func NewWhatIf(in domain.ProjectionInput, save SaveFunc) WhatIf {
	m := WhatIf{
		sliders: defaultSliders(),
		initial: in,
		input:   in,
		save:    save,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.recompute()
	return m
}

// Input returns the current values.
func (m WhatIf) Input() domain.ProjectionInput { return m.input }

// Summary returns the projection of the current values.
func (m WhatIf) Summary() domain.ScenarioSummary { return m.summary }

func (m *WhatIf) recompute() {
	m.summary = calculation.Summarize(domain.PlanScenarioName, m.input, calculation.Project(m.input))
}

// Init implements tea.Model.
func (m WhatIf) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m WhatIf) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(m.sliders) - 1) % len(m.sliders)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.sliders)
		case key.Matches(msg, m.keys.Inc):
			m.adjust(1)
		case key.Matches(msg, m.keys.Dec):
			m.adjust(-1)
		case key.Matches(msg, m.keys.BigInc):
			m.adjust(10)
		case key.Matches(msg, m.keys.BigDec):
			m.adjust(-10)
		case key.Matches(msg, m.keys.Reset):
			m.input = m.initial
			m.recompute()
		case key.Matches(msg, m.keys.Save):
			m.status = m.persist()
		}
	}
	return m, nil
}

func (m *WhatIf) adjust(n int64) {
	m.sliders[m.cursor].move(&m.input, n)
	m.recompute()
}

func (m WhatIf) persist() string {
	if m.save == nil {
		return "저장 위치가 설정되지 않았습니다"
	}
	if err := m.save(m.input); err != nil {
		return "저장 실패: " + err.Error()
	}
	return "저장됨"
}

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cli.ColorBorder).Padding(0, 1)
)

// View implements tea.Model.
func (m WhatIf) View() string {
	var b strings.Builder
	b.WriteString(cli.RenderTitle("What-if 시뮬레이션"))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, s := range m.sliders {
		labelWidth = max(labelWidth, lipgloss.Width(s.label))
	}
	for i, s := range m.sliders {
		pointer := "  "
		label := s.label + strings.Repeat(" ", labelWidth-lipgloss.Width(s.label))
		line := fmt.Sprintf("%s  %s", label, s.format(s.get(m.input)))
		if i == m.cursor {
			pointer = "▸ "
			line = cursorStyle.Render(line)
		}
		b.WriteString(pointer + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(strings.TrimRight(m.board(), "\n")))
	b.WriteString("\n")

	window := calculation.ChartWindow(m.summary.Projection)
	if len(window) > 0 {
		labels := make([]string, len(window))
		values := make([]int64, len(window))
		marks := make([]bool, len(window))
		for i, p := range window {
			labels[i] = cli.FormatAge(p.Age)
			values[i] = p.TotalAssets
			marks[i] = p.IsParadise
		}
		b.WriteString(cli.RenderBars(labels, values, marks, 30))
	}

	if m.status != "" {
		b.WriteString("\n  " + cli.Warn(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// board renders the KPI summary of the current projection.
func (m WhatIf) board() string {
	s := m.summary
	fourPct := calculation.FourPercentRuleAssets(m.input.TargetMonthlySpending)
	if !s.ParadiseReached {
		return cli.RenderKeyValues([][2]string{
			{"경제적 자유 나이", cli.Bad(cli.NotAchievable)},
			{"100세 자산", cli.FormatWon(s.FinalAssets)},
			{"4% 규칙 필요 자산", cli.FormatWonDecimal(fourPct)},
		})
	}
	return cli.RenderKeyValues([][2]string{
		{"경제적 자유 나이", cli.Good(cli.FormatAge(s.ParadiseAge))},
		{"남은 기간", cli.FormatYearsMonths(s.YearsUntilParadise)},
		{"도달 시 자산", cli.FormatWon(s.ParadiseAssets)},
		{"월 패시브 인컴", cli.FormatWon(s.ParadisePassiveIncome)},
		{"4% 규칙 필요 자산", cli.FormatWonDecimal(fourPct)},
	})
}
