package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nadialowe/chartwell/internal/cli/formatter"
	"github.com/nadialowe/chartwell/internal/domain"
	"github.com/nadialowe/chartwell/internal/interval"
)

// explorePeriods are the ranges the explorer steps through, narrowest first.
var explorePeriods = []string{
	"30m", "1h", "6h", "24h", "3d", "7d", "14d", "30d", "60d", "90d",
}

// exploreIntervals are the configured-interval candidates; the empty
// entry exercises the selector default.
var exploreIntervals = []string{
	"", "1m", "5m", "15m", "30m", "1h", "4h", "1d",
}

// exploreKinds cycles through every chart kind.
var exploreKinds = []domain.ChartKind{
	domain.ChartLine, domain.ChartArea, domain.ChartBar,
	domain.ChartTable, domain.ChartBigNumber, domain.ChartTopN,
}

type exploreKeyMap struct {
	Wider    key.Binding
	Narrower key.Binding
	Kind     key.Binding
	Interval key.Binding
	Quit     key.Binding
}

var exploreKeys = exploreKeyMap{
	Wider:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "wider range")),
	Narrower: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "narrower range")),
	Kind:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "chart kind")),
	Interval: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interval")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// exploreModel is an interactive view of selector behavior: step the
// range, kind, and configured interval and watch the decision update.
type exploreModel struct {
	periodIdx   int
	kindIdx     int
	intervalIdx int
	quitting    bool
}

func newExploreModel() exploreModel {
	return exploreModel{
		periodIdx:   3, // 24h
		intervalIdx: 2, // 5m
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, exploreKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, exploreKeys.Wider):
		if m.periodIdx < len(explorePeriods)-1 {
			m.periodIdx++
		}
	case key.Matches(keyMsg, exploreKeys.Narrower):
		if m.periodIdx > 0 {
			m.periodIdx--
		}
	case key.Matches(keyMsg, exploreKeys.Kind):
		m.kindIdx = (m.kindIdx + 1) % len(exploreKinds)
	case key.Matches(keyMsg, exploreKeys.Interval):
		m.intervalIdx = (m.intervalIdx + 1) % len(exploreIntervals)
	}
	return m, nil
}

func (m exploreModel) View() string {
	if m.quitting {
		return ""
	}

	kind := exploreKinds[m.kindIdx]
	configured := exploreIntervals[m.intervalIdx]
	sel := domain.RelativeSelection(explorePeriods[m.periodIdx])
	decision := interval.Decide(kind, configured, sel)

	configuredLabel := configured
	if configuredLabel == "" {
		configuredLabel = fmt.Sprintf("(default %s)", interval.DefaultInterval)
	}

	var b strings.Builder
	b.WriteString(formatter.Header("interval explorer"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		formatter.Dim("configured:"), formatter.Bold(configuredLabel),
		formatter.Dim("kind:"), formatter.KindColor(kind).Render(string(kind))))
	b.WriteString(formatter.FormatIntervalDecision(kind, sel, decision))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m exploreModel) helpLine() string {
	bindings := []key.Binding{
		exploreKeys.Narrower, exploreKeys.Wider,
		exploreKeys.Kind, exploreKeys.Interval, exploreKeys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return strings.Join(parts, " · ")
}
