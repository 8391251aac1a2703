// package ui implements the interactive weld workflow as a bubbletea
// program: review the rename plan, confirm, watch progress, read the result.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"albumweld/internal/sorter"
	"albumweld/internal/tasks"
	"albumweld/internal/tracklist"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlanView ViewState = iota
	ConfirmView
	WeldView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	engine       *tasks.AlbumEngine
	tracks       tracklist.TrackList
	albumDir     string
	outputFile   string
	width        int
	height       int
	plan         *sorter.Plan
	planList     list.Model
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.WeldResult
	err          error
	help         help.Model
	keys         keyMap
}

type planBuiltMsg struct {
	plan *sorter.Plan
	err  error
}

type progressUpdateMsg tasks.ProgressUpdate

type weldCompleteMsg struct {
	result *tasks.WeldResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *tasks.AlbumEngine, tracks tracklist.TrackList, albumDir, outputFile string) *Model {
	return &Model{
		ctx:        ctx,
		view:       PlanView,
		engine:     engine,
		tracks:     tracks,
		albumDir:   albumDir,
		outputFile: outputFile,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by building the rename plan.
func (m *Model) Init() tea.Cmd {
	return m.buildPlan()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.planList.Width() == 0 {
			m.planList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlanView:
			return m.handlePlanKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case planBuiltMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.plan = msg.plan
		items := make([]list.Item, len(msg.plan.Ops))
		for i, op := range msg.plan.Ops {
			items[i] = renameItem{index: i, op: op}
		}
		m.planList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.planList.Title = fmt.Sprintf("Rename plan for %s", m.albumDir)
		m.planList.SetSize(m.width-4, m.height-8)
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case weldCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		if m.progressChan != nil {
			m.progressChan = nil
		}
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlanView:
		return m.renderPlan()
	case ConfirmView:
		return m.renderConfirm()
	case WeldView:
		return m.renderWeld()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePlanKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.plan != nil {
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.planList, cmd = m.planList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = PlanView
		return m, nil
	case "y":
		m.view = WeldView
		return m, m.startWeld()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == PlanView {
		m.planList, cmd = m.planList.Update(msg)
	}
	return m, cmd
}

func (m *Model) buildPlan() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.engine.Plan(m.tracks, m.albumDir, nil)
		return planBuiltMsg{plan: plan, err: err}
	}
}

func (m *Model) startWeld() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func() {
		result, err := m.engine.Weld(m.ctx, m.tracks, m.albumDir, m.outputFile, m.progressChan)
		m.result = result
		m.err = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return weldCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return weldCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderPlan() string {
	weldKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "weld"),
	)
	helpKeys := []key.Binding{weldKey, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.planList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Weld %d tracks into one file?", len(m.plan.Ops)))
	info := fmt.Sprintf("\nAlbum: %s\nOutput: %s\n",
		styles.path.Render(m.albumDir), styles.path.Render(m.outputFile))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderWeld() string {
	title := styles.title.Render("Welding Album")

	var phase string
	switch m.progress.Phase {
	case tasks.Validate:
		phase = "Validating track list..."
	case tasks.MatchTracks:
		phase = fmt.Sprintf("Matching tracks (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.RenameTracks:
		phase = fmt.Sprintf("Renaming tracks (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.Concatenate:
		phase = "Concatenating with ffmpeg..."
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Weld failed: %v\n\nPress q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress q to quit")
	}

	title := styles.ok.Render("✓ Weld Complete!")
	info := fmt.Sprintf("\nAlbum: %s\nTracks: %d\nOutput: %s",
		m.result.AlbumDir, m.result.TrackCount, styles.path.Render(m.result.OutputFile))
	if m.result.Duration > 0 {
		info += fmt.Sprintf("\nDuration: %s", m.result.Duration.Round(time.Second))
	}

	helpKeys := []key.Binding{m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
