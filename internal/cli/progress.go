package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fitplan/internal/cli/formatter"
)

type workDoneMsg[T any] struct {
	value T
	err   error
}

// progressModel shows a spinner while work runs in a tea.Cmd.
type progressModel[T any] struct {
	spinner spinner.Model
	label   string
	work    func() (T, error)
	cancel  context.CancelFunc

	value T
	err   error
	done  bool
}

func newProgressModel[T any](label string, work func() (T, error), cancel context.CancelFunc) progressModel[T] {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	return progressModel[T]{spinner: s, label: label, work: work, cancel: cancel}
}

func (m progressModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		v, err := m.work()
		return workDoneMsg[T]{value: v, err: err}
	})
}

func (m progressModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg[T]:
		m.value, m.err, m.done = msg.value, msg.err, true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.cancel()
			m.err, m.done = context.Canceled, true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel[T]) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("  %s %s\n", m.spinner.View(), formatter.Dim(m.label))
}

// runWithProgress runs work under a spinner when interactive, or directly
// otherwise.
func runWithProgress[T any](ctx context.Context, interactive bool, label string, work func(ctx context.Context) (T, error)) (T, error) {
	if !interactive {
		return work(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newProgressModel(label, func() (T, error) { return work(ctx) }, cancel)
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("running progress display: %w", err)
	}
	out := final.(progressModel[T])
	return out.value, out.err
}
