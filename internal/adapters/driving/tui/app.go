package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/components/status"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/keymap"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/messages"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/styles"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/views/form"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/tui/views/report"
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// formView is the audit form.
	formView *form.View

	// reportView shows the last audit result.
	reportView *report.View

	// statusbar shows state and keybinding hints.
	statusbar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// running is true while an audit is in flight.
	running bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	defaultTarget := ""
	if ports.Settings != nil {
		defaultTarget = ports.Settings.All().TargetSite
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		formView:    form.NewView(s, km, defaultTarget),
		reportView:  report.NewView(s, km),
		statusbar:   status.NewBar(s, km),
		currentView: messages.ViewForm,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("citelens - Citation Visibility"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.statusbar.SetWidth(msg.Width)
		a.formView.SetDimensions(msg.Width, msg.Height)
		a.reportView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) && a.currentView != messages.ViewForm {
			return a, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateCurrentView(msg)

	case messages.AuditRequested:
		if a.running {
			return a, nil
		}
		a.running = true
		a.err = nil
		a.statusbar.SetState(status.StateRunning)
		return a, a.runAudit(msg.Request)

	case messages.AuditCompleted:
		a.running = false
		if msg.Err != nil {
			a.err = msg.Err
			a.statusbar.SetState(status.StateError)
			a.statusbar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.reportView.SetResult(msg.Result)
		a.currentView = messages.ViewReport
		a.statusbar.SetState(status.StateReport)
		a.statusbar.SetMessage(fmt.Sprintf("Target total %.4f", msg.Result.Report.Metrics.TotalScore))
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewForm {
			a.statusbar.Clear()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return a, nil
	}

	return a.updateCurrentView(msg)
}

// updateCurrentView forwards a message to the active view.
func (a *App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewForm:
		a.formView, cmd = a.formView.Update(msg)
	case messages.ViewReport:
		a.reportView, cmd = a.reportView.Update(msg)
	}
	return a, cmd
}

// runAudit returns a command executing the audit off the update loop.
func (a *App) runAudit(req domain.AuditRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.Audit.Run(a.ctx, req)
		return messages.AuditCompleted{Result: result, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case messages.ViewReport:
		body = a.reportView.View()
	default:
		body = a.formView.View()
	}

	return body + "\n" + a.statusbar.View()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error, if any.
func (a *App) Err() error {
	return a.err
}
