package tui

import (
	"time"

	"github.com/haleta-e/lost-and-found-manager/pkg/logging"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
)

// Key constants for keyboard input handling
const (
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyTab   = "tab"
	keyUp    = "up"
	keyDown  = "down"
	keyLeft  = "left"
	keyRight = "right"
)

// page identifies which screen the model is currently driving.
type page int

const (
	pageMenu page = iota
	pageHelp
	pageReport
	pageCandidates
	pageBrowse
	pageDetail
	pageSearch
	pageEdit
	pageRemove
	pageClaim
	pagePair
	pageSort
	pageClear
)

// toastNotification represents a toast notification state
type toastNotification struct {
	active    bool      // Whether toast is currently shown
	message   string    // Main message
	details   string    // Optional details line
	icon      string    // Icon to display
	isError   bool      // Whether this is an error toast
	showUntil time.Time // When to hide the toast
}

// model is the root bubbletea model. It owns the shared dependencies and
// routes input to the state of whichever page is active.
type model struct {
	reg      *registry.Registry
	logger   *logging.Logger
	dataPath string

	page page

	menu       menuState
	help       helpState
	report     reportState
	candidates candidatesState
	browse     browseState
	detail     detailState
	search     searchState
	edit       editState
	remove     removeState
	claim      claimState
	pair       pairState
	sorting    sortState
	clearing   clearState

	toast toastNotification

	width  int
	height int
	ready  bool
}

func newModel(reg *registry.Registry, logger *logging.Logger) *model {
	return &model{
		reg:    reg,
		logger: logger,
		page:   pageMenu,
		menu:   newMenuState(),
	}
}

// backToMenu returns to the main menu and drops any in-progress page state.
func (m *model) backToMenu() {
	m.page = pageMenu
}
