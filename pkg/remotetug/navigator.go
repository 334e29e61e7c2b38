// Package remotetug is the terminal UI of a remote file store: a files
// panel with breadcrumbs, store stats, previews and confirmation dialogs.
package remotetug

import (
	"context"
	"time"

	"github.com/datatug/remotetug/pkg/files"
	"github.com/datatug/remotetug/pkg/remotetug/navigator"
	"github.com/datatug/remotetug/pkg/remotetug/rtconfirm"
	"github.com/datatug/remotetug/pkg/remotetug/rtnav"
	"github.com/datatug/remotetug/pkg/remotetug/rtnotify"
	"github.com/datatug/remotetug/pkg/sneatv/crumbs"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const (
	pageMain    = "main"
	pageConfirm = "confirm"
	pageHelp    = "help"
	pageUpload  = "upload"
)

const homeCrumbTitle = "🏠 " + rtnav.HomeLabel

// StateSaver persists what the user was looking at between sessions.
type StateSaver interface {
	SaveCurrentPath(path string)
	SaveViewMode(mode string)
	SaveCurrentFile(name string)
}

type noopStateSaver struct{}

func (noopStateSaver) SaveCurrentPath(string) {}
func (noopStateSaver) SaveViewMode(string)    {}
func (noopStateSaver) SaveCurrentFile(string) {}

// Navigator coordinates user intents, the store and the panels.
// All of its methods must be called on the UI goroutine.
type Navigator struct {
	*tview.Pages

	app   navigator.App
	store files.Store
	o     navigatorOptions
	log   zerolog.Logger

	state         *rtnav.State
	confirm       *rtconfirm.Controller
	notifications *rtnotify.List

	current *files.DirContext

	listSeq    uint64
	statsSeq   uint64
	previewSeq uint64

	main          *tview.Flex
	breadcrumbs   *crumbs.Breadcrumbs
	files         *filesPanel
	stats         *statsPanel
	preview       *previewPanel
	toasts        *toastsView
	bottom        *bottom
	confirmDialog *confirmDialog
	uploadDialog  *uploadDialog
	helpModal     tview.Primitive
	helpButton    *tview.Button
}

type navigatorOptions struct {
	ctx         context.Context
	lang        language.Tag
	downloadDir string
	initialPath string
	currentFile string
	viewMode    rtnav.ViewMode
	logger      zerolog.Logger
	stateSaver  StateSaver
	goAsync     func(f func())
	afterFunc   func(d time.Duration, f func())
	autoPreview bool
}

type NavigatorOption func(o *navigatorOptions)

func WithContext(ctx context.Context) NavigatorOption {
	return func(o *navigatorOptions) {
		o.ctx = ctx
	}
}

// WithLocale sets the collation language used to sort listings.
func WithLocale(lang language.Tag) NavigatorOption {
	return func(o *navigatorOptions) {
		o.lang = lang
	}
}

func WithDownloadDir(dir string) NavigatorOption {
	return func(o *navigatorOptions) {
		o.downloadDir = dir
	}
}

func WithInitialPath(path string) NavigatorOption {
	return func(o *navigatorOptions) {
		o.initialPath = files.CleanPath(path)
	}
}

func WithCurrentFile(name string) NavigatorOption {
	return func(o *navigatorOptions) {
		o.currentFile = name
	}
}

func WithViewMode(mode rtnav.ViewMode) NavigatorOption {
	return func(o *navigatorOptions) {
		o.viewMode = mode
	}
}

func WithLogger(logger zerolog.Logger) NavigatorOption {
	return func(o *navigatorOptions) {
		o.logger = logger
	}
}

func WithStateSaver(saver StateSaver) NavigatorOption {
	return func(o *navigatorOptions) {
		if saver != nil {
			o.stateSaver = saver
		}
	}
}

// WithGoAsync replaces the go statement used to start store calls.
func WithGoAsync(goAsync func(f func())) NavigatorOption {
	return func(o *navigatorOptions) {
		o.goAsync = goAsync
	}
}

// WithNotificationAfterFunc replaces time.AfterFunc for toast expiry.
func WithNotificationAfterFunc(afterFunc func(d time.Duration, f func())) NavigatorOption {
	return func(o *navigatorOptions) {
		o.afterFunc = afterFunc
	}
}

// WithAutoPreview makes moving the cursor onto a file fetch its preview.
func WithAutoPreview(autoPreview bool) NavigatorOption {
	return func(o *navigatorOptions) {
		o.autoPreview = autoPreview
	}
}

func NewNavigator(app navigator.App, store files.Store, options ...NavigatorOption) *Navigator {
	nav := &Navigator{
		app:   app,
		store: store,
		o: navigatorOptions{
			ctx:         context.Background(),
			lang:        language.English,
			downloadDir: ".",
			viewMode:    rtnav.ViewModeList,
			logger:      zerolog.Nop(),
			stateSaver:  noopStateSaver{},
			goAsync: func(f func()) {
				go f()
			},
			autoPreview: true,
		},
	}
	for _, option := range options {
		option(&nav.o)
	}
	nav.log = nav.o.logger

	nav.state = rtnav.New(nav.o.initialPath, nav.o.viewMode)

	notifyOptions := []rtnotify.Option{
		rtnotify.WithPoster(nav.app.QueueUpdateDraw),
		rtnotify.WithOnChange(nav.renderToasts),
	}
	if nav.o.afterFunc != nil {
		notifyOptions = append(notifyOptions, rtnotify.WithAfterFunc(nav.o.afterFunc))
	}
	nav.notifications = rtnotify.New(notifyOptions...)

	nav.confirm = rtconfirm.NewController(nav.execute, rtconfirm.WithPrompt(nav.showConfirm))

	nav.createPanels()
	nav.renderBreadcrumbs()
	return nav
}

func (nav *Navigator) createPanels() {
	nav.breadcrumbs = crumbs.NewBreadcrumbs(
		crumbs.NewTargetBreadcrumb(homeCrumbTitle, "", func() error {
			nav.NavigateTo("")
			return nil
		}),
		crumbs.WithErrorHandler(func(err error) {
			nav.log.Error().Err(err).Msg("breadcrumb action failed")
		}),
	)
	nav.files = newFilesPanel(nav, nav.o.viewMode)
	nav.files.currentFileName = nav.o.currentFile
	nav.stats = newStatsPanel()
	nav.preview = newPreviewPanel(nav)
	nav.toasts = newToastsView()
	nav.bottom = newBottom(nav)
	nav.breadcrumbs.SetNextFocusTarget(nav.files)

	header := tview.NewFlex().
		AddItem(nav.breadcrumbs, 0, 1, false).
		AddItem(nav.stats, 48, 0, false)

	body := tview.NewFlex().
		AddItem(nav.files, 0, 3, true).
		AddItem(nav.preview, 0, 2, false)

	nav.main = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(nav.toasts, 0, 0, false).
		AddItem(nav.bottom, 1, 0, false)
	nav.main.SetInputCapture(nav.inputCapture)

	nav.confirmDialog = newConfirmDialog(nav.ConfirmPending, nav.CancelPending)
	nav.uploadDialog = newUploadDialog(nav.SelectUploadFiles, nav.closeUpload)
	nav.helpModal, _, nav.helpButton = createHelpModal(nav.closeHelp)

	nav.Pages = tview.NewPages().
		AddPage(pageMain, nav.main, true, true).
		AddPage(pageConfirm, nav.confirmDialog, true, false).
		AddPage(pageUpload, nav.uploadDialog, true, false).
		AddPage(pageHelp, nav.helpModal, true, false)
}

// Start loads the initial directory and focuses the files panel.
func (nav *Navigator) Start() {
	nav.setAppFocus(nav.files)
	nav.Load()
}

func (nav *Navigator) setAppFocus(p tview.Primitive) {
	nav.app.SetFocus(p)
}

func (nav *Navigator) CurrentPath() string {
	return nav.state.CurrentPath()
}

func (nav *Navigator) ViewMode() rtnav.ViewMode {
	return nav.state.ViewMode()
}

// Current is the last successfully loaded listing, nil before the first one.
func (nav *Navigator) Current() *files.DirContext {
	return nav.current
}

func (nav *Navigator) Notifications() []rtnotify.Notification {
	return nav.notifications.Items()
}

func (nav *Navigator) PendingAction() (rtconfirm.Action, bool) {
	return nav.confirm.Pending()
}

func (nav *Navigator) renderBreadcrumbs() {
	nav.breadcrumbs.Clear()
	for _, bc := range nav.state.Breadcrumbs()[1:] {
		target := bc.Path
		nav.breadcrumbs.Push(crumbs.NewTargetBreadcrumb(bc.Label, target, func() error {
			nav.NavigateTo(target)
			return nil
		}))
	}
}

func (nav *Navigator) renderToasts() {
	items := nav.notifications.Items()
	nav.toasts.Render(items)
	nav.main.ResizeItem(nav.toasts, len(items), 0)
}

func (nav *Navigator) frontPage() string {
	name, _ := nav.GetFrontPage()
	return name
}

func (nav *Navigator) showPage(name string, focus tview.Primitive) {
	nav.ShowPage(name)
	nav.SendToFront(name)
	nav.setAppFocus(focus)
}

func (nav *Navigator) hidePage(name string) {
	nav.HidePage(name)
	nav.setAppFocus(nav.files)
}

func (nav *Navigator) showConfirm(prompt rtconfirm.Prompt) {
	nav.confirmDialog.SetPrompt(prompt)
	nav.showPage(pageConfirm, nav.confirmDialog)
}

func (nav *Navigator) ShowHelp() {
	nav.showPage(pageHelp, nav.helpButton)
}

func (nav *Navigator) closeHelp() {
	nav.hidePage(pageHelp)
}

func (nav *Navigator) ShowUpload() {
	nav.uploadDialog.Reset()
	nav.showPage(pageUpload, nav.uploadDialog)
}

func (nav *Navigator) closeUpload() {
	nav.hidePage(pageUpload)
}

// SaveState persists the file under the cursor. It is called once the
// session ends rather than on every cursor move.
func (nav *Navigator) SaveState() {
	nav.o.stateSaver.SaveCurrentFile(nav.files.currentFileName)
}

func (nav *Navigator) Quit() {
	nav.log.Info().Msg("quit")
	nav.app.Stop()
}
