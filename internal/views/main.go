package views

import (
	"image/color"

	"budget-assistant/internal/models"
	"budget-assistant/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var backgroundColor = color.NRGBA{R: 0xff, G: 0xfa, B: 0xf0, A: 0xff}

// Options configures presentation details that come from configuration.
type Options struct {
	UserName       string
	CurrencySymbol string
}

// MainView is the single screen: greeting, category table and the add button.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	header        *components.Header
	categoryList  *components.CategoryList
	addButton     *widget.Button
	addForm       *components.AddCategoryForm
	addDialog     *dialog.CustomDialog

	addCategoryHandler func(components.FormValues) error
	addFormShown       bool
}

func NewMainView(window fyne.Window, opts Options) *MainView {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}

	view := &MainView{
		window: window,
	}

	view.initializeComponents(opts)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(opts Options) {
	mv.header = components.NewHeader(opts.UserName)
	mv.categoryList = components.NewCategoryList(opts.CurrencySymbol)
	mv.addButton = widget.NewButtonWithIcon("Add New Category", theme.ContentAddIcon(), nil)
	mv.addForm = components.NewAddCategoryForm()
	mv.addDialog = dialog.NewCustomWithoutButtons("Add Category", mv.addForm.GetContainer(), mv.window)
}

func (mv *MainView) buildLayout() {
	content := container.NewBorder(
		mv.header.GetContainer(),
		container.NewPadded(mv.addButton),
		nil,
		nil,
		mv.categoryList.GetContainer(),
	)

	mv.mainContainer = container.NewStack(
		canvas.NewRectangle(backgroundColor),
		container.NewPadded(content),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.addButton.OnTapped = mv.ShowAddForm

	mv.addForm.SetSubmitHandler(func(values components.FormValues) error {
		if mv.addCategoryHandler == nil {
			return nil
		}
		return mv.addCategoryHandler(values)
	})
	mv.addForm.SetDismissHandler(mv.HideAddForm)

	mv.addDialog.SetOnClosed(func() {
		mv.addFormShown = false
	})
}

// Event handler setters - called by controller

// SetAddCategoryHandler sets the handler run when the add form is saved.
func (mv *MainView) SetAddCategoryHandler(handler func(components.FormValues) error) {
	mv.addCategoryHandler = handler
}

// SetCanSubmitPredicate sets the rule deciding when Save is enabled.
func (mv *MainView) SetCanSubmitPredicate(predicate func(components.FormValues) bool) {
	mv.addForm.SetCanSubmit(predicate)
}

// UI update methods - called by controller

// SetCategories redraws the category table.
func (mv *MainView) SetCategories(categories []models.Category) {
	mv.categoryList.SetCategories(categories)
}

// ShowAddForm presents the add form modally with empty entries.
func (mv *MainView) ShowAddForm() {
	mv.addForm.Reset()
	mv.addDialog.Show()
	mv.addDialog.Resize(fyne.NewSize(360, mv.addForm.GetContainer().MinSize().Height))
	mv.addFormShown = true
	mv.window.Canvas().Focus(mv.addForm.FocusTarget())
}

func (mv *MainView) HideAddForm() {
	mv.addDialog.Hide()
	mv.addFormShown = false
}

func (mv *MainView) AddFormVisible() bool {
	return mv.addFormShown
}

// AddForm exposes the form component so callers can drive it programmatically.
func (mv *MainView) AddForm() *components.AddCategoryForm {
	return mv.addForm
}

func (mv *MainView) CategoryCount() int {
	return mv.categoryList.Length()
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}
