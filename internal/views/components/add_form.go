package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// FormValues are the live contents of the add form's three entries.
type FormValues struct {
	Name      string
	Target    string
	Timeframe string
}

func (v FormValues) complete() bool {
	return v.Name != "" && v.Target != "" && v.Timeframe != ""
}

// AddCategoryForm collects a new category. Save stays disabled until the
// enablement predicate accepts the current entry contents.
type AddCategoryForm struct {
	container      *fyne.Container
	nameEntry      *widget.Entry
	targetEntry    *widget.Entry
	timeframeEntry *widget.Entry
	errorLabel     *widget.Label
	saveButton     *widget.Button
	cancelButton   *widget.Button

	canSubmit      func(FormValues) bool
	submitHandler  func(FormValues) error
	dismissHandler func()
}

func NewAddCategoryForm() *AddCategoryForm {
	f := &AddCategoryForm{
		canSubmit: FormValues.complete,
	}
	f.createComponents()
	f.buildLayout()
	f.setupEventHandlers()
	f.updateSaveState()
	return f
}

func (f *AddCategoryForm) createComponents() {
	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetPlaceHolder("Category Name")

	f.targetEntry = widget.NewEntry()
	f.targetEntry.SetPlaceHolder("Target Amount")

	f.timeframeEntry = widget.NewEntry()
	f.timeframeEntry.SetPlaceHolder("Timeframe (e.g., week, month)")

	f.errorLabel = widget.NewLabel("")
	f.errorLabel.Importance = widget.DangerImportance
	f.errorLabel.Wrapping = fyne.TextWrapWord
	f.errorLabel.Hide()

	f.saveButton = widget.NewButton("Save", nil)
	f.saveButton.Importance = widget.HighImportance

	f.cancelButton = widget.NewButton("Cancel", nil)
}

func (f *AddCategoryForm) buildLayout() {
	details := widget.NewCard("", "New Category Details", container.NewVBox(
		f.nameEntry,
		f.targetEntry,
		f.timeframeEntry,
	))

	buttons := container.NewHBox(f.cancelButton, layout.NewSpacer(), f.saveButton)

	f.container = container.NewVBox(details, f.errorLabel, buttons)
}

func (f *AddCategoryForm) setupEventHandlers() {
	onChanged := func(string) {
		f.clearError()
		f.updateSaveState()
	}
	f.nameEntry.OnChanged = onChanged
	f.targetEntry.OnChanged = onChanged
	f.timeframeEntry.OnChanged = onChanged

	f.saveButton.OnTapped = f.submit
	f.cancelButton.OnTapped = func() {
		f.Reset()
		f.dismiss()
	}
}

// SetSubmitHandler sets the callback run on Save. A returned error keeps the
// form open and is shown beneath the entries.
func (f *AddCategoryForm) SetSubmitHandler(handler func(FormValues) error) {
	f.submitHandler = handler
}

// SetDismissHandler sets the callback run after a successful save or cancel.
func (f *AddCategoryForm) SetDismissHandler(handler func()) {
	f.dismissHandler = handler
}

// SetCanSubmit replaces the Save enablement predicate.
func (f *AddCategoryForm) SetCanSubmit(predicate func(FormValues) bool) {
	if predicate == nil {
		predicate = FormValues.complete
	}
	f.canSubmit = predicate
	f.updateSaveState()
}

// Values returns the current entry contents.
func (f *AddCategoryForm) Values() FormValues {
	return FormValues{
		Name:      f.nameEntry.Text,
		Target:    f.targetEntry.Text,
		Timeframe: f.timeframeEntry.Text,
	}
}

// SetValues fills the entries, as if typed by the user.
func (f *AddCategoryForm) SetValues(v FormValues) {
	f.nameEntry.SetText(v.Name)
	f.targetEntry.SetText(v.Target)
	f.timeframeEntry.SetText(v.Timeframe)
}

// Submit behaves like tapping Save.
func (f *AddCategoryForm) Submit() {
	if f.saveButton.Disabled() {
		return
	}
	f.submit()
}

// Reset clears all entries and any error.
func (f *AddCategoryForm) Reset() {
	f.nameEntry.SetText("")
	f.targetEntry.SetText("")
	f.timeframeEntry.SetText("")
	f.clearError()
	f.updateSaveState()
}

func (f *AddCategoryForm) ShowError(message string) {
	f.errorLabel.SetText(message)
	f.errorLabel.Show()
}

func (f *AddCategoryForm) ErrorText() string {
	if !f.errorLabel.Visible() {
		return ""
	}
	return f.errorLabel.Text
}

func (f *AddCategoryForm) SaveEnabled() bool {
	return !f.saveButton.Disabled()
}

func (f *AddCategoryForm) GetContainer() *fyne.Container {
	return f.container
}

// FocusTarget is the entry that should receive focus when the form opens.
func (f *AddCategoryForm) FocusTarget() fyne.Focusable {
	return f.nameEntry
}

func (f *AddCategoryForm) submit() {
	values := f.Values()
	if !f.canSubmit(values) || f.submitHandler == nil {
		return
	}

	if err := f.submitHandler(values); err != nil {
		f.ShowError(capitalize(err.Error()))
		return
	}

	f.Reset()
	f.dismiss()
}

func (f *AddCategoryForm) dismiss() {
	if f.dismissHandler != nil {
		f.dismissHandler()
	}
}

func (f *AddCategoryForm) clearError() {
	if f.errorLabel.Visible() {
		f.errorLabel.SetText("")
		f.errorLabel.Hide()
	}
}

func (f *AddCategoryForm) updateSaveState() {
	if f.canSubmit(f.Values()) {
		f.saveButton.Enable()
	} else {
		f.saveButton.Disable()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
