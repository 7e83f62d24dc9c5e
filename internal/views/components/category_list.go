package components

import (
	"fmt"

	"budget-assistant/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// FormatTarget renders a target amount with its currency symbol, e.g. "$100".
func FormatTarget(symbol string, target int) string {
	return fmt.Sprintf("%s%d", symbol, target)
}

// FormatTimeframe renders the recurrence suffix, e.g. "per week".
func FormatTimeframe(timeframe string) string {
	return "per " + timeframe
}

// CategoryList shows one row per category in insertion order.
type CategoryList struct {
	container      *fyne.Container
	columnHeaders  *fyne.Container
	list           *widget.List
	emptyLabel     *widget.Label
	categories     []models.Category
	currencySymbol string
}

func NewCategoryList(currencySymbol string) *CategoryList {
	cl := &CategoryList{currencySymbol: currencySymbol}
	cl.createComponents()
	cl.buildLayout()
	return cl
}

func (cl *CategoryList) createComponents() {
	cl.columnHeaders = container.NewHBox(
		widget.NewLabelWithStyle("Category", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		widget.NewLabelWithStyle("Target", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
	)

	cl.list = widget.NewList(
		func() int {
			return len(cl.categories)
		},
		func() fyne.CanvasObject {
			return newCategoryRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(cl.categories) {
				return
			}
			obj.(*categoryRow).update(cl.categories[id], cl.currencySymbol)
		},
	)

	cl.emptyLabel = widget.NewLabel("No categories yet")
}

func (cl *CategoryList) buildLayout() {
	cl.container = container.NewBorder(
		container.NewVBox(cl.columnHeaders, widget.NewSeparator()),
		nil,
		nil,
		nil,
		container.NewStack(cl.emptyLabel, cl.list),
	)
}

// SetCategories replaces the displayed rows.
func (cl *CategoryList) SetCategories(categories []models.Category) {
	cl.categories = append([]models.Category(nil), categories...)
	if len(cl.categories) == 0 {
		cl.emptyLabel.Show()
	} else {
		cl.emptyLabel.Hide()
	}
	cl.list.Refresh()
}

func (cl *CategoryList) Length() int {
	return len(cl.categories)
}

func (cl *CategoryList) GetContainer() *fyne.Container {
	return cl.container
}

// categoryRow lays out name on the left and "$target per timeframe" on the right.
type categoryRow struct {
	widget.BaseWidget
	name      *widget.Label
	target    *widget.Label
	timeframe *widget.Label
}

func newCategoryRow() *categoryRow {
	row := &categoryRow{
		name:      widget.NewLabel(""),
		target:    widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		timeframe: widget.NewLabel(""),
	}
	row.name.Truncation = fyne.TextTruncateEllipsis
	row.ExtendBaseWidget(row)
	return row
}

func (r *categoryRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(
		nil, nil, nil,
		container.NewHBox(r.target, r.timeframe),
		r.name,
	))
}

func (r *categoryRow) update(c models.Category, currencySymbol string) {
	r.name.SetText(c.Name)
	r.target.SetText(FormatTarget(currencySymbol, c.Target))
	r.timeframe.SetText(FormatTimeframe(c.Timeframe))
}

// Text returns the row as it reads on screen.
func (r *categoryRow) Text() string {
	return fmt.Sprintf("%s %s %s", r.name.Text, r.target.Text, r.timeframe.Text)
}
