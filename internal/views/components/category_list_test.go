package components

import (
	"testing"

	"budget-assistant/internal/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$100", FormatTarget("$", 100))
	assert.Equal(t, "€0", FormatTarget("€", 0))
	assert.Equal(t, "per week", FormatTimeframe("week"))
	assert.Equal(t, "per fortnight", FormatTimeframe("fortnight"))
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hey Will!", Greeting("Will"))
	assert.Equal(t, "Hey there!", Greeting(""))
	assert.Equal(t, "Hey there!", Greeting("   "))
}

func TestCategoryRow_Update(t *testing.T) {
	test.NewTempApp(t)
	row := newCategoryRow()
	row.update(models.Category{ID: "1", Name: "Eating out", Target: 100, Timeframe: "week"}, "$")
	assert.Equal(t, "Eating out $100 per week", row.Text())
}

func TestCategoryList_SetCategories(t *testing.T) {
	test.NewTempApp(t)
	cl := NewCategoryList("$")
	assert.Equal(t, 0, cl.Length())
	assert.True(t, cl.emptyLabel.Visible())

	cl.SetCategories([]models.Category{
		{ID: "1", Name: "Eating out", Target: 100, Timeframe: "week"},
		{ID: "2", Name: "Groceries", Target: 250, Timeframe: "month"},
	})
	assert.Equal(t, 2, cl.Length())
	assert.Equal(t, 2, cl.list.Length())
	assert.False(t, cl.emptyLabel.Visible())

	row := cl.list.CreateItem().(*categoryRow)
	cl.list.UpdateItem(1, row)
	assert.Equal(t, "Groceries $250 per month", row.Text())
}

func TestCategoryList_DisplayOwnsItsCopy(t *testing.T) {
	test.NewTempApp(t)
	cl := NewCategoryList("$")
	input := []models.Category{{ID: "1", Name: "Rent", Target: 1200, Timeframe: "month"}}
	cl.SetCategories(input)

	input[0].Name = "changed"
	row := newCategoryRow()
	cl.list.UpdateItem(0, row)
	assert.Equal(t, "Rent $1200 per month", row.Text())
}
