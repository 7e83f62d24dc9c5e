package components

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(f *AddCategoryForm, name, target, timeframe string) {
	test.Type(f.nameEntry, name)
	test.Type(f.targetEntry, target)
	test.Type(f.timeframeEntry, timeframe)
}

func TestAddCategoryForm_SaveDisabledUntilAllFieldsFilled(t *testing.T) {
	test.NewTempApp(t)
	f := NewAddCategoryForm()
	assert.False(t, f.SaveEnabled())

	test.Type(f.nameEntry, "Eating out")
	assert.False(t, f.SaveEnabled())
	test.Type(f.targetEntry, "100")
	assert.False(t, f.SaveEnabled())
	test.Type(f.timeframeEntry, "week")
	assert.True(t, f.SaveEnabled())

	f.targetEntry.SetText("")
	assert.False(t, f.SaveEnabled())
}

func TestAddCategoryForm_SubmitsLiveFieldValues(t *testing.T) {
	test.NewTempApp(t)
	f := NewAddCategoryForm()

	var got FormValues
	dismissed := false
	f.SetSubmitHandler(func(v FormValues) error {
		got = v
		return nil
	})
	f.SetDismissHandler(func() { dismissed = true })

	fill(f, "Groceries", "250", "month")
	test.Tap(f.saveButton)

	assert.Equal(t, FormValues{Name: "Groceries", Target: "250", Timeframe: "month"}, got)
	assert.True(t, dismissed)
	assert.Equal(t, FormValues{}, f.Values())
	assert.False(t, f.SaveEnabled())
}

func TestAddCategoryForm_TapOnDisabledSaveDoesNothing(t *testing.T) {
	test.NewTempApp(t)
	f := NewAddCategoryForm()

	called := false
	f.SetSubmitHandler(func(FormValues) error {
		called = true
		return nil
	})

	test.Type(f.nameEntry, "Coffee")
	test.Tap(f.saveButton)
	assert.False(t, called)
}

func TestAddCategoryForm_SubmitErrorKeepsFormOpen(t *testing.T) {
	test.NewTempApp(t)
	f := NewAddCategoryForm()

	dismissed := false
	f.SetSubmitHandler(func(FormValues) error {
		return errors.New(`target amount "abc" is not a whole number`)
	})
	f.SetDismissHandler(func() { dismissed = true })

	fill(f, "Coffee", "abc", "week")
	test.Tap(f.saveButton)

	assert.False(t, dismissed)
	assert.Equal(t, `Target amount "abc" is not a whole number`, f.ErrorText())
	assert.Equal(t, FormValues{Name: "Coffee", Target: "abc", Timeframe: "week"}, f.Values())

	test.Type(f.targetEntry, "1")
	assert.Empty(t, f.ErrorText())
}

func TestAddCategoryForm_CancelResetsAndDismisses(t *testing.T) {
	test.NewTempApp(t)
	f := NewAddCategoryForm()

	dismissed := false
	submitted := false
	f.SetSubmitHandler(func(FormValues) error {
		submitted = true
		return nil
	})
	f.SetDismissHandler(func() { dismissed = true })

	fill(f, "Coffee", "10", "week")
	test.Tap(f.cancelButton)

	assert.True(t, dismissed)
	assert.False(t, submitted)
	assert.Equal(t, FormValues{}, f.Values())
}

func TestAddCategoryForm_CustomPredicate(t *testing.T) {
	test.NewTempApp(t)
	f := NewAddCategoryForm()
	f.SetCanSubmit(func(v FormValues) bool { return v.Name == "ok" })
	require.False(t, f.SaveEnabled())

	test.Type(f.nameEntry, "ok")
	assert.True(t, f.SaveEnabled())

	f.SetCanSubmit(nil)
	assert.False(t, f.SaveEnabled())
}
