package controllers

import (
	"errors"
	"fmt"

	"budget-assistant/internal/logger"
	"budget-assistant/internal/models"
	"budget-assistant/internal/services"
	"budget-assistant/internal/views"
	"budget-assistant/internal/views/components"
)

// MainController connects the category service to the main view.
type MainController struct {
	categoryService *services.CategoryService
	mainView        *views.MainView
	logger          logger.Logger
}

func NewMainController(categoryService *services.CategoryService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		categoryService: categoryService,
		logger:          log.WithComponent("controller"),
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetAddCategoryHandler(mc.AddCategory)
	mc.mainView.SetCanSubmitPredicate(func(v components.FormValues) bool {
		return mc.categoryService.CanSubmit(toInput(v))
	})
}

// Start loads persisted categories and renders them.
func (mc *MainController) Start() {
	categories := mc.categoryService.Startup()
	if mc.mainView != nil {
		mc.mainView.SetCategories(categories)
	}
}

// AddCategory handles a saved add form. Errors are returned to the form so
// it can stay open and show them.
func (mc *MainController) AddCategory(values components.FormValues) error {
	list, err := mc.categoryService.AddCategory(toInput(values))
	if err != nil {
		return mc.describeError(err)
	}

	if mc.mainView != nil {
		mc.mainView.SetCategories(list)
	}
	return nil
}

// Categories returns what the view is currently showing.
func (mc *MainController) Categories() []models.Category {
	return mc.categoryService.Categories()
}

// describeError maps service errors to text suitable for the form.
func (mc *MainController) describeError(err error) error {
	var parseErr *models.ParseError
	switch {
	case errors.As(err, &parseErr):
		return parseErr
	case errors.Is(err, services.ErrInvalidInput):
		return err
	case errors.Is(err, models.ErrEncode), errors.Is(err, models.ErrWrite):
		return fmt.Errorf("could not save category, please try again: %w", err)
	default:
		mc.logger.Error("unexpected add failure", err, nil)
		return err
	}
}

// Shutdown logs the final state; storage is released by its owner.
func (mc *MainController) Shutdown() {
	mc.logger.Info("controller shutdown", map[string]interface{}{
		"categories": len(mc.categoryService.Categories()),
	})
}

func toInput(v components.FormValues) services.CategoryInput {
	return services.CategoryInput{
		Name:      v.Name,
		Target:    v.Target,
		Timeframe: v.Timeframe,
	}
}
