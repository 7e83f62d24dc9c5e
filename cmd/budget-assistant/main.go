package main

import (
	"fmt"
	"log"
	"runtime"

	"budget-assistant/internal/config"
	"budget-assistant/internal/controllers"
	"budget-assistant/internal/logger"
	"budget-assistant/internal/models"
	"budget-assistant/internal/services"
	"budget-assistant/internal/shutdown"
	"budget-assistant/internal/storage"
	"budget-assistant/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "WillPower Budget Assistant"
	AppID      = "com.willpower.budget-assistant"
	AppVersion = "1.0.0"
)

// Application holds the long-lived components built at startup.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView
	slot       storage.Slot

	shutdown *shutdown.Manager
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication wires configuration, storage, service, controller and view.
func NewApplication(cfg *config.Config) (*Application, error) {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(420, 720))

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.EffectiveLogLevel()))
	appLogger.Info("Application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"store":      cfg.Store,
		"slot_key":   cfg.SlotKey,
		"log_level":  cfg.EffectiveLogLevel(),
	})

	slot, err := storage.Open(cfg, fyneApp.Preferences())
	if err != nil {
		return nil, fmt.Errorf("open category storage: %w", err)
	}

	repository := models.NewCategoryRepository(slot)
	categoryService := services.NewCategoryService(repository, appLogger)

	mainController := controllers.NewMainController(categoryService, appLogger)
	mainView := views.NewMainView(window, views.Options{
		UserName:       cfg.UserName,
		CurrencySymbol: cfg.CurrencySymbol,
	})
	mainController.SetMainView(mainView)
	mainController.Start()

	shutdownManager := shutdown.NewManager(appLogger)
	if closable, ok := slot.(shutdown.Shutdownable); ok {
		shutdownManager.Register(closable)
	}
	shutdownManager.Register(mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		slot:       slot,
		shutdown:   shutdownManager,
	}

	application.setupWindowEvents()

	return application, nil
}

// Run shows the main window and blocks until the application quits.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetMaster()
	a.window.SetOnClosed(func() {
		a.logger.Debug("Window closed", nil)
		a.shutdown.Shutdown()
	})
}
