package services

import (
	"errors"
	"fmt"
	"strings"

	"budget-assistant/internal/logger"
	"budget-assistant/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is returned when a required form field is missing.
var ErrInvalidInput = errors.New("invalid category input")

// CategoryInput carries the three raw values typed into the add form.
type CategoryInput struct {
	Name      string `validate:"required"`
	Target    string `validate:"required"`
	Timeframe string `validate:"required"`
}

var fieldLabels = map[string]string{
	"Name":      "category name",
	"Target":    "target amount",
	"Timeframe": "timeframe",
}

func (in CategoryInput) normalized() CategoryInput {
	return CategoryInput{
		Name:      strings.TrimSpace(in.Name),
		Target:    strings.TrimSpace(in.Target),
		Timeframe: strings.TrimSpace(in.Timeframe),
	}
}

// CategoryService is the only path through which the UI reads or grows the
// category list.
type CategoryService struct {
	repository *models.CategoryRepository
	validate   *validator.Validate
	logger     logger.Logger
}

func NewCategoryService(repo *models.CategoryRepository, log logger.Logger) *CategoryService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &CategoryService{
		repository: repo,
		validate:   validator.New(),
		logger:     log.WithComponent("category_service"),
	}
}

// Startup loads the persisted list. A missing or unreadable blob is logged
// and the application starts with an empty list.
func (s *CategoryService) Startup() []models.Category {
	if err := s.repository.Load(); err != nil {
		s.logger.Warning("starting with empty category list", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		s.logger.Info("categories loaded", map[string]interface{}{
			"count": s.repository.Len(),
		})
	}
	return s.repository.Categories()
}

// CanSubmit reports whether every field of the live form holds a value.
func (s *CategoryService) CanSubmit(in CategoryInput) bool {
	return s.validate.Struct(in.normalized()) == nil
}

// AddCategory validates the form values and appends a new category.
// Parse failures come back as *models.ParseError so the form can show them.
func (s *CategoryService) AddCategory(in CategoryInput) ([]models.Category, error) {
	in = in.normalized()

	if err := s.validate.Struct(in); err != nil {
		return nil, s.formatValidationError(err)
	}

	list, err := s.repository.Add(in.Name, in.Target, in.Timeframe)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrParse):
		s.logger.Debug("rejected target amount", map[string]interface{}{
			"target": in.Target,
		})
		return nil, err
	default:
		s.logger.Error("failed to persist category", err, map[string]interface{}{
			"name":      in.Name,
			"timeframe": in.Timeframe,
		})
		return nil, err
	}

	s.logger.Info("category added", map[string]interface{}{
		"name":      in.Name,
		"target":    list[len(list)-1].Target,
		"timeframe": in.Timeframe,
		"count":     len(list),
	})
	return list, nil
}

// Categories returns the current list in insertion order.
func (s *CategoryService) Categories() []models.Category {
	return s.repository.Categories()
}

func (s *CategoryService) formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := fieldLabels[fe.Field()]
		if !ok {
			label = strings.ToLower(fe.Field())
		}
		missing = append(missing, label)
	}
	return fmt.Errorf("%w: %s required", ErrInvalidInput, strings.Join(missing, ", "))
}
