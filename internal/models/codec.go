package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// storedCategory mirrors Category with every field required on decode.
type storedCategory struct {
	ID        *string `json:"id"`
	Name      *string `json:"catName"`
	Target    *int    `json:"target"`
	Timeframe *string `json:"timeframe"`
}

func (s storedCategory) toCategory(index int) (Category, error) {
	if s.ID == nil || s.Name == nil || s.Target == nil || s.Timeframe == nil {
		return Category{}, fmt.Errorf("%w: entry %d is missing a field", ErrDecode, index)
	}
	if _, err := uuid.Parse(*s.ID); err != nil {
		return Category{}, fmt.Errorf("%w: entry %d has invalid id %q", ErrDecode, index, *s.ID)
	}
	if *s.Target < 0 {
		return Category{}, fmt.Errorf("%w: entry %d has negative target", ErrDecode, index)
	}
	return Category{
		ID:        *s.ID,
		Name:      *s.Name,
		Target:    *s.Target,
		Timeframe: *s.Timeframe,
	}, nil
}

// EncodeCategories serializes the list as a JSON array of category objects.
// A nil list encodes as an empty array.
func EncodeCategories(categories []Category) ([]byte, error) {
	if categories == nil {
		categories = []Category{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// DecodeCategories parses a persisted blob. Empty or malformed input, or any
// entry with a missing field, a non-UUID id or a negative target, rejects
// the whole blob with ErrDecode.
func DecodeCategories(data []byte) ([]Category, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty blob", ErrDecode)
	}

	var stored []storedCategory
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	categories := make([]Category, 0, len(stored))
	for i, s := range stored {
		c, err := s.toCategory(i)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
