package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory is returned when a label or name does not match any category.
var ErrInvalidCategory = errors.New("invalid category")

// Category is the cuisine classification of a recipe. The value is the
// symbolic name, which is what gets persisted.
type Category string

const (
	Korean   Category = "KOREAN"
	Japanese Category = "JAPANESE"
	Chinese  Category = "CHINESE"
	Western  Category = "WESTERN"
)

var displayNames = map[Category]string{
	Korean:   "한식",
	Japanese: "일식",
	Chinese:  "중식",
	Western:  "양식",
}

var byDisplayName = map[string]Category{
	"한식": Korean,
	"일식": Japanese,
	"중식": Chinese,
	"양식": Western,
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Korean, Japanese, Chinese, Western}
}

// DisplayName returns the human readable label of the category.
func (c Category) DisplayName() string {
	return displayNames[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory maps a display label (e.g. "한식") to its category.
// Matching is exact.
func ParseCategory(label string) (Category, error) {
	c, ok := byDisplayName[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, label)
	}
	return c, nil
}

// ParseCategoryName maps a symbolic name such as "korean" or "KOREAN" to its category.
func ParseCategoryName(name string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, name)
	}
	return c, nil
}
