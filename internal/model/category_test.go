package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDisplayNameRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		label := c.DisplayName()
		assert.NotEmpty(t, label)

		parsed, err := ParseCategory(label)
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.Equal(t, label, parsed.DisplayName())
	}
}

func TestParseCategoryRejectsUnknownLabels(t *testing.T) {
	for _, label := range []string{"", "떡볶이", "KOREAN", " 한식", "한식 "} {
		_, err := ParseCategory(label)
		assert.ErrorIs(t, err, ErrInvalidCategory, "label %q", label)
	}
}

func TestParseCategoryName(t *testing.T) {
	c, err := ParseCategoryName("korean")
	require.NoError(t, err)
	assert.Equal(t, Korean, c)

	c, err = ParseCategoryName("WESTERN")
	require.NoError(t, err)
	assert.Equal(t, Western, c)

	_, err = ParseCategoryName("italian")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseCategoryName("일식")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, Chinese.Valid())
	assert.False(t, Category("THAI").Valid())
	assert.Equal(t, "", Category("THAI").DisplayName())
}
