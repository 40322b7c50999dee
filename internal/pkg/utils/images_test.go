package utils

import (
	"testing"

	"motionklub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestImagesToString(t *testing.T) {
	assert.Equal(t, "[]", ImagesToString(nil))
	assert.Equal(t, `["a.jpg","b.jpg"]`, ImagesToString([]domain.Image{{URL: "a.jpg"}, {URL: "b.jpg"}}))
}

func TestStringToImages(t *testing.T) {
	assert.Nil(t, StringToImages(""))
	assert.Nil(t, StringToImages("[]"))
	assert.Equal(t, []domain.Image{{URL: "a.jpg"}, {URL: "b.jpg"}}, StringToImages(`["a.jpg","b.jpg"]`))
	assert.Equal(t, []domain.Image{{URL: "a.jpg"}, {URL: "b.jpg"}}, StringToImages("a.jpg, b.jpg"))
}
