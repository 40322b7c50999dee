package utils

import (
	"encoding/json"
	"strings"

	"motionklub/internal/domain"
)

// ImagesToString encodes image URLs as a JSON array for a text column.
func ImagesToString(images []domain.Image) string {
	if len(images) == 0 {
		return "[]"
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	data, _ := json.Marshal(urls)
	return string(data)
}

// StringToImages decodes ImagesToString output. Rows written by hand as a
// comma separated list are accepted too.
func StringToImages(s string) []domain.Image {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(s), &urls); err != nil {
		urls = strings.Split(s, ",")
	}

	images := make([]domain.Image, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			images = append(images, domain.Image{URL: u})
		}
	}
	return images
}
