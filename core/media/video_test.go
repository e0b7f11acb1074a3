package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	valid := []struct {
		name string
		url  string
	}{
		{"Watch Query", "https://www.youtube.com/watch?v=qqiqlJEvTvg"},
		{"Short Link", "https://youtu.be/qqiqlJEvTvg"},
		{"Embed Path", "https://www.youtube.com/embed/qqiqlJEvTvg"},
		{"Shorts Path", "https://www.youtube.com/shorts/qqiqlJEvTvg"},
		{"V Path", "https://www.youtube.com/v/qqiqlJEvTvg"},
		{"User Path", "https://www.youtube.com/u/someuser/qqiqlJEvTvg"},
		{"Secondary Query Param", "https://www.youtube.com/watch?list=abc&v=qqiqlJEvTvg"},
	}

	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ExtractVideoID(tc.url)
			assert.NoError(t, err)
			assert.Equal(t, "qqiqlJEvTvg", id)
		})
	}

	invalid := []struct {
		name string
		url  string
	}{
		{"Not YouTube", "https://vimeo.com/123456789"},
		{"Channel Page", "https://www.youtube.com/channel/UCabc"},
		{"Empty", ""},
		{"Plain Text", "not a url"},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractVideoID(tc.url)
			assert.ErrorIs(t, err, ErrInvalidVideoURL)
		})
	}
}
