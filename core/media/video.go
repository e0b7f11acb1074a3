package media

import (
	"errors"
	"regexp"
)

// ErrInvalidVideoURL marks a video reference that matches none of the
// recognized YouTube URL shapes.
var ErrInvalidVideoURL = errors.New("no video id found in url")

// videoIDPattern recognizes the common YouTube URL shapes: youtu.be short
// links, /v/, /u/<user>/, /embed/, /shorts/ paths, and watch?v= query forms.
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w+/|/embed/|/shorts/|watch\?v=|&v=)([A-Za-z0-9_-]{11})`)

// ExtractVideoID pulls the platform video id out of a YouTube URL.
func ExtractVideoID(rawURL string) (string, error) {
	match := videoIDPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", ErrInvalidVideoURL
	}
	return match[1], nil
}
