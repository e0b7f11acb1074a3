package media

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders for the formats the sheet may reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Orientation classifies an image by its width/height ratio. The Ads API
// exposes distinct asset field types per orientation, so the classification
// selects the enum value for an image or logo asset.
type Orientation int

const (
	// OrientationSquare: width == height.
	OrientationSquare Orientation = iota
	// OrientationPortrait: width < height.
	OrientationPortrait
	// OrientationLandscape: width > height.
	OrientationLandscape
)

func (o Orientation) String() string {
	switch o {
	case OrientationSquare:
		return "square"
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	default:
		return "unknown"
	}
}

// Classify decodes the image header and returns its orientation.
func Classify(data []byte) (Orientation, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, fmt.Errorf("invalid %s dimensions %dx%d", format, cfg.Width, cfg.Height)
	}

	switch {
	case cfg.Width == cfg.Height:
		return OrientationSquare, nil
	case cfg.Width < cfg.Height:
		return OrientationPortrait, nil
	default:
		return OrientationLandscape, nil
	}
}
