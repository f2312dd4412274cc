package img

import (
	"bytes"
	"fmt"

	"github.com/sunshineplan/imgconv"
)

// Downscale caps an image at maxMPXS megapixels, re-encoding as PNG.
// Images already under the cap are returned untouched.
func Downscale(imageData []byte, maxMPXS float64) ([]byte, error) {
	decoded, err := imgconv.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %v", err)
	}

	bounds := decoded.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	currentMPXS := float64(width*height) / 1000000.0

	if currentMPXS <= maxMPXS {
		return imageData, nil
	}

	ratio := maxMPXS / currentMPXS
	resized := imgconv.Resize(decoded, &imgconv.ResizeOption{
		Width:  int(float64(width) * ratio),
		Height: int(float64(height) * ratio),
	})

	var buf bytes.Buffer
	if err := imgconv.Write(&buf, resized, &imgconv.FormatOption{Format: imgconv.PNG}); err != nil {
		return nil, fmt.Errorf("error encoding PNG: %v", err)
	}

	return buf.Bytes(), nil
}
