package render

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

func EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG)
}

// StreamPNG encodes the image on a pipe so callers can consume it without
// buffering the whole file.
func StreamPNG(img image.Image) io.ReadCloser {
	pr, pw := io.Pipe()
	go func(pw *io.PipeWriter, img image.Image) {
		encErr := imaging.Encode(pw, img, imaging.PNG)
		if encErr != nil {
			_ = pw.CloseWithError(encErr)
		} else {
			_ = pw.Close()
		}
	}(pw, img)
	return pr
}
