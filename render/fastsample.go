package render

import (
	"errors"
	"math"

	"github.com/faiface/beep"
)

// FastSample pulls numSamples evenly spaced key samples out of a seekable
// stream instead of draining the whole thing, which keeps plotting cheap for
// long clips.
func FastSample(stream beep.StreamSeeker, numSamples int) ([][2]float64, error) {
	everyNth := int(math.Round(float64(stream.Len()) / float64(numSamples)))
	if everyNth < 1 {
		everyNth = 1
	}
	samples := make([][2]float64, numSamples)
	totalRead := 0
	for i := range samples {
		pos := i * everyNth
		if pos >= stream.Len() {
			break
		}
		if stream.Position() != pos {
			err := stream.Seek(pos)
			if err != nil {
				return nil, errors.New("fast-sample: could not seek: " + err.Error())
			}
		}

		sample := make([][2]float64, 1)
		n, _ := stream.Stream(sample)
		if stream.Err() != nil {
			return nil, errors.New("fast-sample: could not stream: " + stream.Err().Error())
		}
		if n > 0 {
			samples[i] = sample[0]
			totalRead++
		} else {
			break
		}
	}
	if totalRead != len(samples) {
		return samples[:totalRead], nil
	}
	return samples, nil
}
