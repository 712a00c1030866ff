package signal

import (
	"fmt"
	"io"

	"github.com/faiface/beep"
)

// FromStream drains a decoded sample stream into a tensor tagged with the
// rate the decoder reported. Streams with more than two channels are not a
// thing in beep, so the matrix ends up with one or two rows.
func FromStream(audio beep.Streamer, format beep.Format) (*Tensor, error) {
	nch := format.NumChannels
	if nch > 2 {
		nch = 2
	}
	if nch < 1 {
		nch = 1
	}

	chans := make([][]float64, nch)
	for i := range chans {
		chans[i] = make([]float64, 0)
	}

	moreSamples := true
	samples := make([][2]float64, 65536)
	for moreSamples {
		n, ok := audio.Stream(samples)
		if n == 0 {
			moreSamples = false
		}
		if !ok {
			if audio.Err() != nil && audio.Err() != io.EOF {
				return nil, fmt.Errorf("beep: error sampling audio: %w", audio.Err())
			}
			moreSamples = false
		}
		for i := 0; i < n; i++ {
			chans[0] = append(chans[0], samples[i][0])
			if nch == 2 {
				chans[1] = append(chans[1], samples[i][1])
			}
		}
	}

	return &Tensor{data: chans, rate: int(format.SampleRate)}, nil
}

// Format describes the tensor as a beep format, for handing back to the beep
// machinery (WAV encoding, speaker playback).
func (t *Tensor) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(t.rate),
		NumChannels: t.NumChannels(),
		Precision:   2,
	}
}

// Streamer adapts the tensor back into a seekable beep stream. Mono tensors
// mirror their single channel onto both stereo slots, which is how beep's own
// decoders behave.
func (t *Tensor) Streamer() beep.StreamSeeker {
	return &tensorStreamer{t: t}
}

type tensorStreamer struct {
	t   *Tensor
	pos int
}

func (s *tensorStreamer) Stream(samples [][2]float64) (int, bool) {
	total := s.t.NumSamples()
	if s.pos >= total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= total {
			break
		}
		left := s.t.data[0][s.pos]
		right := left
		if s.t.NumChannels() > 1 {
			right = s.t.data[1][s.pos]
		}
		samples[i] = [2]float64{left, right}
		s.pos++
		n++
	}
	return n, true
}

func (s *tensorStreamer) Err() error {
	return nil
}

func (s *tensorStreamer) Len() int {
	return s.t.NumSamples()
}

func (s *tensorStreamer) Position() int {
	return s.pos
}

func (s *tensorStreamer) Seek(p int) error {
	if p < 0 || p > s.t.NumSamples() {
		return fmt.Errorf("tensor-streamer: seek position %d out of range", p)
	}
	s.pos = p
	return nil
}
