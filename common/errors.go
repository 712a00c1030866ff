package common

import (
	"errors"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")
var ErrNoSampleRate = errors.New("no sampling rate attached")
var ErrAudioTooLarge = errors.New("audio file too large")
var ErrDatasetNotFound = errors.New("dataset not found")
var ErrIndexOutOfRange = errors.New("index out of range")
var ErrEmptyBatch = errors.New("empty batch")
var ErrUnsafeArchivePath = errors.New("archive entry path is unsafe")
