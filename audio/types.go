package audio

import (
	"errors"
)

// BackendType identifies how mixed PCM reaches the speakers
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS // device file, written directly
)

// BackendConfig is a resolved playback command; Args already carry the stream format
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

var (
	ErrNoAudioBackend = errors.New("no playback tool for raw pcm")
	ErrPipeClosed     = errors.New("playback pipe closed")
	ErrRunning        = errors.New("audio engine already running")
)
