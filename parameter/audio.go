package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioBufferSamples is frames per mixer tick at 44.1kHz
	AudioBufferSamples = (AudioSampleRate * 50) / 1000 // 2205

	// AudioQueueSize bounds pending play requests, overflow is dropped
	AudioQueueSize = 32
)

// Cue envelopes, attack shared by the tonal cues
const (
	CueAttack = 5 * time.Millisecond

	GainedNoteDuration = 60 * time.Millisecond
	GainedRelease      = 40 * time.Millisecond

	LostDuration = 120 * time.Millisecond
	LostRelease  = 60 * time.Millisecond

	SpawnDuration           = 400 * time.Millisecond
	SpawnFundamentalRelease = 350 * time.Millisecond
	SpawnOvertoneRelease    = 150 * time.Millisecond

	ExpireDuration = 250 * time.Millisecond
	ExpireAttack   = 100 * time.Millisecond
	ExpireRelease  = 150 * time.Millisecond

	EndingNoteDuration = 180 * time.Millisecond
	EndingRelease      = 120 * time.Millisecond
)

// DefaultMasterVolume applies on top of per-cue volumes
const DefaultMasterVolume = 0.5
