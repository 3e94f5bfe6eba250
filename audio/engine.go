package audio

import (
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/territory/core"
)

// AudioEngine pipes mixed cues to a system playback tool
// Without a backend it runs silent and Play reports false
type AudioEngine struct {
	config *AudioConfig
	cache  *soundCache
	mixer  *Mixer

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File // For direct OSS writes

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	wg sync.WaitGroup
}

// NewAudioEngine creates an audio engine, a nil config selects the defaults
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(beep.SampleRate(cfg.SampleRate)),
	}
	ae.muted.Store(!cfg.Enabled)
	ae.cache.preload()
	return ae
}

// Start launches the backend and mixer, falling back to silent mode on any backend failure
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrRunning
	}

	backend, err := DetectBackend(ae.config.SampleRate)
	if err != nil {
		return ae.StartWithWriter(nil)
	}
	ae.backend = backend

	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			return ae.StartWithWriter(nil)
		}
		ae.ossFile = f
		return ae.StartWithWriter(f)
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return ae.StartWithWriter(nil)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return ae.StartWithWriter(nil)
	}
	ae.cmd = cmd
	ae.stdin = stdin

	ae.wg.Add(1)
	go ae.monitorProcess()

	return ae.StartWithWriter(stdin)
}

// StartWithWriter runs the mixer against w, a nil writer starts the engine silent
func (ae *AudioEngine) StartWithWriter(w io.Writer) error {
	if ae.running.Load() {
		return ErrRunning
	}
	if w == nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return nil
	}

	ae.mixer = NewMixer(w, ae.cache)
	ae.mixer.Start()

	ae.wg.Add(1)
	go ae.monitorMixer()

	ae.running.Store(true)
	return nil
}

// monitorProcess watches for subprocess exit
func (ae *AudioEngine) monitorProcess() {
	defer ae.wg.Done()

	if err := ae.cmd.Wait(); err != nil && ae.running.Load() {
		ae.silentMode.Store(true)
	}
}

// monitorMixer watches for pipe errors
func (ae *AudioEngine) monitorMixer() {
	defer ae.wg.Done()

	select {
	case <-ae.mixer.Failed():
		ae.silentMode.Store(true)
	case <-ae.mixer.quit:
	}
}

// Stop terminates the engine, safe to call more than once
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}

	if ae.mixer != nil {
		ae.mixer.Stop()
	}
	if ae.stdin != nil {
		ae.stdin.Close()
	}
	if ae.ossFile != nil {
		ae.ossFile.Close()
	}
	if ae.cmd != nil && ae.cmd.Process != nil {
		ae.cmd.Process.Kill()
	}

	ae.wg.Wait()
}

// Play queues a sound for playback
func (ae *AudioEngine) Play(st core.SoundType) bool {
	if !ae.running.Load() || ae.muted.Load() || ae.silentMode.Load() || ae.mixer == nil {
		return false
	}

	ae.mixer.Play(st, ae.config.Gain(st))
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// Stats returns played and dropped counts
func (ae *AudioEngine) Stats() (played, dropped uint64) {
	if ae.mixer != nil {
		return ae.mixer.Stats()
	}
	return 0, 0
}
