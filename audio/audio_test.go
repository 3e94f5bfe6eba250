package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/event"
	"github.com/lixenwraith/territory/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

func TestCueRendersEverySound(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		buf := render(Cue(st, testRate))
		if len(buf) == 0 {
			t.Errorf("Expected samples for sound %d", st)
			continue
		}
		for i, v := range buf {
			if v < -1 || v > 1 {
				t.Errorf("Sound %d sample %d out of range: %f", st, i, v)
				break
			}
		}
	}
	if Cue(core.SoundTypeCount, testRate) != nil {
		t.Error("Expected nil cue for unknown sound")
	}
}

func TestCueDuration(t *testing.T) {
	buf := render(Cue(core.SoundTileGained, testRate))
	want := 2 * testRate.N(parameter.GainedNoteDuration)
	if len(buf) != want {
		t.Errorf("Expected %d samples, got %d", want, len(buf))
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)
	samples := make([][2]float64, 1000)
	n, ok := osc.Stream(samples)
	if n != testRate.N(10*time.Millisecond) || !ok {
		t.Errorf("Expected %d samples and ok, got %d %v", testRate.N(10*time.Millisecond), n, ok)
	}
	if n, ok = osc.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got %d %v", n, ok)
	}
}

func TestCacheReusesBuffers(t *testing.T) {
	c := newSoundCache(testRate)
	a := c.get(core.SoundSpawn)
	b := c.get(core.SoundSpawn)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("Expected the cached buffer on the second call")
	}
	if c.get(-1) != nil {
		t.Error("Expected nil for negative sound type")
	}
}

func TestEncodePCMSaturates(t *testing.T) {
	out := make([]byte, 3*parameter.AudioBytesPerFrame)
	half := 0.5
	encodePCM([]float64{5, -5, half}, out)

	hi := int16(binary.LittleEndian.Uint16(out[0:]))
	lo := int16(binary.LittleEndian.Uint16(out[4:]))
	mid := int16(binary.LittleEndian.Uint16(out[8:]))
	if hi <= 0 || lo >= 0 || hi != -lo {
		t.Errorf("Expected symmetric saturated extremes, got %d and %d", hi, lo)
	}
	if mid != int16(half*32767) {
		t.Errorf("Expected samples below the knee unchanged, got %d", mid)
	}
	if right := int16(binary.LittleEndian.Uint16(out[2:])); right != hi {
		t.Errorf("Expected identical stereo channels, got %d and %d", hi, right)
	}
}

func TestMixerRetriggersCueVoice(t *testing.T) {
	m := NewMixer(io.Discard, newSoundCache(testRate))
	m.trigger(playRequest{sound: core.SoundTileGained, volume: 0.2})

	block := make([]float64, 16)
	m.render(block)
	if m.voices[core.SoundTileGained].pos != len(block) {
		t.Fatalf("Expected the voice to advance one block, got %d", m.voices[core.SoundTileGained].pos)
	}

	m.trigger(playRequest{sound: core.SoundTileGained, volume: 0.1})
	v := m.voices[core.SoundTileGained]
	if v.pos != 0 || v.volume != 0.2 {
		t.Errorf("Expected a restart at the louder volume, got pos %d volume %v", v.pos, v.volume)
	}
	m.trigger(playRequest{sound: core.SoundSpawn, volume: 0.5})

	if played, _ := m.Stats(); played != 3 {
		t.Errorf("Expected 3 started cues, got %d", played)
	}
	if got := m.retriggered.Load(); got != 1 {
		t.Errorf("Expected 1 retrigger, got %d", got)
	}
}

func TestConfigGain(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	if got := cfg.Gain(core.SoundSpawn); got != 0.5*cfg.EffectVolumes[core.SoundSpawn] {
		t.Errorf("Expected master times effect volume, got %v", got)
	}
	delete(cfg.EffectVolumes, core.SoundExpire)
	if got := cfg.Gain(core.SoundExpire); got != 0.5 {
		t.Errorf("Expected master volume for unlisted cue, got %v", got)
	}
}

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(st core.SoundType) bool {
	p.played = append(p.played, st)
	return true
}

func TestCueHandlerCoalescesPerTick(t *testing.T) {
	p := &recordingPlayer{}
	h := NewCueHandler(p)

	gained := func(tick int64) event.GameEvent {
		return event.GameEvent{Type: event.EventTileGained, Tick: tick, Payload: &event.TilePayload{Player: core.HumanPlayer}}
	}
	h.HandleEvent(gained(1))
	h.HandleEvent(gained(1))
	h.HandleEvent(gained(2))
	h.HandleEvent(event.GameEvent{Type: event.EventTileLost, Tick: 2})

	want := []core.SoundType{core.SoundTileGained, core.SoundTileGained, core.SoundTileLost}
	if len(p.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, p.played)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, p.played)
			break
		}
	}
}

func TestCueHandlerResetRewindsTicks(t *testing.T) {
	p := &recordingPlayer{}
	h := NewCueHandler(p)

	h.HandleEvent(event.GameEvent{Type: event.EventTileGained, Tick: 3})
	h.HandleEvent(event.GameEvent{Type: event.EventGameReset, Payload: &event.GameResetPayload{Seed: 2}})
	h.HandleEvent(event.GameEvent{Type: event.EventTileGained, Tick: 3})

	if len(p.played) != 2 {
		t.Errorf("Expected a gained cue on tick 3 of the new match, got %v", p.played)
	}
}

func TestCueHandlerHumanOnly(t *testing.T) {
	p := &recordingPlayer{}
	h := NewCueHandler(p)

	h.HandleEvent(event.GameEvent{Type: event.EventObjectSpawned, Payload: &event.ObjectPayload{Player: 1}})
	h.HandleEvent(event.GameEvent{Type: event.EventObjectSpawned, Payload: &event.ObjectPayload{Player: core.HumanPlayer}})
	h.HandleEvent(event.GameEvent{Type: event.EventObjectDespawned, Payload: &event.ObjectPayload{Player: core.HumanPlayer}})
	h.HandleEvent(event.GameEvent{Type: event.EventGameEnded, Payload: &event.GameEndedPayload{Winner: 2}})

	want := []core.SoundType{core.SoundSpawn, core.SoundExpire, core.SoundDefeat}
	if len(p.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, p.played)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, p.played)
			break
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func TestEngineMixesIntoWriter(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = true
	ae := NewAudioEngine(cfg)

	out := &syncBuffer{}
	if err := ae.StartWithWriter(out); err != nil {
		t.Fatalf("StartWithWriter: %v", err)
	}
	defer ae.Stop()

	if err := ae.StartWithWriter(out); err != ErrRunning {
		t.Errorf("Expected ErrRunning, got %v", err)
	}
	if !ae.Play(core.SoundSpawn) {
		t.Fatal("Expected Play to queue")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if played, _ := ae.Stats(); played == 1 && out.Len() > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if played, _ := ae.Stats(); played != 1 {
		t.Errorf("Expected 1 played, got %d", played)
	}
	if out.Len()%parameter.AudioBytesPerFrame != 0 || out.Len() == 0 {
		t.Errorf("Expected whole frames written, got %d bytes", out.Len())
	}
}

func TestMutedEngineDoesNotPlay(t *testing.T) {
	ae := NewAudioEngine(nil)
	if err := ae.StartWithWriter(&syncBuffer{}); err != nil {
		t.Fatalf("StartWithWriter: %v", err)
	}
	defer ae.Stop()

	if ae.Play(core.SoundSpawn) {
		t.Error("Expected muted engine to refuse playback")
	}
	if !ae.ToggleMute() || !ae.Play(core.SoundSpawn) {
		t.Error("Expected playback after unmuting")
	}
}
