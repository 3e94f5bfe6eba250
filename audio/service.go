package audio

// AudioService wraps AudioEngine as a service.Service
// A missing backend degrades to silent mode rather than failing the start
type AudioService struct {
	engine *AudioEngine
}

// NewService creates an audio service, muted unless enabled
func NewService(enabled bool) *AudioService {
	cfg := LoadAudioConfig()
	cfg.Enabled = cfg.Enabled || enabled
	return &AudioService{engine: NewAudioEngine(cfg)}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Start implements service.Service
func (s *AudioService) Start() error {
	return s.engine.Start()
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.engine.Stop()
	return nil
}

// Engine returns the underlying engine
func (s *AudioService) Engine() *AudioEngine {
	return s.engine
}

// Handler returns a cue handler bound to the engine
func (s *AudioService) Handler() *CueHandler {
	return NewCueHandler(s.engine)
}
