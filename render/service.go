package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/territory/core"
)

// ScreenService owns the terminal screen lifecycle as a service.Service
type ScreenService struct {
	screen tcell.Screen
	once   sync.Once
}

// NewScreenService wraps screen, tcell.NewScreen for a real terminal or a simulation screen in tests
func NewScreenService(screen tcell.Screen) *ScreenService {
	return &ScreenService{screen: screen}
}

// Name implements service.Service
func (s *ScreenService) Name() string {
	return "screen"
}

// Start initializes the terminal and registers it for crash cleanup
func (s *ScreenService) Start() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	s.screen.SetStyle(StyleBackground)
	s.screen.HideCursor()
	s.screen.Clear()
	core.SetCrashReset(s.screen.Fini)
	return nil
}

// Stop restores the terminal, later calls are no-ops
func (s *ScreenService) Stop() error {
	s.once.Do(func() {
		core.SetCrashReset(nil)
		s.screen.Fini()
	})
	return nil
}

// Screen returns the wrapped screen
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}
