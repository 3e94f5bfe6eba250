// Package service owns process-lifetime resources that sit outside the simulation
package service

// Service is a resource with a start/stop lifecycle, such as the terminal screen or the audio pipe
// Stop must tolerate repeated calls and a failed Start
type Service interface {
	Name() string
	Start() error
	Stop() error
}
