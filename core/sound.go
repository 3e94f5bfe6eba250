package core

// SoundType represents the cue played for a simulation signal
type SoundType int

const (
	SoundTileGained SoundType = iota // Human player colored a tile
	SoundTileLost                    // Human player lost a tile
	SoundSpawn                       // Building placed or ability invoked
	SoundExpire                      // Emitter removed after its last use
	SoundVictory                     // Match ended with the human player winning
	SoundDefeat                      // Match ended with another winner
	SoundTypeCount
)
