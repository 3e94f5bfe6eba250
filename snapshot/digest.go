package snapshot

import (
	"encoding/binary"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Digest is a content hash of a snapshot, equal digests mean equal observable state
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:8])
}

// Sum hashes the snapshot's canonical encoding
func Sum(s Snapshot) Digest {
	return blake3.Sum256(s.encode())
}

// encode writes every field in a fixed order, variable-length sections prefixed with their count
func (s Snapshot) encode() []byte {
	buf := make([]byte, 0, 64+len(s.Emitters)*32)
	putInt := func(v int64) { buf = binary.AppendVarint(buf, v) }

	putInt(s.Tick)
	putInt(int64(len(s.Maps)))
	for _, m := range s.Maps {
		buf = append(buf, m.ID.UUID[:]...)
		putInt(int64(m.Bounds.Width))
		putInt(int64(m.Bounds.Height))
		putInt(int64(len(m.Tiles)))
		for _, t := range m.Tiles {
			putInt(int64(t.Pos.X))
			putInt(int64(t.Pos.Y))
			buf = append(buf, byte(t.Owner), byte(t.Strength), byte(t.Terrain))
		}
	}

	putInt(int64(len(s.Emitters)))
	for _, e := range s.Emitters {
		putInt(int64(e.Entity))
		buf = append(buf, byte(e.Kind), byte(e.Player))
		buf = append(buf, e.Map.UUID[:]...)
		putInt(int64(e.Pos.X))
		putInt(int64(e.Pos.Y))
		putInt(int64(e.Remaining))
		putInt(int64(e.UsesLeft))
	}

	putInt(int64(len(s.Points)))
	for _, p := range s.Points {
		buf = append(buf, byte(p.Player))
		putInt(int64(p.Building))
		putInt(int64(p.Ability))
	}

	if s.Ended {
		buf = append(buf, 1, byte(s.Winner))
	} else {
		buf = append(buf, 0)
	}
	return buf
}
