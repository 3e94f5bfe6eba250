package conflict

import "github.com/lixenwraith/territory/core"

// Vote is one player's deduplicated count on a tile
type Vote struct {
	Player core.PlayerID
	Count  int
}

// Tally deduplicates records by source and counts the rest per player, in first-seen order
func Tally(records []Record) []Vote {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[core.Entity]struct{}, len(records))
	votes := make([]Vote, 0, 4)

	for _, r := range records {
		if _, dup := seen[r.Source]; dup {
			continue
		}
		seen[r.Source] = struct{}{}

		found := false
		for i := range votes {
			if votes[i].Player == r.Player {
				votes[i].Count++
				found = true
				break
			}
		}
		if !found {
			votes = append(votes, Vote{Player: r.Player, Count: 1})
		}
	}
	return votes
}

// Winner picks the strictly highest count; equal highest counts go to the lowest player id
func Winner(votes []Vote) (core.PlayerID, bool) {
	if len(votes) == 0 {
		return 0, false
	}
	best := votes[0]
	for _, v := range votes[1:] {
		if v.Count > best.Count || v.Count == best.Count && v.Player < best.Player {
			best = v
		}
	}
	return best.Player, true
}
