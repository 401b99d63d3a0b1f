package draft

import "github.com/riskibarqy/youth-league/internal/domain/player"

// Siblings returns the pool members sharing the player's family id, in pool
// order. Players without a family have no siblings.
func Siblings(p player.Player, pool []player.Player) []player.Player {
	if !p.HasFamily() {
		return nil
	}

	var out []player.Player
	for _, candidate := range pool {
		if candidate.ID == p.ID || candidate.FamilyID != p.FamilyID {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
