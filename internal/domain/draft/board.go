package draft

import "slices"

// Cell is one (round, manager) slot on the board.
type Cell struct {
	Pick     Pick
	Siblings []Pick
}

// Round maps manager id to the cell filled in that round.
type Round struct {
	Number int
	Cells  map[string]*Cell
}

// Board is the round x manager grid of picks.
type Board struct {
	Rounds []Round
}

// NewBoard allocates the given number of empty rounds.
func NewBoard(rounds int) Board {
	b := Board{}
	b.ensure(rounds)
	return b
}

// RoundsFor is ceil(players/managers) plus the buffer.
func RoundsFor(playerCount, managerCount, buffer int) int {
	if managerCount <= 0 {
		return buffer
	}
	return (playerCount+managerCount-1)/managerCount + buffer
}

// Cell returns the cell for a manager in a round, if filled.
func (b Board) Cell(round int, managerID string) (Cell, bool) {
	r, ok := b.round(round)
	if !ok {
		return Cell{}, false
	}
	c, ok := r.Cells[managerID]
	if !ok || c == nil {
		return Cell{}, false
	}
	return *c, true
}

// Picked reports whether the manager has a pick recorded in the round.
func (b Board) Picked(round int, managerID string) bool {
	_, ok := b.Cell(round, managerID)
	return ok
}

// Complete reports whether every manager has picked in the round.
func (b Board) Complete(round int, managerIDs []string) bool {
	if len(managerIDs) == 0 {
		return false
	}
	for _, id := range managerIDs {
		if !b.Picked(round, id) {
			return false
		}
	}
	return true
}

func (b Board) round(number int) (Round, bool) {
	if number < 1 || number > len(b.Rounds) {
		return Round{}, false
	}
	return b.Rounds[number-1], true
}

func (b *Board) ensure(rounds int) {
	for len(b.Rounds) < rounds {
		b.Rounds = append(b.Rounds, Round{
			Number: len(b.Rounds) + 1,
			Cells:  make(map[string]*Cell),
		})
	}
}

func (b *Board) set(round int, managerID string, cell Cell) {
	b.ensure(round)
	b.Rounds[round-1].Cells[managerID] = &cell
}

// locate finds the cell holding a player's pick in any column. A moved pick
// stays in the column of the manager whose turn it spent.
func (b *Board) locate(playerID string) (round int, column string, cell *Cell) {
	for i := range b.Rounds {
		for id, c := range b.Rounds[i].Cells {
			if c == nil {
				continue
			}
			if c.Pick.PlayerID == playerID || slices.ContainsFunc(c.Siblings, func(p Pick) bool { return p.PlayerID == playerID }) {
				return i, id, c
			}
		}
	}
	return -1, "", nil
}

// detach drops a player's pick from the cell that holds it. When the primary
// pick goes, the first remaining sibling takes its place; the cell is removed
// once nothing is left in it.
func (b *Board) detach(playerID string) {
	i, column, cell := b.locate(playerID)
	if cell == nil {
		return
	}
	if cell.Pick.PlayerID != playerID {
		idx := slices.IndexFunc(cell.Siblings, func(p Pick) bool { return p.PlayerID == playerID })
		cell.Siblings = slices.Delete(cell.Siblings, idx, idx+1)
		return
	}
	if len(cell.Siblings) == 0 {
		delete(b.Rounds[i].Cells, column)
		return
	}
	cell.Pick = cell.Siblings[0]
	cell.Siblings = slices.Delete(cell.Siblings, 0, 1)
}

// retarget updates the manager reference of a moved pick in place. The cell
// stays where it is: the turn was spent there.
func (b *Board) retarget(playerID, toManagerID string) {
	_, _, cell := b.locate(playerID)
	if cell == nil {
		return
	}
	if cell.Pick.PlayerID == playerID {
		cell.Pick.ManagerID = toManagerID
		return
	}
	for j := range cell.Siblings {
		if cell.Siblings[j].PlayerID == playerID {
			cell.Siblings[j].ManagerID = toManagerID
			return
		}
	}
}

func (b Board) clone() Board {
	if b.Rounds == nil {
		return Board{}
	}
	out := Board{Rounds: make([]Round, 0, len(b.Rounds))}
	for _, r := range b.Rounds {
		cells := make(map[string]*Cell, len(r.Cells))
		for id, c := range r.Cells {
			if c == nil {
				continue
			}
			cp := Cell{Pick: c.Pick, Siblings: clonePicks(c.Siblings)}
			cp.Pick.Player = c.Pick.Player.Clone()
			cells[id] = &cp
		}
		out.Rounds = append(out.Rounds, Round{Number: r.Number, Cells: cells})
	}
	return out
}
