package draft

import "slices"

// SnakeOrder returns the pick order for a round: setup order on odd rounds,
// reversed on even rounds. Rounds below 1 have no order.
func SnakeOrder(managerIDs []string, round int) []string {
	if round < 1 {
		return nil
	}
	out := slices.Clone(managerIDs)
	if round%2 == 0 {
		slices.Reverse(out)
	}
	return out
}

// Order is the snake order of the session's managers for the given round.
func (s State) Order(round int) []string {
	return SnakeOrder(s.ManagerIDs(), round)
}

// Waiting lists, in snake order, the managers without a pick in the round.
func (s State) Waiting(round int) []string {
	out := make([]string, 0, len(s.Managers))
	for _, id := range s.Order(round) {
		if !s.Board.Picked(round, id) {
			out = append(out, id)
		}
	}
	return out
}
