package reversi

// Score counts the pieces of every player. Index 0 is unused, so the count of
// player p is at index p.
func Score(board *Board, players int) []int {
	counts := make([]int, players+1)
	for _, piece := range board.Occupied() {
		if piece.Owner >= 1 && piece.Owner <= players {
			counts[piece.Owner]++
		}
	}
	return counts
}

// Evaluate returns the players with the highest piece count in ascending order.
// An empty board has no winners.
func Evaluate(board *Board, players int) []int {
	counts := Score(board, players)

	best := 0
	for player := 1; player <= players; player++ {
		best = max(best, counts[player])
	}

	if best == 0 {
		return []int{}
	}

	winners := make([]int, 0, 1)
	for player := 1; player <= players; player++ {
		if counts[player] == best {
			winners = append(winners, player)
		}
	}
	return winners
}
