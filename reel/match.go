package reel

// Win is a symbol kind present on every reel
// Rows holds the first row index, top to bottom from 0, where the kind appears on each reel
type Win struct {
	Symbol string
	Rows   []int
}

// Match finds kinds that appear at least once in every window
// Candidates come from the first window in first-seen order and the result keeps that order
func Match(windows [][]string) []Win {
	if len(windows) == 0 {
		return nil
	}

	var order []string
	rows := make(map[string][]int)
	for row, name := range windows[0] {
		if _, seen := rows[name]; seen {
			continue
		}
		order = append(order, name)
		rows[name] = []int{row}
	}

	for _, window := range windows[1:] {
		for _, name := range order {
			hits := rows[name]
			if hits == nil {
				continue
			}
			if row := indexOf(window, name); row >= 0 {
				rows[name] = append(hits, row)
			} else {
				rows[name] = nil
			}
		}
	}

	var wins []Win
	for _, name := range order {
		if hits := rows[name]; len(hits) == len(windows) {
			wins = append(wins, Win{Symbol: name, Rows: hits})
		}
	}
	return wins
}

func indexOf(window []string, name string) int {
	for i, n := range window {
		if n == name {
			return i
		}
	}
	return -1
}
