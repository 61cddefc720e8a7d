package game

// Render draws the board as three rows of eight squares, with the top
// player's tiles marked 'T' and the bottom player's marked 'B'. The
// blanks beside each player's private stretch hold that player's
// remaining and finished tile counts. A fresh game renders as:
//
//	....70..
//	........
//	....70..
func Render(top, bottom Side) string {
	content := []byte("....00..\n........\n....00..")

	// Where each path position falls in the byte buffer above.
	topPath := [16]int{4, 3, 2, 1, 0, 9, 10, 11, 12, 13, 14, 15, 16, 7, 6, 5}
	bottomPath := [16]int{22, 21, 20, 19, 18, 9, 10, 11, 12, 13, 14, 15, 16, 25, 24, 23}

	// Fill in the counters as character arithmetic.
	content[topPath[0]] += byte(top.Remaining)
	content[bottomPath[0]] += byte(bottom.Remaining)
	content[topPath[15]] += byte(top.Finished())
	content[bottomPath[15]] += byte(bottom.Finished())

	// Mark the tiles actually on the board.
	for p := Position(1); p < 15; p++ {
		if top.Occupied.Test(p) {
			content[topPath[p]] = 'T'
		}
		if bottom.Occupied.Test(p) {
			content[bottomPath[p]] = 'B'
		}
	}

	return string(content)
}
