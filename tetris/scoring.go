package tetris

import "time"

// LinePoints is the award for clearing 1 to 4 lines at once, before the level multiplier.
var LinePoints = [4]int{40, 100, 300, 1200}

const extraLinePoints = 400

// BasePoints returns the unscaled award for clearing n lines with one lock.
// Clears wider than four lines continue linearly past the table.
func BasePoints(n int) int {
	switch {
	case n <= 0:
		return 0
	case n <= len(LinePoints):
		return LinePoints[n-1]
	default:
		return LinePoints[len(LinePoints)-1] + (n-len(LinePoints))*extraLinePoints
	}
}

// LineClearScore is the award for clearing n lines at the given level.
func LineClearScore(n, level int) int {
	return BasePoints(n) * level
}

// LevelFor returns the level reached after clearing lines in total, starting from
// level and stepping while lines >= linesPerLevel*level.
func LevelFor(level, lines, linesPerLevel int) int {
	for lines >= linesPerLevel*level {
		level++
	}
	return level
}

// DropInterval is the gravity period at level. It never increases with level and
// never goes below the configured floor.
func (c Config) DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := c.BaseDropInterval - time.Duration(level-1)*c.DropIntervalStep
	return max(interval, c.MinDropInterval)
}
