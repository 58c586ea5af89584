package catalog

// Difficulty is the three-level ordinal a quiz is generated at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyExpert       Difficulty = "Expert"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyExpert}
}

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert:
		return true
	}
	return false
}

// DifficultyFromString matches a difficulty by name.
// Returns ("", false) for unknown names.
func DifficultyFromString(s string) (Difficulty, bool) {
	d := Difficulty(s)
	if d.Valid() {
		return d, true
	}
	return "", false
}
