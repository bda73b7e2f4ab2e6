package scoring

// Unanswered is the sentinel the client sends for a question the user skipped.
// It never matches a correct option.
const Unanswered = -1

// Total is the fixed number of questions per test.
const Total = 30

// Score counts correct answers. answers[i] is the selected option index for
// question i; values outside the question's option range (including the
// Unanswered sentinel) contribute nothing. Extra trailing answers are ignored.
func Score(answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Band maps a raw score out of 30 to an IELTS band. Descending threshold
// checks; first match wins.
func Band(score int) float64 {
	switch {
	case score >= 29:
		return 9.0
	case score >= 27:
		return 8.5
	case score >= 25:
		return 8.0
	case score >= 23:
		return 7.5
	case score >= 20:
		return 7.0
	case score >= 17:
		return 6.5
	case score >= 14:
		return 6.0
	case score >= 11:
		return 5.5
	case score >= 8:
		return 5.0
	case score >= 6:
		return 4.5
	case score >= 4:
		return 4.0
	default:
		return 0.0
	}
}
