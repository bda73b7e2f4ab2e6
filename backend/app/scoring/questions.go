package scoring

// Question is the full form including the answer key. Controllers must only
// ever send ClientQuestion (no key) to test takers.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type ClientQuestion struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type Solution struct {
	ID            int `json:"id"`
	CorrectAnswer int `json:"correctAnswer"`
}

// Questions returns the bank stripped of correct answers.
func Questions() []ClientQuestion {
	out := make([]ClientQuestion, len(questions))
	for i, q := range questions {
		out[i] = ClientQuestion{ID: q.ID, Text: q.Text, Options: q.Options}
	}
	return out
}

// Answers returns the answer key (id, correct option index) for review mode.
func Answers() []Solution {
	out := make([]Solution, len(questions))
	for i, q := range questions {
		out[i] = Solution{ID: q.ID, CorrectAnswer: q.CorrectAnswer}
	}
	return out
}

// 30 simulated IELTS grammar/vocabulary questions.
var questions = []Question{
	{ID: 1, Text: "Despite the bad weather, they _____ to go hiking.", Options: []string{"decides", "deciding", "decided", "have decided"}, CorrectAnswer: 2},
	{ID: 2, Text: "By the time we arrive at the station, the train _____.", Options: []string{"will leave", "has left", "will have left", "left"}, CorrectAnswer: 2},
	{ID: 3, Text: "If I _____ you were coming, I would have baked a cake.", Options: []string{"knew", "know", "had known", "have known"}, CorrectAnswer: 2},
	{ID: 4, Text: "The company's profits have _____ significantly over the last quarter.", Options: []string{"declining", "dwindle", "decreased", "collapse"}, CorrectAnswer: 2},
	{ID: 5, Text: "She is highly _____ in several programming languages.", Options: []string{"proficient", "fluent", "capable", "learned"}, CorrectAnswer: 0},
	{ID: 6, Text: "The new regulation will have a profound _____ on the local economy.", Options: []string{"affect", "effect", "result", "consequence"}, CorrectAnswer: 1},
	{ID: 7, Text: "The professor asked the students to _____ their assignments by Friday.", Options: []string{"hand out", "hand over", "hand in", "hand down"}, CorrectAnswer: 2},
	{ID: 8, Text: "It is essential that every student _____ a uniform.", Options: []string{"wears", "wear", "wearing", "to wear"}, CorrectAnswer: 1},
	{ID: 9, Text: "Hardly _____ closed my eyes when the telephone rang.", Options: []string{"I had", "had I", "I", "did I"}, CorrectAnswer: 1},
	{ID: 10, Text: "He was accused _____ stealing the confidential documents.", Options: []string{"for", "of", "with", "about"}, CorrectAnswer: 1},
	{ID: 11, Text: "The architecture of the building is highly _____, featuring unique modern elements.", Options: []string{"innovative", "ancient", "redundant", "ordinary"}, CorrectAnswer: 0},
	{ID: 12, Text: "_____ being exhausted, she managed to finish the marathon.", Options: []string{"Although", "In spite of", "However", "Because of"}, CorrectAnswer: 1},
	{ID: 13, Text: "The committee will _____ the proposal before making a final decision.", Options: []string{"look up", "look into", "look after", "look out"}, CorrectAnswer: 1},
	{ID: 14, Text: "The manager was _____ when he found out about the massive data breach.", Options: []string{"furious", "delighted", "indifferent", "apathetic"}, CorrectAnswer: 0},
	{ID: 15, Text: "We need to _____ the root cause of the problem to prevent it from happening again.", Options: []string{"identify", "predict", "ignore", "conceal"}, CorrectAnswer: 0},
	{ID: 16, Text: "The researchers conducted a _____ study on the effects of climate change.", Options: []string{"comprehensive", "trivial", "superficial", "fleeting"}, CorrectAnswer: 0},
	{ID: 17, Text: "I would rather you _____ not tell anyone about this secret.", Options: []string{"do", "did", "have", "are"}, CorrectAnswer: 1},
	{ID: 18, Text: "The rapid _____ of technology has changed how we communicate.", Options: []string{"evolution", "stagnation", "regression", "decline"}, CorrectAnswer: 0},
	{ID: 19, Text: "Students are expected to _____ strictly to the school's code of conduct.", Options: []string{"comply", "follow", "adhere", "obey"}, CorrectAnswer: 2},
	{ID: 20, Text: "The government has implemented _____ measures to control inflation.", Options: []string{"stringent", "lenient", "flexible", "loose"}, CorrectAnswer: 0},
	{ID: 21, Text: "Not only _____ the exam, but she also got the highest score.", Options: []string{"did she pass", "she passed", "she did pass", "passed she"}, CorrectAnswer: 0},
	{ID: 22, Text: "The factory has been releasing toxic _____ into the nearby river.", Options: []string{"emissions", "effluents", "pollutants", "smog"}, CorrectAnswer: 2},
	{ID: 23, Text: "Please ensure that your seatbelt is securely _____ before takeoff.", Options: []string{"fastened", "tightened", "attached", "bound"}, CorrectAnswer: 0},
	{ID: 24, Text: "The team is working _____ to meet the project deadline.", Options: []string{"diligently", "lazily", "hardly", "scarcely"}, CorrectAnswer: 0},
	{ID: 25, Text: "Many species are on the _____ of extinction due to habitat loss.", Options: []string{"brink", "edge", "border", "margin"}, CorrectAnswer: 0},
	{ID: 26, Text: "She couldn't attend the conference _____ a sudden family emergency.", Options: []string{"because", "owing to", "since", "as"}, CorrectAnswer: 1},
	{ID: 27, Text: "The novel was so _____ that I couldn't put it down until I finished it.", Options: []string{"tedious", "monotonous", "gripping", "bland"}, CorrectAnswer: 2},
	{ID: 28, Text: "It's imperative to _____ the data before making any strategic decisions.", Options: []string{"synthesize", "analyze", "fabricate", "compromise"}, CorrectAnswer: 1},
	{ID: 29, Text: "Due to unforeseen _____, the outdoor concert has been canceled.", Options: []string{"circumstances", "occurrences", "scenarios", "incidents"}, CorrectAnswer: 0},
	{ID: 30, Text: "The CEO gave a _____ presentation that clearly outlined the company's future.", Options: []string{"vague", "coherent", "ambiguous", "perplexing"}, CorrectAnswer: 1},
}
