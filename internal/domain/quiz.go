package domain

// QuizQuestion is one multiple choice question of the About Me quiz
type QuizQuestion struct {
	CorrectIndex   int
	Options        []string
	Prompt         string
	SuccessMessage string
}

// QuizQuestions is the fixed About Me quiz
var QuizQuestions = []QuizQuestion{
	{
		Prompt:         "How old am I?",
		Options:        []string{"18", "20", "22", "25"},
		CorrectIndex:   1,
		SuccessMessage: "Right. I'm 20.",
	},
	{
		Prompt:         "What is my current role?",
		Options:        []string{"Front-end developer", "Back-end developer", "Full stack developer", "QA engineer"},
		CorrectIndex:   2,
		SuccessMessage: "That's it. I currently work as a full stack developer.",
	},
	{
		Prompt:         "How long have I worked in tech?",
		Options:        []string{"1 year", "2 years", "3 years", "5 years"},
		CorrectIndex:   1,
		SuccessMessage: "Perfect. Two years in the field.",
	},
	{
		Prompt:         "Since when have I studied technology?",
		Options:        []string{"Since 2021", "Since 2022", "Since 2023", "Since 2024"},
		CorrectIndex:   2,
		SuccessMessage: "Correct. Studying since 2023.",
	},
	{
		Prompt:         "What is my favourite food?",
		Options:        []string{"Lasagna", "Feijoada", "Burger", "Sushi"},
		CorrectIndex:   1,
		SuccessMessage: "Nice. Feijoada it is.",
	},
	{
		Prompt:         "What is my favourite dessert?",
		Options:        []string{"Brigadeiro", "Cheesecake", "Brownie", "Lemon pie"},
		CorrectIndex:   3,
		SuccessMessage: "Yes. Lemon pie.",
	},
	{
		Prompt:         "What is my favourite film?",
		Options:        []string{"Interstellar", "John Wick 4", "The Godfather", "The Matrix"},
		CorrectIndex:   1,
		SuccessMessage: "Well done. John Wick 4.",
	},
	{
		Prompt:         "What is my favourite series?",
		Options:        []string{"Breaking Bad", "The Office", "Game of Thrones", "The Last of Us"},
		CorrectIndex:   2,
		SuccessMessage: "Right. Game of Thrones.",
	},
	{
		Prompt:         "What is my favourite anime?",
		Options:        []string{"Naruto", "Koe no Katachi", "Attack on Titan", "One Piece"},
		CorrectIndex:   1,
		SuccessMessage: "Perfect. Koe no Katachi.",
	},
}
