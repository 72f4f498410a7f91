package domain

// GuessStats are lifetime counters of the number guessing game
type GuessStats struct {
	Losses int `json:"losses"`
	Wins   int `json:"wins"`
}

// SnakeStats are lifetime counters of the snake game
type SnakeStats struct {
	Best   int `json:"best"`
	Losses int `json:"losses"`
	Wins   int `json:"wins"`
}
