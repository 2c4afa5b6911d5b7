package guess

// Result is the verdict on a guess: Correct or Incorrect. The set is
// closed; switch on the concrete type.
type Result interface {
	// Outcome is a stable label for the result, used in logs and metrics.
	Outcome() string
	isResult()
}

// Correct means the guess matched the hand.
type Correct struct{}

// Incorrect carries a one-line summary and, for notation guesses, a
// per-meld report.
type Incorrect struct {
	Brief   string
	Details string
}

func (Correct) Outcome() string   { return "correct" }
func (Incorrect) Outcome() string { return "incorrect" }

func (Correct) isResult()   {}
func (Incorrect) isResult() {}
