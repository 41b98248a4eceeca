package topics

const (
	// Apostas registradas na planilha
	BetAppended = "bet_appended"
)
