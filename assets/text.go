package assets

// Narrative strings shared by the engine and the terminal front end.
const (
	WelcomeMessage = "Welcome to Rogue! Find and defeat the Ancient Dragon to win!"
	DeathBanner    = "YOU DIED"
	VictoryBanner  = "YOU KILLED THE ANCIENT DRAGON"
	VictorySubline = "VICTORY ACHIEVED"
)
