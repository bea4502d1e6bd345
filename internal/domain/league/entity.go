package league

// Team is a single club in the league table.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Player is a squad member together with the position they play.
// The JSON field name matches the public lookup contract.
type Player struct {
	Name     string `json:"name"`
	Position string `json:"posicion"`
}
