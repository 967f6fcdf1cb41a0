package battle

// Phase represents the current state of the battle state machine
type Phase int

const (
	PhaseDefault Phase = iota
	PhaseIntroNPC
	PhaseIntroNPCPokemon
	PhaseIntroPlayerPokemon
	PhasePlayerTurn
	PhasePlayerAttack
	PhaseProcessing
	PhaseNPCTurn
	PhaseBattleEnd
	PhaseWinnerDeclared
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseDefault:
		return "Default"
	case PhaseIntroNPC:
		return "IntroNPC"
	case PhaseIntroNPCPokemon:
		return "IntroNPCPokemon"
	case PhaseIntroPlayerPokemon:
		return "IntroPlayerPokemon"
	case PhasePlayerTurn:
		return "PlayerTurn"
	case PhasePlayerAttack:
		return "PlayerAttack"
	case PhaseProcessing:
		return "Processing"
	case PhaseNPCTurn:
		return "NPCTurn"
	case PhaseBattleEnd:
		return "BattleEnd"
	case PhaseWinnerDeclared:
		return "WinnerDeclared"
	default:
		return "Unknown"
	}
}
