package entity

// NPC is a trainer standing in the world. Defeated is monotonic: once the
// player has beaten the trainer it stays true except on a full game reset.
type NPC struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title,omitempty"`
	Defeated       bool     `json:"defeated"`
	Pokemon        []string `json:"pokemon"` // species keys, battle order
	WorldSprite    string   `json:"worldSprite,omitempty"`
	BattleSprite   string   `json:"battleSprite,omitempty"`
	PreBattleText  string   `json:"preBattleText"`
	PostDefeatText string   `json:"postDefeatText"`
	RewardMoney    int      `json:"rewardMoney"`
	RewardExp      int      `json:"rewardExp"`
}

// Dialogue returns the post-defeat line once the trainer is beaten,
// otherwise the pre-battle line.
func (n *NPC) Dialogue() string {
	if n.Defeated {
		return n.PostDefeatText
	}
	return n.PreBattleText
}
