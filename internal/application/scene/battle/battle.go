// Package battle implements the turn-based battle scene: an intro
// choreography, a player/NPC turn loop, damage resolution, and the
// win/lose endgame that reports back to the world through the bus.
package battle

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tinymon/internal/application/dialogue"
	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/scene"
	"github.com/younwookim/tinymon/internal/application/state"
	"github.com/younwookim/tinymon/internal/application/system"
	"github.com/younwookim/tinymon/internal/domain/entity"
	"github.com/younwookim/tinymon/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{238, 238, 210, 255}
	colorNPCMon    = color.RGBA{120, 170, 120, 255}
	colorPlayerMon = color.RGBA{100, 140, 200, 255}
	colorHPBG      = color.RGBA{60, 60, 60, 255}
	colorHPFG      = color.RGBA{100, 200, 100, 255}
	colorBoxBG     = color.RGBA{250, 250, 250, 255}
)

const noMoveSelected = -1

// Scene is the battle scene
type Scene struct {
	bus      *event.Bus
	store    *state.Store
	cfg      *config.SettingsConfig
	dialogue *dialogue.Controller
	sched    *scene.Scheduler
	screenW  int
	screenH  int

	// Entry context: survives Reset, replaced on the next Enter
	npcID        string
	npcName      string
	npcRoster    []entity.PokemonConfig
	playerRoster []entity.PokemonConfig

	phase         Phase
	playerPokemon *entity.Pokemon
	npcPokemon    *entity.Pokemon
	selectedMove  int

	// Slide choreography, 0..1
	npcSlide    float64
	playerSlide float64
	npcFaint    float64
	playerFaint float64

	// Randomness seams, overridable in tests
	randFactor func() float64
	pickMove   func(n int) int
}

// New creates a battle scene with a seeded RNG for the damage roll and
// the NPC move pick.
func New(bus *event.Bus, store *state.Store, cfg *config.SettingsConfig, rng *rand.Rand) *Scene {
	return &Scene{
		bus:          bus,
		store:        store,
		cfg:          cfg,
		dialogue:     dialogue.New(cfg.Dialogue.CharsPerSecond),
		sched:        scene.NewScheduler(),
		screenW:      cfg.Display.ScreenWidth,
		screenH:      cfg.Display.ScreenHeight,
		selectedMove: noMoveSelected,
		randFactor:   func() float64 { return 0.85 + rng.Float64()*0.15 },
		pickMove:     rng.Intn,
	}
}

// Phase returns the current battle phase.
func (s *Scene) Phase() Phase { return s.phase }

// Load implements scene.Scene. The battle scene has no assets to fetch.
func (s *Scene) Load() error { return nil }

// Enter stores the transition context. A missing context falls back to
// the player roster from the store; Setup bails out if no opponent is
// known.
func (s *Scene) Enter(ctx scene.Context) {
	s.npcID = ctx.String(scene.CtxNPCID)
	s.npcName = ctx.String(scene.CtxNPCName)
	s.npcRoster = ctx.Roster(scene.CtxNPCPokemon)
	s.playerRoster = ctx.Roster(scene.CtxPlayerPokemon)
	if len(s.playerRoster) == 0 {
		s.playerRoster = s.store.GetPlayerPokemon()
	}
}

// Exit abandons any in-flight narration so no stale callback can fire
// into the next battle.
func (s *Scene) Exit() {
	s.dialogue.ClearText()
	s.dialogue.Hide()
	s.sched.Clear()
}

// Reset restores the scene to its pre-battle baseline: phase, move
// selection, pokemon instances, and slide positions.
func (s *Scene) Reset() {
	s.phase = PhaseDefault
	s.selectedMove = noMoveSelected
	s.playerPokemon = nil
	s.npcPokemon = nil
	s.npcSlide = 0
	s.playerSlide = 0
	s.npcFaint = 0
	s.playerFaint = 0
	s.sched.Clear()
	s.dialogue.ClearText()
	s.dialogue.Hide()
}

// Setup builds the battle instances and starts the intro chain.
func (s *Scene) Setup() {
	if len(s.playerRoster) == 0 || len(s.npcRoster) == 0 {
		log.Printf("battle: missing context (player %d, npc %d pokemon), returning to world",
			len(s.playerRoster), len(s.npcRoster))
		event.Emit(s.bus, event.TopicSceneTransition, event.SceneTransition{To: scene.NameWorld})
		return
	}

	s.playerPokemon = entity.NewPokemon(s.playerRoster[0])
	s.npcPokemon = entity.NewPokemon(s.npcRoster[0])

	s.dialogue.Show()
	s.dialogue.DisplayText(fmt.Sprintf("%s wants to battle!", s.npcName), s.introNPC)
}

func (s *Scene) introNPC() {
	s.phase = PhaseIntroNPC
	s.dialogue.DisplayText(fmt.Sprintf("He sends out a %s!", s.npcPokemon.Name), s.introNPCPokemon)
}

func (s *Scene) introNPCPokemon() {
	s.phase = PhaseIntroNPCPokemon // npc sprite slides in during this phase
	s.dialogue.DisplayText(fmt.Sprintf("Go! %s!", s.playerPokemon.Name), s.introPlayerPokemon)
}

func (s *Scene) introPlayerPokemon() {
	s.phase = PhaseIntroPlayerPokemon
	s.promptPlayerTurn()
}

func (s *Scene) promptPlayerTurn() {
	s.dialogue.DisplayText(fmt.Sprintf("What will %s do?", s.playerPokemon.Name), s.beginPlayerTurn)
}

func (s *Scene) beginPlayerTurn() {
	s.selectedMove = noMoveSelected
	s.phase = PhasePlayerTurn
}

// Update advances narration, delays, slides, and move selection.
func (s *Scene) Update(dt float64, in system.Input) {
	s.sched.Update(dt)
	s.dialogue.Update(dt)
	s.updateSlides(dt)

	if in.Confirm && s.dialogue.IsVisible() && !s.dialogue.IsComplete() {
		s.dialogue.SkipToEnd()
		return
	}

	if s.phase == PhasePlayerTurn && in.MoveIndex != system.NoMove {
		s.selectPlayerMove(in.MoveIndex)
	}
}

// selectPlayerMove handles one move-selection input. An index with no
// move defined is ignored and the phase is left unchanged.
func (s *Scene) selectPlayerMove(index int) {
	move, ok := s.playerPokemon.GetMove(index)
	if !ok {
		return
	}
	s.selectedMove = index
	s.phase = PhasePlayerAttack
	s.performAttack(s.playerPokemon, s.npcPokemon, move, true)
}

// performAttack applies damage and narrates the hit. The immediate jump
// to Processing guards against re-triggering the attack on the same
// phase.
func (s *Scene) performAttack(attacker, defender *entity.Pokemon, move entity.Move, isPlayer bool) {
	s.phase = PhaseProcessing

	damage := entity.Damage(attacker.Level, move.Power, attacker.Stats.Attack, defender.Stats.Defense, s.randFactor())
	if defender.TakeDamage(damage) {
		event.Emit(s.bus, event.TopicBattleFaint, event.BattleFaint{
			Name:     defender.Name,
			IsPlayer: !isPlayer,
		})
	}

	s.dialogue.DisplayText(fmt.Sprintf("%s used %s!", attacker.Name, move.Name), func() {
		if defender.Fainted {
			s.enterBattleEnd()
			return
		}
		if isPlayer {
			s.sched.After(s.cfg.Battle.NarrationDelay, s.npcTurn)
		} else {
			s.sched.After(s.cfg.Battle.NarrationDelay, s.promptPlayerTurn)
		}
	})
}

// npcTurn picks a move uniformly at random and attacks the player
// pokemon.
func (s *Scene) npcTurn() {
	s.phase = PhaseNPCTurn

	if len(s.npcPokemon.Moves) == 0 {
		// Should not occur with static data; treat as a zero-damage turn
		s.phase = PhaseProcessing
		s.dialogue.DisplayText(fmt.Sprintf("%s has no moves!", s.npcPokemon.Name), func() {
			s.sched.After(s.cfg.Battle.NarrationDelay, s.promptPlayerTurn)
		})
		return
	}

	index := s.pickMove(len(s.npcPokemon.Moves))
	move, ok := s.npcPokemon.GetMove(index)
	if !ok {
		log.Printf("battle: move pick %d out of range for %s", index, s.npcPokemon.Name)
		move, _ = s.npcPokemon.GetMove(0)
	}
	s.performAttack(s.npcPokemon, s.playerPokemon, move, false)
}

// enterBattleEnd resolves the winner from the fainted flags. Turns
// alternate strictly, so both sides can never faint at once.
func (s *Scene) enterBattleEnd() {
	s.phase = PhaseBattleEnd

	result := event.ResultLose
	line := fmt.Sprintf("%s fainted! You lost the battle...", s.playerPokemon.Name)
	if s.npcPokemon.Fainted {
		result = event.ResultWin
		line = fmt.Sprintf("%s fainted! You defeated %s!", s.npcPokemon.Name, s.npcName)
	}

	s.dialogue.DisplayText(line, func() { s.declareWinner(result) })
}

// declareWinner emits battle:complete (rewards on win only), hides the
// dialogue, and requests the transition back to the world after a pause.
func (s *Scene) declareWinner(result event.BattleResult) {
	s.phase = PhaseWinnerDeclared

	complete := event.BattleComplete{NPCID: s.npcID, Result: result}
	if result == event.ResultWin {
		if npc, ok := s.store.GetNPC(s.npcID); ok {
			complete.MoneyGained = npc.RewardMoney
			complete.ExpGained = npc.RewardExp
		}
	}
	event.Emit(s.bus, event.TopicBattleComplete, complete)

	s.dialogue.Hide()
	s.sched.After(s.cfg.Battle.EndDelay, func() {
		event.Emit(s.bus, event.TopicSceneTransition, event.SceneTransition{To: scene.NameWorld})
	})
}

// updateSlides eases the sprite choreography. Fainted pokemon keep
// sliding down while the endgame delays run.
func (s *Scene) updateSlides(dt float64) {
	step := s.cfg.Battle.SlideSpeed * dt
	if s.phase >= PhaseIntroNPCPokemon {
		s.npcSlide = min(1, s.npcSlide+step)
	}
	if s.phase >= PhaseIntroPlayerPokemon {
		s.playerSlide = min(1, s.playerSlide+step)
	}
	if s.npcPokemon != nil && s.npcPokemon.Fainted {
		s.npcFaint = min(1, s.npcFaint+step)
	}
	if s.playerPokemon != nil && s.playerPokemon.Fainted {
		s.playerFaint = min(1, s.playerFaint+step)
	}
}

// Draw renders the battle screen
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if s.npcPokemon != nil {
		x := float64(s.screenW-130) + (1-s.npcSlide)*160
		y := 50 + s.npcFaint*90
		ebitenutil.DrawRect(screen, x, y, 48, 48, colorNPCMon)
		s.drawDataBox(screen, s.npcPokemon, float64(s.screenW-200), 16)
	}
	if s.playerPokemon != nil {
		x := 70 - (1-s.playerSlide)*160
		y := float64(s.screenH-160) + s.playerFaint*90
		ebitenutil.DrawRect(screen, x, y, 48, 48, colorPlayerMon)
		s.drawDataBox(screen, s.playerPokemon, 16, float64(s.screenH-160))
	}

	if s.phase == PhasePlayerTurn {
		s.drawMoveMenu(screen)
	}

	s.dialogue.Draw(screen, 0, float64(s.screenH-64), float64(s.screenW), 64)
}

func (s *Scene) drawDataBox(screen *ebiten.Image, p *entity.Pokemon, x, y float64) {
	ebitenutil.DrawRect(screen, x, y, 180, 36, colorBoxBG)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s Lv%d", p.Name, p.Level), int(x)+4, int(y)+2)

	ratio := float64(p.CurrentHP) / float64(p.Stats.MaxHP)
	ebitenutil.DrawRect(screen, x+4, y+22, 140, 8, colorHPBG)
	ebitenutil.DrawRect(screen, x+4, y+22, 140*ratio, 8, colorHPFG)
}

func (s *Scene) drawMoveMenu(screen *ebiten.Image) {
	y := s.screenH - 100
	for i, move := range s.playerPokemon.Moves {
		if i >= 4 {
			break
		}
		text := fmt.Sprintf("%d %s", i+1, move.Name)
		ebitenutil.DebugPrintAt(screen, text, 16+(i%2)*180, y+(i/2)*16)
	}
}
