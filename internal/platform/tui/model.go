package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herrkaefer/signal-vault-game/internal/audio"
	"github.com/herrkaefer/signal-vault-game/internal/feed"
	"github.com/herrkaefer/signal-vault-game/internal/game"
	"github.com/herrkaefer/signal-vault-game/internal/narrator"
	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

// maxMessages is how many recent event lines the run screen keeps.
const maxMessages = 5

// legend spells out the board glyphs above the grid.
const legend = "[P] you  [E] exit  [#] wall  [^] trap (-1 hp)  [+] medkit (+1 hp)  [D] drone  [H] helper"

// Seed stream labels. Layout, drone motion, and narration draw from
// independent streams so one run seed reproduces all three.
const (
	seedLabelLayout   = "layout"
	seedLabelDrones   = "drones"
	seedLabelNarrator = "narrator"
)

// RunConfig carries the terminal geometry and seeding for a session.
type RunConfig struct {
	Width  int
	Height int
	Seed   int64 // 0 seeds from the wall clock
}

// GameModel is the Bubble Tea model for one vault run. It owns the board
// state and fans every resolved turn out to the narrator, the audio
// engine, the stats store, and the live feed.
type GameModel struct {
	diff       game.Difficulty
	state      *game.State
	voice      *narrator.Narrator
	store      *stats.Store
	sound      *audio.Engine
	events     *feed.Server
	droneRng   *rand.Rand
	keyMapper  *KeyMapper
	messages   []string
	width      int
	height     int
	finished   bool
	result     stats.Result
	endSummary string // lifetime stats line, set once the run is recorded
	quitting   bool
	backToMenu bool
	wantsStats bool
}

// NewGameModel generates a board and starts the run. The opening
// narration, the ambient loop, and the round_start feed event all fire
// here rather than in Init, which cannot mutate a value model.
func NewGameModel(diff game.Difficulty, persona narrator.Persona, store *stats.Store, sound *audio.Engine, events *feed.Server, cfg RunConfig) (GameModel, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	layout, err := game.Generate(diff, game.NewRand(seed, seedLabelLayout))
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		diff:      diff,
		state:     game.NewState(layout, diff),
		voice:     narrator.New(persona, game.NewRand(seed, seedLabelNarrator)),
		store:     store,
		sound:     sound,
		events:    events,
		droneRng:  game.NewRand(seed, seedLabelDrones),
		keyMapper: NewKeyMapper(),
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.beginRun()

	return m, nil
}

// beginRun fires the round-start side effects for a fresh board.
func (m *GameModel) beginRun() {
	if line, ok := m.voice.Describe(narrator.EventStart, game.ClassifyMood(m.state), m.narrationContext()); ok {
		m.addMessage(narrationStyle.Render(line))
	}
	m.sound.StartAmbient()
	m.publish(m.feedEvent(feed.TypeRoundStart))
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input. Movement resolves a turn; the
// remaining actions depend on whether the run is still live.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keyMapper.MapKeyToDirection(msg); ok {
		if m.finished {
			return m, nil
		}
		return m.step(dir)
	}

	switch m.keyMapper.MapKeyToGameAction(msg) {
	case GameActionQuit:
		m.sound.StopAll()
		m.quitting = true
		return m, tea.Quit

	case GameActionAbandon:
		if m.finished {
			// Done playing: the end screen's q leaves the program.
			m.sound.StopAll()
			m.quitting = true
			return m, tea.Quit
		}
		return m.abandon()

	case GameActionMenu:
		if m.finished {
			m.backToMenu = true
			return m, tea.Quit // Intercepted when a session hosts the run
		}
		return m.abandon()

	case GameActionNewRun:
		if m.finished {
			return m.newRun()
		}

	case GameActionStats:
		if m.finished {
			m.wantsStats = true
			return m, tea.Quit // Intercepted when a session hosts the run
		}

	case GameActionMute:
		m.toggleMute()

	case GameActionPersona:
		m.cyclePersona()
	}

	return m, nil
}

// step resolves one player turn and fans the outcome out to the message
// log, the narrator, the audio engine, and the live feed.
func (m GameModel) step(dir game.Direction) (tea.Model, tea.Cmd) {
	target := m.state.Player().Add(dir.Delta())
	prevHealth := m.state.Health()
	frozenBefore := anyFrozen(m.state.Drones())

	out := m.state.Step(dir, m.droneRng)

	mood := game.ClassifyMood(m.state)
	ctx := m.narrationContext()

	switch out.Tag {
	case game.OutcomeBump:
		if !m.state.InBounds(target) {
			m.addMessage("You bump into the perimeter.")
		} else {
			m.addMessage("That way is sealed by a wall.")
		}
	case game.OutcomeTrapped:
		m.addMessage("A hidden spike nicks you. (-1 hp)")
	case game.OutcomeHealed:
		m.addMessage("You patch yourself up. (+1 hp)")
	case game.OutcomeHelped:
		if m.state.Health() > prevHealth {
			m.addMessage("A friendly runner patches you up and scrambles drone signals for two turns. (+1 hp)")
		} else {
			m.addMessage("A friendly runner scrambles drone signals for two turns.")
		}
	}

	if frozenBefore || anyFrozen(m.state.Drones()) {
		m.addMessage("Drones buzz in place under the signal jam.")
	}
	if out.Caught {
		m.addMessage(dangerStyle.Render("A drone slams into you!"))
	}

	var line string
	if ev, ok := narrator.EventForOutcome(out); ok {
		if l, lok := m.voice.Describe(ev, mood, ctx); lok {
			line = l
			m.addMessage(narrationStyle.Render(l))
		}
	}
	if clip, ok := audio.ClipForOutcome(out); ok {
		m.sound.Play(clip)
	}

	if !m.state.Terminal() {
		if l, ok := m.voice.NoteLowHealth(mood, ctx); ok {
			m.addMessage(narrationStyle.Render(l))
		}
		if d, ok := m.state.NearestDroneDistance(); ok && d <= 1 {
			if l, lok := m.voice.Describe(narrator.EventNearMiss, mood, ctx); lok {
				m.addMessage(narrationStyle.Render(l))
			}
		}
		if l, ok := m.voice.Ambient(mood, m.state.Turn(), ctx); ok {
			m.addMessage(narrationStyle.Render(l))
			ev := m.feedEvent(feed.TypeStatus)
			ev.Line = l
			m.publish(ev)
		}
	}

	ev := m.feedEvent(feed.TypeTurn)
	ev.Outcome = out.Tag.String()
	ev.Caught = out.Caught
	ev.Line = line
	m.publish(ev)

	switch out.Tag {
	case game.OutcomeVictory:
		return m.finishRun(stats.ResultVictory, mood, ctx)
	case game.OutcomeDefeat:
		return m.finishRun(stats.ResultDefeat, mood, ctx)
	}

	return m, nil
}

// abandon records the run as quit and moves to the end screen.
func (m GameModel) abandon() (tea.Model, tea.Cmd) {
	return m.finishRun(stats.ResultQuit, game.ClassifyMood(m.state), m.narrationContext())
}

// finishRun ends the run: terminal banner, closing narration, jingle,
// stats recording, and the round_end feed event.
func (m GameModel) finishRun(result stats.Result, mood game.Mood, ctx narrator.Context) (tea.Model, tea.Cmd) {
	m.finished = true
	m.result = result

	switch result {
	case stats.ResultVictory:
		m.addMessage(victoryStyle.Render("You jack the vault core and slip away. Victory!"))
		if line, ok := m.voice.Describe(narrator.EventVictory, mood, ctx); ok {
			m.addMessage(narrationStyle.Render(line))
		}
		m.sound.Play(audio.ClipVictory)
	case stats.ResultDefeat:
		m.addMessage(dangerStyle.Render("You collapse before reaching the exit. Game over."))
		if line, ok := m.voice.Describe(narrator.EventDefeat, mood, ctx); ok {
			m.addMessage(narrationStyle.Render(line))
		}
		m.sound.Play(audio.ClipDefeat)
	case stats.ResultQuit:
		m.addMessage("You abandon the run.")
		if line, ok := m.voice.Describe(narrator.EventQuit, mood, ctx); ok {
			m.addMessage(narrationStyle.Render(line))
		}
	}
	m.sound.StopAmbient()

	if m.store != nil {
		// Best-effort: a failed write costs the ledger entry, not the run.
		if record, err := m.store.RecordRun(m.diff.Name, result, m.state.Turn()); err == nil {
			if summary, sumErr := m.store.Summary(m.diff.Name); sumErr == nil {
				m.endSummary = summary.Line()
			}
			if result == stats.ResultVictory && record.NewBest {
				ctx.Turns = m.state.Turn()
				if line, ok := m.voice.Describe(narrator.EventRecord, mood, ctx); ok {
					m.addMessage(narrationStyle.Render(line))
				}
			}
			if result == stats.ResultVictory && record.WinStreak >= 3 {
				ctx.Streak = record.WinStreak
				if line, ok := m.voice.Describe(narrator.EventStreak, mood, ctx); ok {
					m.addMessage(narrationStyle.Render(line))
				}
			}
		}
	}

	ev := m.feedEvent(feed.TypeRoundEnd)
	ev.Result = string(result)
	m.publish(ev)

	return m, nil
}

// newRun regenerates the board with a fresh seed, keeping the difficulty
// and the narrator voice.
func (m GameModel) newRun() (tea.Model, tea.Cmd) {
	seed := time.Now().UnixNano()
	layout, err := game.Generate(m.diff, game.NewRand(seed, seedLabelLayout))
	if err != nil {
		// Presets always validate, so stay on the end screen if a fresh
		// board somehow fails to materialize.
		return m, nil
	}

	m.state = game.NewState(layout, m.diff)
	m.droneRng = game.NewRand(seed, seedLabelDrones)
	m.voice.ResetRound()
	m.messages = nil
	m.finished = false
	m.result = ""
	m.endSummary = ""
	m.beginRun()

	return m, nil
}

func (m *GameModel) toggleMute() {
	if m.sound.Player() == "" {
		m.addMessage(faintStyle.Render("No system audio player found (afplay/aplay). Continuing muted."))
		return
	}
	if m.sound.Enabled() {
		m.sound.SetEnabled(false)
		m.addMessage(faintStyle.Render("Audio muted."))
		return
	}
	m.sound.SetEnabled(true)
	if !m.finished {
		m.sound.StartAmbient()
	}
	m.addMessage(faintStyle.Render("Audio on."))
}

func (m *GameModel) cyclePersona() {
	personas := narrator.Personas()
	current := m.voice.Persona().Key
	for i, p := range personas {
		if p.Key == current {
			next := personas[(i+1)%len(personas)]
			m.voice.SetPersona(next)
			m.addMessage(faintStyle.Render("Narrator voice: " + next.Label))
			return
		}
	}
}

// addMessage appends to the recent-events log, dropping the oldest lines
// past the cap.
func (m *GameModel) addMessage(line string) {
	if line == "" {
		return
	}
	m.messages = append(m.messages, line)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

// narrationContext snapshots the numbers a persona line may reference.
func (m *GameModel) narrationContext() narrator.Context {
	ctx := narrator.Context{
		Health:    m.state.Health(),
		MaxHealth: m.state.MaxHealth(),
		Turns:     m.state.Turn(),
	}
	if d, ok := m.state.NearestDroneDistance(); ok {
		ctx.Proximity = d
		ctx.HasProximity = true
	}
	return ctx
}

// feedEvent snapshots the run state into a feed event of the given type.
func (m *GameModel) feedEvent(typ string) feed.Event {
	ev := feed.Event{
		Type:          typ,
		Difficulty:    m.diff.Name,
		Persona:       m.voice.Persona().Key,
		Turn:          m.state.Turn(),
		Health:        m.state.Health(),
		MaxHealth:     m.state.MaxHealth(),
		PlayerX:       m.state.Player().X,
		PlayerY:       m.state.Player().Y,
		ExitDistance:  m.state.ExitDistance(),
		DroneDistance: -1,
		Mood:          game.ClassifyMood(m.state).String(),
	}
	if d, ok := m.state.NearestDroneDistance(); ok {
		ev.DroneDistance = d
	}
	return ev
}

func (m *GameModel) publish(ev feed.Event) {
	if m.events != nil {
		m.events.Publish(ev)
	}
}

func anyFrozen(drones []game.Drone) bool {
	for _, d := range drones {
		if d.FrozenTurns > 0 {
			return true
		}
	}
	return false
}

// View renders the run screen: legend, status, board, and the recent
// events log, with the end-of-run footer once the run is over.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(legend))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(centerBlock(RenderBoard(m.state), m.width))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("=== Recent Events ==="))
	b.WriteString("\n")

	if len(m.messages) == 0 {
		b.WriteString("(No recent events)\n")
		b.WriteString(strings.Repeat("\n", maxMessages-1))
	} else {
		for _, msg := range m.messages {
			b.WriteString(msg)
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("\n", maxMessages-len(m.messages)))
	}

	b.WriteString("\n")
	if m.finished {
		if m.endSummary != "" {
			b.WriteString(headerStyle.Render(fmt.Sprintf("Stats [%s]: %s", m.diff.Label, m.endSummary)))
			b.WriteString("\n")
		}
		b.WriteString(faintStyle.Render("N: New run  |  Esc/B: Menu  |  Tab: Stats  |  Q: Quit"))
	} else {
		b.WriteString(faintStyle.Render("Move: WASD/Arrows  |  P: Voice  |  M: Mute  |  Q: Abandon"))
	}
	b.WriteString("\n")

	return b.String()
}

// statusLine summarizes the run: difficulty, health, turn, and the
// narration mood bucket.
func (m GameModel) statusLine() string {
	status := fmt.Sprintf("Difficulty: %s   Health: %d/%d   Turn: %d   Mood: %s",
		m.diff.Label, m.state.Health(), m.state.MaxHealth(), m.state.Turn(), game.ClassifyMood(m.state))
	if !m.sound.Enabled() {
		status += "   " + faintStyle.Render("[muted]")
	}
	return status
}

// Finished reports whether the current run has ended.
func (m GameModel) Finished() bool {
	return m.finished
}

// Result returns the recorded outcome of a finished run.
func (m GameModel) Result() stats.Result {
	return m.result
}

// Persona returns the narrator voice currently in use.
func (m GameModel) Persona() narrator.Persona {
	return m.voice.Persona()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsStats returns true if user requested the stats board.
func (m GameModel) WantsStats() bool {
	return m.wantsStats
}

// Run starts a standalone program hosting a single run, menu not
// included. Used by direct play from the command line.
func Run(diff game.Difficulty, persona narrator.Persona, store *stats.Store, sound *audio.Engine, events *feed.Server, cfg RunConfig) error {
	model, err := NewGameModel(diff, persona, store, sound, events, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
