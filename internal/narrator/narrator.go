// Package narrator turns engine outcomes into persona-voiced flavor lines
// for the narration pane and the run event feed.
package narrator

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/herrkaefer/signal-vault-game/internal/game"
)

// Event keys a persona carries lines for.
type Event string

const (
	EventStart     Event = "start"
	EventStatus    Event = "status"
	EventLowHealth Event = "low_health"
	EventTrap      Event = "trap"
	EventMedkit    Event = "medkit"
	EventHelper    Event = "helper"
	EventNearMiss  Event = "near_miss"
	EventWall      Event = "wall"
	EventDroneHit  Event = "drone_hit"
	EventQuit      Event = "quit"
	EventVictory   Event = "victory"
	EventDefeat    Event = "defeat"
	EventRecord    Event = "record"
	EventStreak    Event = "streak"
)

// Ambient lines wait at least this many turns between firings unless the
// tension escalates first.
const ambientCooldownTurns = 3

// Context carries the numbers a line template may reference.
type Context struct {
	Health       int
	MaxHealth    int
	Proximity    int // nearest drone distance
	HasProximity bool
	Turns        int
	Streak       int
}

// expand fills the {placeholders} a persona line may use.
func (c Context) expand(line string) string {
	proximity := "n/a"
	if c.HasProximity {
		proximity = strconv.Itoa(c.Proximity)
	}
	r := strings.NewReplacer(
		"{health}", strconv.Itoa(c.Health),
		"{max_health}", strconv.Itoa(c.MaxHealth),
		"{proximity}", proximity,
		"{turns}", strconv.Itoa(c.Turns),
		"{streak}", strconv.Itoa(c.Streak),
	)
	return r.Replace(line)
}

// Narrator picks persona lines for run events and paces the ambient
// chatter. Line choice flows through the injected rng so a seeded run
// narrates the same way twice.
type Narrator struct {
	persona        Persona
	rng            *rand.Rand
	lowHealthNoted bool
	lastStatusTurn int
	lastMood       game.Mood
}

// New returns a narrator speaking with the given persona.
func New(persona Persona, rng *rand.Rand) *Narrator {
	n := &Narrator{persona: persona, rng: rng}
	n.ResetRound()
	return n
}

// Persona returns the active persona.
func (n *Narrator) Persona() Persona { return n.persona }

// SetPersona switches the voice mid-session.
func (n *Narrator) SetPersona(p Persona) { n.persona = p }

// ResetRound re-arms the one-shot notes and the ambient cooldown for a
// fresh run.
func (n *Narrator) ResetRound() {
	n.lowHealthNoted = false
	n.lastStatusTurn = -ambientCooldownTurns
	n.lastMood = game.MoodLow
}

// Describe returns a line for the event: a random base line with a random
// tension line for the current mood appended, both template-expanded.
// Events the persona has no lines for yield ok=false.
func (n *Narrator) Describe(event Event, mood game.Mood, ctx Context) (string, bool) {
	base := n.persona.events[event]
	if len(base) == 0 {
		return "", false
	}
	line := ctx.expand(base[n.rng.Intn(len(base))])
	if tension := n.persona.tension[mood]; len(tension) > 0 {
		line += " " + ctx.expand(tension[n.rng.Intn(len(tension))])
	}
	return line, true
}

// Ambient offers an occasional status line: after the cooldown has passed,
// or immediately when the mood escalates out of low. Returns ok=false on
// the quiet turns.
func (n *Narrator) Ambient(mood game.Mood, turn int, ctx Context) (string, bool) {
	cooldownReady := turn-n.lastStatusTurn >= ambientCooldownTurns
	escalated := mood != n.lastMood && mood != game.MoodLow
	if !cooldownReady && !escalated {
		n.lastMood = mood
		return "", false
	}
	n.lastStatusTurn = turn
	n.lastMood = mood
	return n.Describe(EventStatus, mood, ctx)
}

// NoteLowHealth returns a one-time warning once health falls to half the
// cap or below. It re-arms only on ResetRound.
func (n *Narrator) NoteLowHealth(mood game.Mood, ctx Context) (string, bool) {
	threshold := max(1, ctx.MaxHealth/2)
	if n.lowHealthNoted || ctx.Health <= 0 || ctx.Health > threshold {
		return "", false
	}
	line, ok := n.Describe(EventLowHealth, mood, ctx)
	if ok {
		n.lowHealthNoted = true
	}
	return line, ok
}

// EventForOutcome maps a turn outcome to its immediate narration event.
// Victory and defeat lines belong to the end of the run, not to the turn,
// so those tags yield ok=false here; a drone catch still gets its own
// line before the defeat screen.
func EventForOutcome(out game.Outcome) (Event, bool) {
	if out.Caught {
		return EventDroneHit, true
	}
	switch out.Tag {
	case game.OutcomeTrapped:
		return EventTrap, true
	case game.OutcomeHealed:
		return EventMedkit, true
	case game.OutcomeHelped:
		return EventHelper, true
	case game.OutcomeBump:
		return EventWall, true
	default:
		return "", false
	}
}
