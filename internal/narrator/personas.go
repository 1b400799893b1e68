package narrator

import "github.com/herrkaefer/signal-vault-game/internal/game"

// Persona is a narration voice: identity plus line tables keyed by event
// and tension bucket.
type Persona struct {
	Key     string
	Label   string
	Style   string
	events  map[Event][]string
	tension map[game.Mood][]string
}

// Personas returns the built-in voices in menu order.
func Personas() []Persona {
	return []Persona{dramatic, mentor, humorous, cyberpunk}
}

// ByKey returns the persona with the given key, falling back to the
// dramatic host for unknown keys.
func ByKey(key string) Persona {
	for _, p := range Personas() {
		if p.Key == key {
			return p
		}
	}
	return dramatic
}

var dramatic = Persona{
	Key:   "dramatic",
	Label: "Dramatic heist-show host",
	Style: "cinematic, breathless commentary",
	events: map[Event][]string{
		EventStart: {
			"Curtains rise on a neon heist. The vault hums, the stage is yours.",
			"Spotlights flare: one infiltrator versus a maze of chrome.",
		},
		EventStatus: {
			"You stalk between knife-edge shadows; nearest drone sits {proximity} beats away.",
			"Audience of cameras watches. Distance to next drone: {proximity} tiles.",
			"Vault corridors bow; you keep {health}/{max_health} health and the scene obeys.",
		},
		EventLowHealth: {
			"Your vitals stutter; fate leans closer to listen.",
			"Blood paints the script now. Every line matters.",
		},
		EventTrap: {
			"The vault bites back—steel fangs and a flash of red.",
			"Pain blossoms. The vault reminds you it is not a stage, but a predator.",
		},
		EventMedkit: {
			"A quick patch—enough to keep the act alive.",
			"You steady your breathing; the show goes on.",
		},
		EventHelper: {
			"An ally dashes in with a patch, freezing the drones mid-scene.",
			"A backstage courier slips you stolen frequencies and a breath of relief.",
		},
		EventNearMiss: {
			"A drone's shadow skims your shoulder. Silence answers the close call.",
			"The air splits as a drone passes. Fate winks, then looks away.",
		},
		EventWall: {
			"The vault shoves back; the corridor rewrites the script.",
			"A cold barrier halts you—find the next cue.",
		},
		EventDroneHit: {
			"Rotors bloom red and the vault takes its due.",
			"Drone impact—final blackout on your broadcast.",
		},
		EventQuit: {
			"You cut the feed mid-act. The applause will have to wait.",
			"You walk offstage before the last chord lands.",
		},
		EventVictory: {
			"You snatch the core and vanish into applause only you can hear.",
			"Final blackout: you exit with the prize, leaving alarms as your soundtrack.",
		},
		EventDefeat: {
			"Static swallows the broadcast. The vault keeps its secrets.",
			"The lights die. Your story ends between cold walls.",
		},
		EventRecord: {
			"New record pace—this audience will remember the run in {turns} beats.",
			"Personal best. The spotlight bends toward you.",
		},
		EventStreak: {
			"Momentum builds: {streak} wins in a row, and the act keeps climbing.",
			"A streak is forming. The crowd leans in for number {streak}.",
		},
	},
	tension: map[game.Mood][]string{
		game.MoodLow: {
			"Heartbeat steady ({health}/{max_health}). The vault listens.",
			"Breath measured; you own this rhythm.",
		},
		game.MoodMid: {
			"Nerves tighten. You move like a whispered rumor.",
			"The vault watches, patient and curious.",
		},
		game.MoodHigh: {
			"Every step is borrowed time; sirens scream inside your skull.",
			"Red warning halos your vision. Move or be swallowed.",
		},
	},
}

var mentor = Persona{
	Key:   "mentor",
	Label: "Calm mentor in your earpiece",
	Style: "steady, encouraging coaching",
	events: map[Event][]string{
		EventStart: {
			"I'm on comms. Breathe slow and move with intention.",
			"Channel is clear. Keep your steps light and read the room.",
		},
		EventStatus: {
			"Vitals {health}/{max_health}. Nearest drone {proximity} tiles—pick your window.",
			"You're stable. Keep {proximity} tiles of respect from that drone.",
		},
		EventLowHealth: {
			"You're scraped up. Small steps, tighter angles.",
			"Pain is a signal. Let it sharpen, not stall you.",
		},
		EventTrap: {
			"Trap caught you. Reset posture and keep breathing.",
			"Armor pinged. File that location for the return path.",
		},
		EventMedkit: {
			"Good grab. Let the heart rate settle.",
			"Patch secured. Use the calm to plan your next three moves.",
		},
		EventHelper: {
			"Contact on-site jams the drones. Take the quiet seconds.",
			"Runner patched you and scrambled their comms—capitalize now.",
		},
		EventNearMiss: {
			"Drone skimmed close. Proof you can read its rhythm.",
			"That was tight. Bank the timing for the next pass.",
		},
		EventWall: {
			"Wall ahead. Slide along it and find the seam.",
			"Dead end. Rotate and locate your lane.",
		},
		EventDroneHit: {
			"Drone contact. This channel goes quiet with you.",
			"Impact. Systems shutting down—nothing more to coach.",
		},
		EventQuit: {
			"You stepped out early. We'll brief and reset later.",
			"Run aborted. Take the lesson, not the sting.",
		},
		EventVictory: {
			"Core secured. Exfil route is yours. Nice work.",
			"Done cleanly. Quiet pride suits you.",
		},
		EventDefeat: {
			"Run failed. We'll adjust angles and try again.",
			"Shutdown this time. Debrief when you're clear.",
		},
		EventRecord: {
			"That's your fastest finish yet at {turns} turns. Growth noted.",
			"New pace record. Proof the reps are working.",
		},
		EventStreak: {
			"That's {streak} wins straight. Stay disciplined.",
			"Momentum is yours—{streak} in a row. Keep the edges sharp.",
		},
	},
	tension: map[game.Mood][]string{
		game.MoodLow: {
			"You're composed ({health}/{max_health}). Keep it smooth.",
			"No alarms in your voice. Hold that.",
		},
		game.MoodMid: {
			"Tempo's rising; anchor your focus.",
			"Pressure ticked up. Remember your routes.",
		},
		game.MoodHigh: {
			"Adrenaline spiking. Breathe and choose.",
			"Everything's loud; make tight, deliberate moves.",
		},
	},
}

var humorous = Persona{
	Key:   "humorous",
	Label: "Sarcastic sidekick",
	Style: "dry, quick quips",
	events: map[Event][]string{
		EventStart: {
			"Welcome to the vault! Try not to redecorate with your blood.",
			"Another day, another illegal stroll. Let's make questionable choices.",
		},
		EventStatus: {
			"Vitals {health}/{max_health}. Drone gap: {proximity}. Keep swagger small.",
			"It's just you, walls, and maybe {proximity} tiles of breathing room.",
			"Map check: {proximity} tiles till the nearest metal hugger. No pressure.",
		},
		EventLowHealth: {
			"You look awful. It's a compliment, it means you're still here.",
			"Health bar screams. Maybe stop hugging traps?",
		},
		EventTrap: {
			"Ouch. Bet you didn't see that. Neither did I, but I'm not bleeding.",
			"Trap triggered. On the bright side: free tetanus test.",
		},
		EventMedkit: {
			"Bandage time. Duct tape for the soul.",
			"Health restored-ish. Don't lick the medkit.",
		},
		EventHelper: {
			"Random ally strolls in, slaps on a patch, and tells the drones to chill.",
			"Helper drop-off: free heal, free drone jam. Tip not included.",
		},
		EventNearMiss: {
			"Drone almost hugged you. Boundaries, please.",
			"Nice dodge. I'm logging that as 'graceful panic'.",
		},
		EventWall: {
			"Bonk. Stealth via forehead is a choice.",
			"Wall says no. Consider doors next time.",
		},
		EventDroneHit: {
			"Drone hug achieved. It hurts. A lot.",
			"Metal friend delivers the final high-five.",
		},
		EventQuit: {
			"Ghosting the heist? Fine, I'll narrate someone else.",
			"You bail mid-run. Bold strategy, cotton.",
		},
		EventVictory: {
			"Core acquired. Add 'vault heister' to your resume.",
			"You win! I totally believed in you. Mostly.",
		},
		EventDefeat: {
			"And that's a wrap. The vault appreciates your donation.",
			"You fell over. Again. I'll pretend I didn't see it.",
		},
		EventRecord: {
			"Speed run! {turns} turns and a new personal brag.",
			"Personal best unlocked. Should we frame this?",
		},
		EventStreak: {
			"{streak} wins in a row. Are you okay? You seem competent.",
			"Look at you, stacking {streak} victories. Fancy.",
		},
	},
	tension: map[game.Mood][]string{
		game.MoodLow: {
			"Vitals fine ({health}/{max_health}). Maybe dance a little.",
			"We're good. Probably.",
		},
		game.MoodMid: {
			"Okay, breathing is a tiny bit spicy.",
			"Sweat level: politely concerning.",
		},
		game.MoodHigh: {
			"Alerts screaming. Consider fewer mistakes.",
			"Panic? Never heard of it. Also, you're almost toast.",
		},
	},
}

var cyberpunk = Persona{
	Key:   "cyberpunk",
	Label: "Gravel cyberpunk DJ",
	Style: "neon noir with radio static",
	events: map[Event][]string{
		EventStart: {
			"Freqs crackle. You slip into the grid—ghost with a heartbeat.",
			"Neon bleeds on chrome tiles. You jack in and cut the feed.",
		},
		EventStatus: {
			"Telemetry shows {health}/{max_health} integrity; nearest heat signature at {proximity}.",
			"Gutterlight flickers. Drone ping at {proximity}; rhythm stays yours.",
			"Status burst: vitals {health}/{max_health}, proximity {proximity}. Keep under the noise.",
		},
		EventLowHealth: {
			"Vitals flicker like bad neon. One more surge might kill the feed.",
			"Blood in the coolant line. Keep moving or flatline.",
		},
		EventTrap: {
			"Pain floods the channel—vault teeth sampling your code.",
			"Spike of crimson on the HUD. The system reminds you who's host.",
		},
		EventMedkit: {
			"Jackpot: black-market stim. Vitals climb through static.",
			"Patch applied. Systems stabilize, for now.",
		},
		EventHelper: {
			"Ghost contact injects a patch and floods the grid—drones stutter in the static.",
			"Alley runner syncs your feed; swarm comms jammed while you breathe.",
		},
		EventNearMiss: {
			"Drone engines whisper against your ear. You slide through the gap.",
			"Proximity alert flares, then dies. You left only a shadow.",
		},
		EventWall: {
			"Signal dead-end—chrome blocks your packet. Reroute.",
			"Static wall in the grid. Slide to a cleaner channel.",
		},
		EventDroneHit: {
			"Rotors find flesh; feed floods red.",
			"Drone tags your signature—channel collapses to black.",
		},
		EventQuit: {
			"You yank the jack early; transmission fades to gray.",
			"Cutting the link mid-run. The city keeps humming without you.",
		},
		EventVictory: {
			"Core liberated. You fade into night bandwidth.",
			"Signal severed. Payload secured. City keeps spinning.",
		},
		EventDefeat: {
			"Feed cuts out. Vault blues drown your signal.",
			"Your channel goes dark. The grid forgets you.",
		},
		EventRecord: {
			"New fastest jack-in: {turns} turns before the sirens synced.",
			"Record pace etched into the grid. {turns} steps of pure signal.",
		},
		EventStreak: {
			"{streak} straight wins—your frequency stays untraceable.",
			"Streak of {streak}. You're a rumor the drones can't net.",
		},
	},
	tension: map[game.Mood][]string{
		game.MoodLow: {
			"Pulse smooth ({health}/{max_health}). City noise hums in tune.",
			"Ghost-silent. Sensors purr content.",
		},
		game.MoodMid: {
			"Circuits prickle; someone is tuning in.",
			"Heat rises in the channel—stay slick.",
		},
		game.MoodHigh: {
			"Redline screams. Drums of rotors in your skull.",
			"Static blooms; the vault is hunting with teeth of light.",
		},
	},
}
