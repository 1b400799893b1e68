// Package audio generates tiny WAV clips on the fly and plays them with
// the system player (afplay/aplay/paplay). All sounds are optional: a
// missing player or a failed playback degrades to silence rather than
// an error.
package audio

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/herrkaefer/signal-vault-game/internal/game"
)

// Clip keys understood by the engine.
const (
	ClipAmbient  = "ambient"
	ClipTrap     = "trap"
	ClipMedkit   = "medkit"
	ClipHelper   = "helper"
	ClipWall     = "wall"
	ClipDroneHit = "drone_hit"
	ClipVictory  = "victory"
	ClipDefeat   = "defeat"
)

// ClipForOutcome maps a turn outcome to the sound effect it triggers.
// Terminal outcomes return false: the end-of-run screen plays the
// victory and defeat jingles itself.
func ClipForOutcome(out game.Outcome) (string, bool) {
	if out.Caught {
		return ClipDroneHit, true
	}
	switch out.Tag {
	case game.OutcomeBump:
		return ClipWall, true
	case game.OutcomeTrapped:
		return ClipTrap, true
	case game.OutcomeHealed:
		return ClipMedkit, true
	case game.OutcomeHelped:
		return ClipHelper, true
	}
	return "", false
}

// Engine synthesizes clips lazily, caches them on disk and hands them to
// the system player. Safe for concurrent use.
type Engine struct {
	player   string
	cacheDir string

	mu          sync.Mutex
	enabled     bool
	clips       map[string]string
	sfxCmd      *exec.Cmd
	ambientStop chan struct{}
	ambientDone chan struct{}
}

// NewEngine builds an engine that caches rendered clips under cacheDir.
// An empty or unwritable cacheDir falls back to per-clip temp files.
func NewEngine(enabled bool, cacheDir string) *Engine {
	if cacheDir != "" && cacheDir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			cacheDir = filepath.Join(home, cacheDir[1:])
		} else {
			cacheDir = ""
		}
	}
	if cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			log.Debug("audio: cannot create cache directory", "dir", cacheDir, "err", err)
			cacheDir = ""
		}
	}

	return &Engine{
		player:   detectPlayer(),
		cacheDir: cacheDir,
		enabled:  enabled,
		clips:    make(map[string]string),
	}
}

func detectPlayer() string {
	for _, candidate := range []string{"afplay", "aplay", "paplay"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}

// Player reports the system player binary in use, empty when none was
// found on PATH.
func (e *Engine) Player() string {
	return e.player
}

// Enabled reports whether the engine will actually produce sound.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled && e.player != ""
}

// SetEnabled toggles sound. Disabling also silences anything currently
// playing.
func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	e.enabled = enabled
	e.mu.Unlock()
	if !enabled {
		e.StopAll()
	}
}

// Play fires a sound effect without blocking. If another effect is
// still playing the new one is skipped, except for the victory and
// defeat jingles which always play.
func (e *Engine) Play(key string) {
	if !e.Enabled() {
		return
	}

	if key == ClipVictory || key == ClipDefeat {
		if path, ok := e.clipPath(key); ok {
			e.playDetached(path)
		}
		return
	}

	e.mu.Lock()
	busy := e.sfxCmd != nil
	e.mu.Unlock()
	if busy {
		return
	}

	path, ok := e.clipPath(key)
	if !ok {
		return
	}
	e.playSFX(path)
}

// PlayBlocking plays a clip and waits for it to finish. Used for the
// end-of-run jingles that should not be cut off.
func (e *Engine) PlayBlocking(key string) {
	if !e.Enabled() {
		return
	}
	path, ok := e.clipPath(key)
	if !ok {
		return
	}
	cmd := exec.Command(e.player, path)
	if err := cmd.Run(); err != nil {
		log.Debug("audio: playback failed", "clip", key, "err", err)
	}
}

// StartAmbient loops the background drone until StopAmbient is called.
// Calling it while ambient is already running is a no-op.
func (e *Engine) StartAmbient() {
	if !e.Enabled() {
		return
	}

	e.mu.Lock()
	if e.ambientStop != nil {
		e.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	e.ambientStop = stop
	e.ambientDone = done
	e.mu.Unlock()

	path, ok := e.clipPath(ClipAmbient)
	if !ok {
		e.mu.Lock()
		e.ambientStop = nil
		e.ambientDone = nil
		e.mu.Unlock()
		close(done)
		return
	}

	go e.ambientLoop(path, stop, done)
}

func (e *Engine) ambientLoop(path string, stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}

		cmd := exec.Command(e.player, path)
		if err := cmd.Start(); err != nil {
			log.Debug("audio: ambient playback failed", "err", err)
			return
		}

		finished := make(chan struct{})
		go func() {
			cmd.Wait()
			close(finished)
		}()

		select {
		case <-finished:
		case <-stop:
			if cmd.Process != nil {
				cmd.Process.Kill()
			}
			<-finished
			return
		}
	}
}

// StopAmbient stops the background loop and waits briefly for it to
// wind down.
func (e *Engine) StopAmbient() {
	e.mu.Lock()
	stop := e.ambientStop
	done := e.ambientDone
	e.ambientStop = nil
	e.ambientDone = nil
	e.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
	}
}

// StopAll silences the ambient loop and any in-flight sound effect.
func (e *Engine) StopAll() {
	e.StopAmbient()

	e.mu.Lock()
	cmd := e.sfxCmd
	e.sfxCmd = nil
	e.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		cmd.Process.Kill()
	}
}

func (e *Engine) playSFX(path string) {
	cmd := exec.Command(e.player, path)
	if err := cmd.Start(); err != nil {
		log.Debug("audio: playback failed", "err", err)
		return
	}

	e.mu.Lock()
	e.sfxCmd = cmd
	e.mu.Unlock()

	go func() {
		cmd.Wait()
		e.mu.Lock()
		if e.sfxCmd == cmd {
			e.sfxCmd = nil
		}
		e.mu.Unlock()
	}()
}

func (e *Engine) playDetached(path string) {
	cmd := exec.Command(e.player, path)
	if err := cmd.Start(); err != nil {
		log.Debug("audio: playback failed", "err", err)
		return
	}
	go cmd.Wait()
}

// clipPath returns the on-disk WAV for a clip, synthesizing and caching
// it on first use.
func (e *Engine) clipPath(key string) (string, bool) {
	e.mu.Lock()
	if path, ok := e.clips[key]; ok {
		e.mu.Unlock()
		return path, true
	}
	e.mu.Unlock()

	// Reuse a cached file from an earlier session.
	if e.cacheDir != "" {
		cached := filepath.Join(e.cacheDir, key+".wav")
		if _, err := os.Stat(cached); err == nil {
			e.rememberClip(key, cached)
			return cached, true
		}
	}

	samples := renderClip(key)
	if samples == nil {
		return "", false
	}

	path, err := e.writeClip(key, samples)
	if err != nil {
		log.Debug("audio: cannot write clip", "clip", key, "err", err)
		return "", false
	}
	e.rememberClip(key, path)
	return path, true
}

func (e *Engine) rememberClip(key, path string) {
	e.mu.Lock()
	e.clips[key] = path
	e.mu.Unlock()
}

func (e *Engine) writeClip(key string, samples []int16) (string, error) {
	var f *os.File
	var err error
	if e.cacheDir != "" {
		f, err = os.Create(filepath.Join(e.cacheDir, key+".wav"))
	} else {
		f, err = os.CreateTemp("", "vault-"+key+"-*.wav")
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeWAV(f, samples); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
