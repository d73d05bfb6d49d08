// Package audio plays sound effects and background music.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// ErrUnknownSound is returned when a key was never preloaded.
var ErrUnknownSound = errors.New("unknown sound")

// Voice is one playing instance of a sound. *audio.Player satisfies it.
type Voice interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// Backend decodes sound files and creates voices from decoded PCM.
type Backend interface {
	Decode(name string, data []byte) ([]byte, error)
	NewVoice(pcm []byte, loop bool) (Voice, error)
}

// Manager is fire-and-forget sound playback plus one looping BGM slot.
// All methods are called from the game goroutine.
type Manager struct {
	backend Backend
	sounds  map[string][]byte
	voices  []Voice

	bgm       Voice
	bgmKey    string
	bgmVolume float64

	muted bool
}

// NewManager creates a manager on the given backend.
func NewManager(backend Backend) *Manager {
	return &Manager{
		backend: backend,
		sounds:  make(map[string][]byte),
	}
}

// Load decodes one sound file under key.
func (m *Manager) Load(fsys fs.FS, key, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	pcm, err := m.backend.Decode(path, data)
	if err != nil {
		return fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	m.sounds[key] = pcm
	return nil
}

// Preload loads every key in paths. Failures are logged and skipped; the
// number of sounds loaded is returned.
func (m *Manager) Preload(fsys fs.FS, paths map[string]string) int {
	n := 0
	for key, path := range paths {
		if err := m.Load(fsys, key, path); err != nil {
			log.Printf("sound %s unavailable: %v", key, err)
			continue
		}
		n++
	}
	return n
}

// Has reports whether key is loaded.
func (m *Manager) Has(key string) bool {
	_, ok := m.sounds[key]
	return ok
}

// PlaySound starts key at volume. Missing keys and muted output are
// silently skipped.
func (m *Manager) PlaySound(key string, volume float64) {
	if m.muted {
		return
	}
	pcm, ok := m.sounds[key]
	if !ok {
		return
	}
	v, err := m.backend.NewVoice(pcm, false)
	if err != nil {
		log.Printf("sound %s: %v", key, err)
		return
	}
	v.SetVolume(volume)
	v.Play()
	m.voices = append(m.voices, v)
}

// PlayBGM loops key at volume, replacing any BGM already playing. It
// restarts from the beginning even when key is the current track.
func (m *Manager) PlayBGM(key string, volume float64) error {
	m.StopBGM()
	pcm, ok := m.sounds[key]
	if !ok {
		return fmt.Errorf("bgm %s: %w", key, ErrUnknownSound)
	}
	v, err := m.backend.NewVoice(pcm, true)
	if err != nil {
		return fmt.Errorf("failed to start bgm %s: %w", key, err)
	}
	v.SetVolume(volume)
	m.bgm = v
	m.bgmKey = key
	m.bgmVolume = volume
	if !m.muted {
		v.Play()
	}
	return nil
}

// StopBGM stops and releases the current BGM, if any.
func (m *Manager) StopBGM() {
	if m.bgm == nil {
		return
	}
	m.bgm.Pause()
	if err := m.bgm.Close(); err != nil {
		log.Printf("bgm %s close: %v", m.bgmKey, err)
	}
	m.bgm = nil
	m.bgmKey = ""
}

// BGM returns the key of the current BGM, or "".
func (m *Manager) BGM() string {
	return m.bgmKey
}

// SetMuted silences new sounds and pauses the BGM. Unmuting resumes it.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	if m.bgm == nil {
		return
	}
	if muted {
		m.bgm.Pause()
	} else {
		m.bgm.Play()
	}
}

// Muted reports the mute flag.
func (m *Manager) Muted() bool {
	return m.muted
}

// Update releases voices that finished playing.
func (m *Manager) Update() {
	live := m.voices[:0]
	for _, v := range m.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		if err := v.Close(); err != nil {
			log.Printf("sound close: %v", err)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
}

// Active returns the number of effect voices not yet released.
func (m *Manager) Active() int {
	return len(m.voices)
}
