//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

var cues = []string{CueDraw, CueCorrect, CueWrong, CueShuffle, CueEmpty}

// SoundManager plays short cues from a directory of mp3/wav files named
// after the cue (draw.mp3, correct.wav, ...).
type SoundManager struct {
	dir     string
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and decodes every cue found in the directory.
// Missing cue files are skipped.
func (sm *SoundManager) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true

	for _, cue := range cues {
		buf, err := sm.loadCue(cue)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load cue %s: %w", cue, err)
		}
		sm.buffers[cue] = buf
	}
	return nil
}

// loadCue decodes <dir>/<cue>.mp3, falling back to <cue>.wav.
func (sm *SoundManager) loadCue(cue string) (*beep.Buffer, error) {
	var lastErr error
	for _, ext := range []string{".mp3", ".wav"} {
		buf, err := sm.decodeFile(filepath.Join(sm.dir, cue+ext), ext)
		if err == nil {
			return buf, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (sm *SoundManager) decodeFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	if ext == ".mp3" {
		streamer, format, err = mp3.Decode(f)
	} else {
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
	buffer.Append(resampled)
	return buffer, nil
}

// Play starts the named cue without waiting for it to finish.
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}
	if buffer, ok := sm.buffers[name]; ok {
		speaker.Play(buffer.Streamer(0, buffer.Len()))
	}
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
