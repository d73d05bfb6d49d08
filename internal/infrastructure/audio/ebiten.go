package audio

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DefaultSampleRate is the rate of the shared audio context.
const DefaultSampleRate = 44100

// EbitenBackend plays through ebiten's audio context. Only one may be
// created per process.
type EbitenBackend struct {
	ctx *audio.Context
}

// NewEbitenBackend creates the process audio context.
func NewEbitenBackend(sampleRate int) *EbitenBackend {
	return &EbitenBackend{ctx: audio.NewContext(sampleRate)}
}

// Decode converts an mp3 or wav file to PCM at the context sample rate.
func (b *EbitenBackend) Decode(name string, data []byte) ([]byte, error) {
	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	return io.ReadAll(stream)
}

// NewVoice creates a player for pcm. Looping voices repeat forever.
func (b *EbitenBackend) NewVoice(pcm []byte, loop bool) (Voice, error) {
	if !loop {
		return b.ctx.NewPlayerFromBytes(pcm), nil
	}
	src := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := b.ctx.NewPlayer(src)
	if err != nil {
		return nil, err
	}
	return p, nil
}
