package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	toneHz     = 440
	toneVolume = 6000
)

// Beeper plays a tone while the sound timer runs.
type Beeper struct {
	player *audio.Player
}

func NewBeeper() (*Beeper, error) {
	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(&squareWave{})
	if err != nil {
		return nil, fmt.Errorf("couldn't create the audio player: %s", err)
	}
	return &Beeper{player: player}, nil
}

func (b *Beeper) SetPlaying(playing bool) {
	switch {
	case playing && !b.player.IsPlaying():
		b.player.Play()
	case !playing && b.player.IsPlaying():
		b.player.Pause()
	}
}

// squareWave is an endless square wave stream of 16-bit
// little endian stereo samples.
type squareWave struct {
	pos int64
}

func (s *squareWave) Read(buf []byte) (int, error) {
	const halfPeriod = sampleRate / toneHz / 2

	n := len(buf) / 4 * 4
	for i := 0; i < n; i += 4 {
		v := int16(toneVolume)
		if s.pos/halfPeriod%2 == 1 {
			v = -toneVolume
		}
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
		s.pos++
	}
	return n, nil
}
