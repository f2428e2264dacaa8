//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/gogpu/spintext"
)

// oto allows a single context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoRate int
	otoErr  error
)

func otoContext(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			otoErr = fmt.Errorf("audio: open device: %w", err)
			return
		}
		<-ready
		otoCtx, otoRate = ctx, sampleRate
	})
	if otoErr != nil {
		return nil, otoErr
	}
	if sampleRate != otoRate {
		return nil, fmt.Errorf("audio: device opened at %d Hz, track needs %d Hz", otoRate, sampleRate)
	}
	return otoCtx, nil
}

// Play starts playing t on the sound device and returns immediately.
func Play(t *Track, loop bool) (Player, error) {
	ctx, err := otoContext(t.SampleRate())
	if err != nil {
		return nil, err
	}
	stream, err := t.Stream(loop)
	if err != nil {
		return nil, err
	}

	p := ctx.NewPlayer(stream)
	p.Play()
	spintext.Logger().Info("audio: playing",
		"path", t.Path(), "sampleRate", t.SampleRate(), "duration", t.Duration(), "loop", loop)
	return p, nil
}
