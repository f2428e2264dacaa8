//go:build headless

package audio

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/gogpu/spintext"
)

// silentPlayer drains the stream in the background without a device.
type silentPlayer struct {
	playing atomic.Bool
	closed  chan struct{}
}

// Play decodes t without sound output. It is used on headless builds.
func Play(t *Track, loop bool) (Player, error) {
	stream, err := t.Stream(loop)
	if err != nil {
		return nil, err
	}

	p := &silentPlayer{closed: make(chan struct{})}
	p.playing.Store(true)
	go p.drain(stream, t.SampleRate())

	spintext.Logger().Info("audio: playing without output device", "path", t.Path())
	return p, nil
}

// drain consumes r at the track's real-time rate.
func (p *silentPlayer) drain(r io.Reader, sampleRate int) {
	defer p.playing.Store(false)
	if sampleRate <= 0 {
		return
	}

	buf := make([]byte, bytesPerFrame*sampleRate/10)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return
		}
		select {
		case <-p.closed:
			return
		case <-tick.C:
		}
	}
}

func (p *silentPlayer) IsPlaying() bool {
	return p.playing.Load()
}

func (p *silentPlayer) Close() error {
	select {
	case <-p.closed:
	default:
		close(p.closed)
	}
	return nil
}
