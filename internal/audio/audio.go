// Package audio decodes the background music and plays it.
//
// Playback goes through oto. Building with the headless tag swaps in a
// silent backend for machines without a sound device.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// Decoded PCM is 16-bit little endian stereo.
const (
	channelCount   = 2
	bytesPerSample = 2
	bytesPerFrame  = channelCount * bytesPerSample
)

// LoadError reports a music file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "audio: couldn't load and play sound " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrEmptyFile is wrapped by LoadError when the music file has no data.
var ErrEmptyFile = errors.New("audio: empty file")

// Track is a decodable MP3 held in memory.
type Track struct {
	path       string
	data       []byte
	sampleRate int
	length     int64
}

// Open reads an MP3 file and checks that it decodes. A file that cannot
// be read yields *LoadError; one that is not MP3 yields a wrapped decoder
// error.
func Open(path string) (*Track, error) {
	// #nosec G304 -- music path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(data) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmptyFile}
	}
	return Decode(path, data)
}

// Decode checks MP3 data already in memory. path is used in messages.
func Decode(path string, data []byte) (*Track, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return &Track{
		path:       path,
		data:       data,
		sampleRate: d.SampleRate(),
		length:     d.Length(),
	}, nil
}

// Path returns the file the track was loaded from.
func (t *Track) Path() string { return t.path }

// SampleRate returns the sample rate in Hz.
func (t *Track) SampleRate() int { return t.sampleRate }

// Length returns the decoded PCM size in bytes, or a negative value when
// the stream length is unknown.
func (t *Track) Length() int64 { return t.length }

// Duration returns the play time of the track, or 0 when unknown.
func (t *Track) Duration() time.Duration {
	if t.length <= 0 || t.sampleRate <= 0 {
		return 0
	}
	frames := t.length / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(t.sampleRate)
}

// Stream returns a fresh PCM stream of the track. With loop set the
// stream restarts at the end instead of returning io.EOF.
func (t *Track) Stream(loop bool) (io.Reader, error) {
	open := func() (io.Reader, error) {
		d, err := mp3.NewDecoder(bytes.NewReader(t.data))
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	r, err := open()
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", t.path, err)
	}
	if !loop {
		return r, nil
	}
	return &loopReader{open: open, r: r}, nil
}

// Player is a started playback.
type Player interface {
	IsPlaying() bool
	Close() error
}

// loopReader reads r and reopens the source each time it is exhausted.
type loopReader struct {
	open func() (io.Reader, error)
	r    io.Reader
}

func (l *loopReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if !errors.Is(err, io.EOF) {
		return n, err
	}
	r, err := l.open()
	if err != nil {
		return n, err
	}
	l.r = r
	if n > 0 {
		return n, nil
	}
	// A source that is empty right after reopening reports io.EOF.
	return l.r.Read(p)
}
