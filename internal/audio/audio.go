// Package audio plays short feedback clips for install outcomes. Playback
// is best effort: missing sound data or a decode failure is logged and
// skipped, never surfaced as an error.
package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

var (
	speakerOnce  sync.Once
	speakerReady bool
	quiet        bool
	logFunc      func(string, ...interface{})
)

// Init configures the audio package
func Init(quietMode bool, logger func(string, ...interface{})) {
	quiet = quietMode
	logFunc = logger
}

func log(format string, args ...interface{}) {
	if logFunc != nil {
		logFunc(format, args...)
	}
}

func ensureSpeakerInitialized(format beep.Format) {
	speakerOnce.Do(func() {
		speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		speakerReady = true
	})
}

// DecodeSound decodes WAV sound data into a streamer. Empty data is not an
// error; it decodes to a nil streamer.
func DecodeSound(soundData []byte) (beep.StreamSeekCloser, beep.Format, error) {
	if len(soundData) == 0 {
		return nil, beep.Format{}, nil
	}

	streamer, format, err := wav.Decode(bytes.NewReader(soundData))
	if err != nil {
		log("sound data couldn't be decoded: %v", err)
		return nil, beep.Format{}, err
	}

	return streamer, format, nil
}

// Play plays a sound synchronously (blocks until complete)
func Play(soundData []byte) {
	if quiet {
		return
	}

	streamer, format, err := DecodeSound(soundData)
	if err != nil || streamer == nil {
		return
	}
	defer streamer.Close()

	ensureSpeakerInitialized(format)

	done := make(chan bool)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		done <- true
	})))

	<-done
}

// PlayAsync plays a sound in the background at the specified volume (dB)
func PlayAsync(soundData []byte, volumeDB float64) {
	if quiet {
		return
	}

	streamer, format, err := DecodeSound(soundData)
	if err != nil || streamer == nil {
		return
	}

	ensureSpeakerInitialized(format)

	volume := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeDB,
	}

	speaker.Play(beep.Seq(volume, beep.Callback(func() {
		streamer.Close()
	})))
}

// StopAll stops all currently playing sounds
func StopAll() {
	if !speakerReady {
		return
	}
	speaker.Clear()
}
