// Package sounds holds the feedback clips the window plays on install
// outcomes. Normal builds carry no audio data and playback is silently
// skipped; builds with -tags sounds embed the clips.
package sounds

// Success returns the clip played when an install completes.
func Success() []byte {
	return successData()
}

// Failure returns the clip played when an install fails.
func Failure() []byte {
	return failureData()
}

// Select returns the clip played on button activation.
func Select() []byte {
	return selectData()
}
