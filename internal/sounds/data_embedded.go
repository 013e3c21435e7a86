//go:build sounds

package sounds

// Embedded feedback clips - populated at build time.
// To build with sounds:
//   1. Place success.wav, failure.wav and select.wav in internal/sounds/clips/
//   2. Run: go build -tags sounds

import _ "embed"

//go:embed clips/success.wav
var successClip []byte

//go:embed clips/failure.wav
var failureClip []byte

//go:embed clips/select.wav
var selectClip []byte

func successData() []byte {
	return successClip
}

func failureData() []byte {
	return failureClip
}

func selectData() []byte {
	return selectClip
}
