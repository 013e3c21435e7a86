//go:build !sounds

package sounds

// Stub implementations for builds without audio data.

func successData() []byte {
	return nil
}

func failureData() []byte {
	return nil
}

func selectData() []byte {
	return nil
}
