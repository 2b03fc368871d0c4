package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is the speaker sample rate
	DefaultSampleRate = 44100

	// DefaultMasterVolume is the linear master volume in [0, 1]
	DefaultMasterVolume = 0.5

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Cue Timing
const (
	StartChimeDuration  = 180 * time.Millisecond
	FallSoundDuration   = 350 * time.Millisecond
	RewindSoundDuration = 500 * time.Millisecond
)

// Cue Pitch
const (
	StartChimeFreq  = 880.0
	FallRumbleFreq  = 70.0
	RewindStartFreq = 660.0
	RewindEndFreq   = 220.0
)

// Spectator Feed
const (
	// SpectatorSnapshotEvery is the number of frames between snapshot broadcasts
	SpectatorSnapshotEvery = 6

	// SpectatorSendBuffer is the per-client outbound queue length
	SpectatorSendBuffer = 64

	SpectatorPingInterval = 30 * time.Second
	SpectatorWriteTimeout = 10 * time.Second
)
