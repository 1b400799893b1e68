package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	sampleRate = 44100
	// Sine-curve fade applied to both ends of every segment to prevent
	// clicks at segment boundaries.
	defaultFade = 0.02
	// Headroom factor so stacked sines never clip.
	headroom = 0.8
)

// segment is one tone in a clip recipe. An empty freqs slice renders
// silence.
type segment struct {
	freqs    []float64
	duration float64
	volume   float64
}

// recipes are the built-in clip definitions, keyed by clip name.
var recipes = map[string][]segment{
	ClipAmbient: {
		{freqs: []float64{110, 220}, duration: 0.9, volume: 0.12},
		{duration: 0.08},
		{freqs: []float64{180, 360}, duration: 0.7, volume: 0.1},
		{freqs: []float64{140}, duration: 0.6, volume: 0.08},
	},
	ClipTrap: {
		{freqs: []float64{90}, duration: 0.12, volume: 0.28},
		{freqs: []float64{60}, duration: 0.09, volume: 0.24},
	},
	ClipMedkit: {
		{freqs: []float64{480}, duration: 0.1, volume: 0.24},
		{freqs: []float64{640}, duration: 0.1, volume: 0.22},
	},
	ClipHelper: {
		{freqs: []float64{420, 620}, duration: 0.16, volume: 0.2},
	},
	ClipWall: {
		{freqs: []float64{80}, duration: 0.08, volume: 0.2},
		{freqs: []float64{60}, duration: 0.06, volume: 0.16},
	},
	ClipDroneHit: {
		{freqs: []float64{220}, duration: 0.12, volume: 0.26},
		{freqs: []float64{180}, duration: 0.14, volume: 0.24},
	},
	ClipVictory: {
		{freqs: []float64{320}, duration: 0.12, volume: 0.22},
		{duration: 0.02},
		{freqs: []float64{520}, duration: 0.14, volume: 0.24},
		{freqs: []float64{720}, duration: 0.15, volume: 0.22},
	},
	ClipDefeat: {
		{freqs: []float64{160}, duration: 0.16, volume: 0.24},
		{freqs: []float64{120}, duration: 0.18, volume: 0.22},
	},
}

// renderSegment synthesizes one segment as 16-bit PCM samples. The
// returned end phase feeds the next segment so tones stay continuous
// across segment boundaries.
func renderSegment(freqs []float64, duration, volume, startPhase float64) ([]int16, float64) {
	frames := int(sampleRate * duration)
	fadeFrames := int(sampleRate * defaultFade)
	if fadeFrames < 1 {
		fadeFrames = 1
	}
	if len(freqs) == 0 {
		// Silence, phase passes through untouched
		return make([]int16, frames), startPhase
	}

	data := make([]int16, 0, frames)
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		sample := 0.0
		for _, f := range freqs {
			sample += math.Sin(2*math.Pi*f*t + startPhase)
		}
		sample /= float64(len(freqs))

		envelope := 1.0
		if i < fadeFrames {
			envelope = math.Sin(float64(i) / float64(fadeFrames) * math.Pi / 2)
		} else if frames-i < fadeFrames {
			envelope = math.Sin(float64(frames-i) / float64(fadeFrames) * math.Pi / 2)
		}

		value := sample * envelope * volume * headroom
		value = math.Max(-1.0, math.Min(1.0, value))
		data = append(data, int16(value*32767))
	}

	endTime := float64(frames) / sampleRate
	endPhase := math.Mod(2*math.Pi*freqs[0]*endTime+startPhase, 2*math.Pi)
	return data, endPhase
}

// renderClip synthesizes a full clip recipe. Returns nil for unknown
// keys.
func renderClip(key string) []int16 {
	recipe, ok := recipes[key]
	if !ok {
		return nil
	}

	var samples []int16
	phase := 0.0
	for _, seg := range recipe {
		var part []int16
		part, phase = renderSegment(seg.freqs, seg.duration, seg.volume, phase)
		samples = append(samples, part...)
	}
	return samples
}

// writeWAV writes samples as a mono 16-bit PCM RIFF/WAVE stream.
func writeWAV(w io.Writer, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	header := struct {
		ChunkID       [4]byte
		ChunkSize     uint32
		Format        [4]byte
		Subchunk1ID   [4]byte
		Subchunk1Size uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Subchunk2ID   [4]byte
		Subchunk2Size uint32
	}{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1, // PCM
		NumChannels:   1,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("audio: cannot write WAV header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("audio: cannot write WAV samples: %w", err)
	}
	return nil
}
