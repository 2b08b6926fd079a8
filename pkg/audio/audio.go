// Package audio converts raw speech PCM into playable buffers and WAV files.
package audio

import (
	"encoding/binary"
	"time"
)

// Buffer holds de-interleaved samples in [-1, 1], one slice per channel.
type Buffer struct {
	SampleRate int
	Channels   int
	Data       [][]float32
}

// Frames returns the number of samples per channel.
func (b Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration is the playback length of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// DecodeToPlayableBuffer turns little-endian signed 16-bit interleaved PCM into
// a Buffer. Each sample is divided by 32768. A trailing partial frame is
// dropped.
func DecodeToPlayableBuffer(pcm []byte, sampleRate, channels int) (Buffer, error) {
	if sampleRate <= 0 {
		return Buffer{}, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return Buffer{}, ErrInvalidChannels
	}
	if len(pcm)%2 != 0 {
		return Buffer{}, ErrOddLength
	}

	samples := len(pcm) / 2
	frames := samples / channels
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			off := (i*channels + ch) * 2
			v := int16(binary.LittleEndian.Uint16(pcm[off:]))
			data[ch][i] = float32(v) / 32768.0
		}
	}

	return Buffer{SampleRate: sampleRate, Channels: channels, Data: data}, nil
}

// EncodeToContainerFile writes the buffer as a 16-bit PCM WAV file.
func EncodeToContainerFile(buf Buffer) ([]byte, error) {
	if buf.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if buf.Channels <= 0 || len(buf.Data) != buf.Channels {
		return nil, ErrInvalidChannels
	}
	frames := buf.Frames()
	for _, ch := range buf.Data {
		if len(ch) != frames {
			return nil, ErrInconsistentBuffer
		}
	}

	blockAlign := buf.Channels * bitsPerSample / 8
	dataSize := frames * blockAlign
	out := make([]byte, wavHeaderSize+dataSize)

	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+dataSize))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], formatPCM)
	binary.LittleEndian.PutUint16(out[22:], uint16(buf.Channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(buf.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], bitsPerSample)
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))

	off := wavHeaderSize
	for i := 0; i < frames; i++ {
		for ch := 0; ch < buf.Channels; ch++ {
			binary.LittleEndian.PutUint16(out[off:], uint16(toInt16(buf.Data[ch][i])))
			off += 2
		}
	}
	return out, nil
}

// PCMToWAV decodes speech PCM and re-encodes it as a WAV file.
func PCMToWAV(pcm []byte, sampleRate, channels int) ([]byte, Buffer, error) {
	buf, err := DecodeToPlayableBuffer(pcm, sampleRate, channels)
	if err != nil {
		return nil, Buffer{}, err
	}
	wav, err := EncodeToContainerFile(buf)
	if err != nil {
		return nil, Buffer{}, err
	}
	return wav, buf, nil
}

func toInt16(s float32) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	if s < 0 {
		return int16(s * 0x8000)
	}
	return int16(s * 0x7FFF)
}
