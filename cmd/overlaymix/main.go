// Command overlaymix overlays one MP3 clip onto another and plays the result.
//
// Usage:
//
//	overlaymix [flags] dst.mp3 src.mp3
//
// The source clip is mixed into the destination clip starting at the offset
// given by -at (seconds). Both clips must share a sample rate; resample
// beforehand if they do not. Decoding and playback are handled by go-mp3
// and oto; the mixing itself is the overlay engine, run once per channel.
//
// Examples:
//
//	overlaymix music.mp3 voice.mp3
//	overlaymix -at 1.5 music.mp3 voice.mp3
//	overlaymix -replace -o mixed.raw music.mp3 voice.mp3
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ebitengine/oto/v3"
	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/cwbudde/algo-overlay"
)

// go-mp3 always decodes to 16-bit LE interleaved stereo.
const channels = 2

func main() {
	at := flag.Float64("at", 0, "offset in seconds at which the source clip starts")
	replace := flag.Bool("replace", false, "overwrite destination samples instead of mixing")
	out := flag.String("o", "", "write 16-bit LE interleaved PCM to this file instead of playing")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: overlaymix [flags] dst.mp3 src.mp3")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1), *at, !*replace, *out); err != nil {
		fmt.Fprintln(os.Stderr, "overlaymix:", err)
		os.Exit(1)
	}
}

func run(dstPath, srcPath string, at float64, add bool, outPath string) error {
	if at < 0 {
		return fmt.Errorf("offset must not be negative: %g", at)
	}

	dst, dstRate, err := decode(dstPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", dstPath, err)
	}
	src, srcRate, err := decode(srcPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", srcPath, err)
	}
	if dstRate != srcRate {
		return fmt.Errorf("sample rate mismatch: %s is %d Hz, %s is %d Hz", dstPath, dstRate, srcPath, srcRate)
	}

	dstFrames := len(dst[0])

	// The engine is single-channel: one overlay per channel.
	for c := range dst {
		dst[c] = overlay.Overlay(dst[c], src[c], at, uint32(dstRate), add)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "destination\t%s\t%d frames\n", dstPath, dstFrames)
	fmt.Fprintf(w, "source\t%s\t%d frames\n", srcPath, len(src[0]))
	fmt.Fprintf(w, "offset\t%g s\tindex %d\n", at, overlay.StartIndex(at, uint32(dstRate)))
	fmt.Fprintf(w, "result\t%.3f s\t%d frames\n",
		float64(len(dst[0]))/float64(dstRate), len(dst[0]))
	w.Flush()

	pcm := interleave(dst)
	if outPath != "" {
		if err := os.WriteFile(outPath, pcm, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		return nil
	}
	return play(pcm, dstRate)
}

// decode reads a whole MP3 file into per-channel sample slices.
func decode(path string) ([channels][]int16, int, error) {
	var chans [channels][]int16

	f, err := os.Open(path)
	if err != nil {
		return chans, 0, err
	}
	defer f.Close()

	d, err := mp3.NewDecoder(f)
	if err != nil {
		return chans, 0, err
	}
	raw, err := io.ReadAll(d)
	if err != nil {
		return chans, 0, err
	}

	frames := len(raw) / (2 * channels)
	for c := range chans {
		chans[c] = make([]int16, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			chans[c][i] = int16(binary.LittleEndian.Uint16(raw[(i*channels+c)*2:]))
		}
	}
	return chans, d.SampleRate(), nil
}

// interleave packs per-channel samples back into 16-bit LE frames.
func interleave(chans [channels][]int16) []byte {
	frames := len(chans[0])
	out := make([]byte, frames*channels*2)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint16(out[(i*channels+c)*2:], uint16(chans[c][i]))
		}
	}
	return out
}

func play(pcm []byte, rate int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	<-ready

	p := ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return p.Close()
}
