// Package mix layers sample clips onto a single destination buffer.
//
// A Timeline collects clips scheduled at start times and renders them by
// repeated saturating overlays, allocating the destination once at the
// exact final length. It is the bulk form of overlay.Overlay for the
// common "mix many clips into one bed" case:
//
//	tl, _ := mix.New[int16](44100)
//	tl.Add(voice, 1.5)
//	tl.Add(music, 0)
//	out := tl.Render()
//
// Clips are single-channel; build one timeline per channel for
// multi-channel material. A Timeline is not synchronized.
package mix
