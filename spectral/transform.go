// Package spectral provides a radix-2 Fourier transform over an owned
// complex buffer, plus magnitude/phase spectra and dominant-bin ranking
// for real-valued input signals.
package spectral

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectral functions.
var (
	ErrEmptyInput    = errors.New("spectral: input signal is empty")
	ErrNotPowerOfTwo = errors.New("spectral: buffer length must be a power of two")
)

// DefaultTopK is the dominant-bin count used when callers have no
// specific preference.
const DefaultTopK = 5

// BinMagnitude pairs a spectrum bin index with its magnitude.
type BinMagnitude struct {
	Bin       int
	Magnitude float64
}

// Transform holds a complex sample buffer and computes its discrete
// Fourier transform in place.
//
// A Transform is created from a real-valued signal, transformed once via
// [Transform.Compute], and queried thereafter. It is not safe for
// concurrent use.
type Transform struct {
	data []complex128
	n    int // original (pre-padding) signal length
}

// New creates a Transform from a real-valued signal. The samples are
// copied into an owned complex buffer with zero imaginary parts; no
// padding happens until [Transform.Compute].
func New(samples []float64) (*Transform, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	data := make([]complex128, len(samples))
	for i, v := range samples {
		data[i] = complex(v, 0)
	}

	return &Transform{data: data, n: len(samples)}, nil
}

// Len returns the current buffer length: the signal length before
// [Transform.Compute], the padded power-of-two length after.
func (t *Transform) Len() int {
	return len(t.data)
}

// SignalLen returns the original signal length before padding.
func (t *Transform) SignalLen() int {
	return t.n
}

// Compute zero-pads the buffer to the next power of two and applies the
// forward transform in place. Afterwards bin k holds the Fourier
// coefficient for frequency k/P cycles per sample, where P = [Transform.Len].
func (t *Transform) Compute() {
	p := nextPowerOf2(len(t.data))
	if p > len(t.data) {
		padded := make([]complex128, p)
		copy(padded, t.data)
		t.data = padded
	}

	fft(t.data)
}

// Coefficients returns the owned complex buffer. After [Transform.Compute]
// it holds the Fourier coefficients of the padded signal. The slice must
// not be modified by the caller.
func (t *Transform) Coefficients() []complex128 {
	return t.data
}

// MagnitudeSpectrum returns |X[k]| for bins 0..P/2-1.
//
// Only the first half is returned: a real-valued input yields a
// Hermitian-symmetric spectrum, so the upper half is redundant.
func (t *Transform) MagnitudeSpectrum() []float64 {
	half := len(t.data) / 2
	if half == 0 {
		return nil
	}

	re := make([]float64, half)
	im := make([]float64, half)

	for i, c := range t.data[:half] {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, half)
	vecmath.Magnitude(out, re, im)

	return out
}

// PowerSpectrum returns |X[k]|^2 for bins 0..P/2-1.
func (t *Transform) PowerSpectrum() []float64 {
	half := len(t.data) / 2
	if half == 0 {
		return nil
	}

	re := make([]float64, half)
	im := make([]float64, half)

	for i, c := range t.data[:half] {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, half)
	vecmath.Power(out, re, im)

	return out
}

// PhaseSpectrum returns arg(X[k]) in (-pi, pi] for bins 0..P/2-1.
func (t *Transform) PhaseSpectrum() []float64 {
	half := len(t.data) / 2
	if half == 0 {
		return nil
	}

	out := make([]float64, half)
	for i := range out {
		out[i] = cmplx.Phase(t.data[i])
	}

	return out
}

// DominantFrequencies returns the topK highest-magnitude bins of the
// one-sided spectrum, sorted by magnitude descending. Ties keep their
// original bin order. Bin 0 (the DC component) is never included.
//
// topK <= 0 yields an empty result; topK larger than the available bin
// count yields all available bins.
func (t *Transform) DominantFrequencies(topK int) []BinMagnitude {
	if topK <= 0 {
		return nil
	}

	mag := t.MagnitudeSpectrum()
	if len(mag) <= 1 {
		return nil
	}

	pairs := make([]BinMagnitude, 0, len(mag)-1)
	for bin := 1; bin < len(mag); bin++ {
		pairs = append(pairs, BinMagnitude{Bin: bin, Magnitude: mag[bin]})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Magnitude > pairs[j].Magnitude
	})

	if topK < len(pairs) {
		pairs = pairs[:topK]
	}

	return pairs
}

// Forward applies the radix-2 Cooley-Tukey transform to x in place.
// The length of x must be a power of two.
func Forward(x []complex128) error {
	if !isPowerOfTwo(len(x)) {
		return ErrNotPowerOfTwo
	}

	fft(x)

	return nil
}

// Inverse applies the inverse transform to x in place, realized as
// conjugate, forward transform, conjugate, scale by 1/N. The length of x
// must be a power of two; no implicit padding is performed.
func Inverse(x []complex128) error {
	if !isPowerOfTwo(len(x)) {
		return ErrNotPowerOfTwo
	}

	for i := range x {
		x[i] = cmplx.Conj(x[i])
	}

	fft(x)

	scale := complex(float64(len(x)), 0)
	for i := range x {
		x[i] = cmplx.Conj(x[i]) / scale
	}

	return nil
}

// fft is the recursive divide-and-conquer kernel. Callers guarantee a
// power-of-two length.
func fft(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)

	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	fft(even)
	fft(odd)

	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle := cmplx.Rect(1, angle) * odd[k]
		x[k] = even[k] + twiddle
		x[k+half] = even[k] - twiddle
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
