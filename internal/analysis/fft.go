package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the lower half of the spectrum.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// Resample holds each value until the next sample and reads the result at
// rate Hz, truncated to the largest power of two that fits the recording.
func Resample(times, values []float64, rate float64) []float64 {
	if len(times) == 0 || len(times) != len(values) || rate <= 0 {
		return nil
	}

	t0 := times[0]
	span := times[len(times)-1] - t0
	n := 1
	for n*2 <= int(span*rate)+1 {
		n *= 2
	}

	out := make([]float64, n)
	j := 0
	for i := range out {
		t := t0 + float64(i)/rate
		for j+1 < len(times) && times[j+1] <= t {
			j++
		}
		out[i] = values[j]
	}
	return out
}

// DominantFrequency returns the strongest non-zero frequency of a step
// series in Hz. It reports false when the recording is too short or the
// series never changes.
func DominantFrequency(times, values []float64, rate float64) (float64, bool) {
	data := Resample(times, values, rate)
	if len(data) < 4 {
		return 0, false
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	for i := range data {
		data[i] -= mean
	}

	ps := PowerSpectrum(data)
	best := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[best] || best == 0 {
			best = k
		}
	}
	if ps[best] < 1e-9 {
		return 0, false
	}
	return float64(best) * rate / float64(len(data)), true
}
