// Package analysis extracts frequency content from run telemetry. Pokes on
// a regular cadence show up as a spike in the speed series' spectrum.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the series'
// FFT. Bin k is the strength of the oscillation with period len(series)/k
// frames; bin 0 is the DC offset. Series shorter than two samples have no
// spectrum.
func PowerSpectrum(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}
	coeffs := fft.FFTReal(series)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Dominant returns the strongest non-DC bin and its magnitude, or bin 0
// when the spectrum is flat or too short to have one.
func Dominant(ps []float64) (bin int, power float64) {
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			bin, power = i, ps[i]
		}
	}
	return bin, power
}
