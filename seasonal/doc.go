// Package seasonal splits a regularly sampled series into additive trend,
// seasonal, and residual components.
//
// The trend is a centered moving average over one period. The seasonal
// component is rebuilt from the dominant frequency bins of the detrended
// series, found with the spectral package, and the residual is whatever
// neither component explains:
//
//	original[i] = trend[i] + seasonal[i] + residual[i]
//
// The seasonal reconstruction keeps only bin magnitudes and uses
// zero-phase cosines. Alignment with the true cycle therefore depends on
// how energy splits between the sine and cosine parts of each dominant
// bin; callers wanting phase-exact reconstruction should work from the
// complex coefficients directly.
package seasonal
