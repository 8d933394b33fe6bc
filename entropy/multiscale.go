package entropy

import "math"

// Multiscale — Multiscale Entropy (MSE)
//
// Description:
//
//	MSE profiles a sequence's complexity across temporal scales: for each
//	scale s in 1..scaleRange, the sequence is coarse-grained by averaging
//	non-overlapping blocks of length s (any remainder shorter than s is
//	dropped) and the Sample entropy of the coarse-grained sequence is
//	computed. One value is returned per scale.
//
// The tolerance is scaled once against the original sequence:
// effective r = r·SampleStd(seq), with r customarily 0.2. Scales that
// coarse-grain the sequence away entirely have no windows to match and
// yield +Inf, per the Sample entropy convention.
//
// Errors:
//   - ErrEmptySequence     — seq has no elements.
//   - ErrInvalidScaleRange — scaleRange < 1.
//   - ErrInvalidEmbedding  — m < 1.
//   - ErrNegativeTolerance — r < 0.
//
// Complexity: O(scaleRange · N²·m) worst case; coarse-graining shrinks each
// successive input by the scale factor.
func Multiscale(seq []float64, scaleRange, m int, r float64) ([]float64, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if scaleRange < 1 {
		return nil, ErrInvalidScaleRange
	}
	if m < 1 {
		return nil, ErrInvalidEmbedding
	}
	if r < 0 {
		return nil, ErrNegativeTolerance
	}

	tol := r * SampleStd(seq)

	mse := make([]float64, scaleRange)
	for scale := 1; scale <= scaleRange; scale++ {
		coarse := coarseGrain(seq, scale)
		if len(coarse) == 0 {
			// The scale swallowed the whole sequence: nothing to match.
			mse[scale-1] = math.Inf(1)
			continue
		}

		value, err := Sample(coarse, m, tol)
		if err != nil {
			return nil, err
		}
		mse[scale-1] = value
	}

	return mse, nil
}

// coarseGrain averages non-overlapping blocks of length scale, dropping any
// trailing remainder shorter than scale.
func coarseGrain(seq []float64, scale int) []float64 {
	n := len(seq) / scale

	coarse := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := i * scale; j < (i+1)*scale; j++ {
			sum += seq[j]
		}
		coarse[i] = sum / float64(scale)
	}

	return coarse
}
