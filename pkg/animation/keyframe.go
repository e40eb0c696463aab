package animation

import "sort"

// KeyFrameData holds the samples of one animated property. Values are flat
// tuples, one per time: 3 floats for translation and scale, 4 for rotation.
type KeyFrameData struct {
	Times  []float32
	Values []float32
}

// Interpolate samples the keyframes at time.
func (k KeyFrameData) Interpolate(time float32, dims int) []float32 {
	return InterpolateKeyframe(k.Times, k.Values, time, dims)
}

// InterpolateKeyframe linearly interpolates between the two keyframes that
// bracket time. Times outside the keyed range clamp to the first or last
// value. Empty or short data yields a zero vector of length dims.
func InterpolateKeyframe(times, values []float32, time float32, dims int) []float32 {
	out := make([]float32, dims)
	if len(times) == 0 || len(values) < len(times)*dims {
		return out
	}

	last := len(times) - 1
	if time <= times[0] {
		copy(out, values[:dims])
		return out
	}
	if time >= times[last] {
		copy(out, values[last*dims:(last+1)*dims])
		return out
	}

	// First keyframe strictly after time; times[next-1] <= time < times[next].
	next := sort.Search(len(times), func(i int) bool { return times[i] > time })
	switch next {
	case 0:
		copy(out, values[:dims])
		return out
	case len(times):
		// NaN compares false everywhere and lands here.
		copy(out, values[last*dims:(last+1)*dims])
		return out
	}
	prev := next - 1

	t0, t1 := times[prev], times[next]
	alpha := (time - t0) / (t1 - t0)
	for i := 0; i < dims; i++ {
		v0 := values[prev*dims+i]
		v1 := values[next*dims+i]
		out[i] = v0 + alpha*(v1-v0)
	}
	return out
}
