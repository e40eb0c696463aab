package animation

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/bugsyth/bugsyth-engine/pkg/math"
)

// Property is the joint property a channel animates.
type Property int

const (
	Translation Property = iota
	Rotation
	Scale
	// Weights animates morph targets, which the sampler does not support.
	Weights
)

// String returns the property name.
func (p Property) String() string {
	switch p {
	case Translation:
		return "translation"
	case Rotation:
		return "rotation"
	case Scale:
		return "scale"
	case Weights:
		return "weights"
	default:
		return fmt.Sprintf("property(%d)", int(p))
	}
}

// Dimensions returns the tuple size of one keyframe value, or 0 for
// properties the sampler does not handle.
func (p Property) Dimensions() int {
	switch p {
	case Translation, Scale:
		return 3
	case Rotation:
		return 4
	default:
		return 0
	}
}

// Channel animates one property of one joint.
type Channel struct {
	TargetJoint int
	Property    Property
	Keyframes   KeyFrameData
}

// NewChannel validates keyframe data and builds a channel.
func NewChannel(target int, prop Property, times, values []float32) (Channel, error) {
	if target < 0 {
		return Channel{}, fmt.Errorf("%w: channel targets joint %d", ErrDataIntegrity, target)
	}
	for i, t := range times {
		if gomath.IsNaN(float64(t)) || gomath.IsInf(float64(t), 0) {
			return Channel{}, fmt.Errorf("%w: %s keyframe time %d is not finite", ErrDataIntegrity, prop, i)
		}
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return Channel{}, fmt.Errorf("%w: %s keyframe times not ascending at %d", ErrDataIntegrity, prop, i)
		}
	}
	if dims := prop.Dimensions(); dims > 0 && len(values) != len(times)*dims {
		return Channel{}, fmt.Errorf("%w: %s channel has %d values for %d keyframes of %d components",
			ErrDataIntegrity, prop, len(values), len(times), dims)
	}
	return Channel{
		TargetJoint: target,
		Property:    prop,
		Keyframes:   KeyFrameData{Times: times, Values: values},
	}, nil
}

// Animation is a named group of channels.
type Animation struct {
	Name     string
	Channels []Channel
}

// Duration returns the time of the last keyframe across all channels.
func (a Animation) Duration() float32 {
	var d float32
	for _, c := range a.Channels {
		if n := len(c.Keyframes.Times); n > 0 && c.Keyframes.Times[n-1] > d {
			d = c.Keyframes.Times[n-1]
		}
	}
	return d
}

// LoopTime wraps t into [0, duration) for looping playback.
func LoopTime(t, duration float32) float32 {
	if duration <= 0 {
		return 0
	}
	m := float32(gomath.Mod(float64(t), float64(duration)))
	if m < 0 {
		m += duration
	}
	return m
}

// Option configures Animations.
type Option func(*Animations)

// WithLogger sets the logger used for sampling diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(a *Animations) {
		if log != nil {
			a.log = log
		}
	}
}

type channelKey struct {
	animation, channel int
}

// Animations is the set of animations loaded for one skinned model.
type Animations struct {
	animations []Animation
	log        *zap.Logger
	warned     map[channelKey]bool
}

// NewAnimations creates an animation set.
func NewAnimations(animations []Animation, opts ...Option) *Animations {
	a := &Animations{
		animations: animations,
		log:        zap.NewNop(),
		warned:     make(map[channelKey]bool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Len returns the number of animations.
func (a *Animations) Len() int {
	return len(a.animations)
}

// At returns animation i.
func (a *Animations) At(i int) Animation {
	return a.animations[i]
}

// Duration returns the longest animation duration.
func (a *Animations) Duration() float32 {
	var d float32
	for _, anim := range a.animations {
		d = max(d, anim.Duration())
	}
	return d
}

// Validate checks that every channel targets a joint of s.
func (a *Animations) Validate(s *Skeleton) error {
	for ai, anim := range a.animations {
		for ci, c := range anim.Channels {
			if c.TargetJoint < 0 || c.TargetJoint >= len(s.Joints) {
				return fmt.Errorf("%w: animation %d (%q) channel %d targets joint %d of %d",
					ErrDataIntegrity, ai, anim.Name, ci, c.TargetJoint, len(s.Joints))
			}
		}
	}
	return nil
}

// AnimatedTransforms samples every channel at time and returns one local
// transform per joint, composed as translation * rotation * scale. Joints
// that no channel targets keep the identity.
//
// The result is not accumulated through the joint hierarchy; see
// WorldTransforms.
func (a *Animations) AnimatedTransforms(s *Skeleton, time float32) []math.Mat4 {
	type trs struct {
		t, r, s  math.Mat4
		animated bool
	}
	poses := make([]trs, len(s.Joints))
	for i := range poses {
		poses[i] = trs{t: math.Identity(), r: math.Identity(), s: math.Identity()}
	}

	for ai, anim := range a.animations {
		for ci, c := range anim.Channels {
			if c.TargetJoint < 0 || c.TargetJoint >= len(s.Joints) {
				a.warnOnce(ai, ci, "channel target out of range", zap.Int("joint", c.TargetJoint))
				continue
			}
			pose := &poses[c.TargetJoint]

			switch c.Property {
			case Translation:
				pose.t = math.TranslateVec(math.Vec3FromSlice(c.Keyframes.Interpolate(time, 3)))
			case Rotation:
				pose.r = math.QuatFromSlice(c.Keyframes.Interpolate(time, 4)).ToMat4()
			case Scale:
				pose.s = math.ScaleVec(math.Vec3FromSlice(c.Keyframes.Interpolate(time, 3)))
			default:
				a.warnOnce(ai, ci, "animation property not supported", zap.Stringer("property", c.Property))
				continue
			}
			pose.animated = true
		}
	}

	out := make([]math.Mat4, len(s.Joints))
	for i, p := range poses {
		if !p.animated {
			out[i] = math.Identity()
			continue
		}
		out[i] = p.t.Mul(p.r).Mul(p.s)
	}
	return out
}

func (a *Animations) warnOnce(animation, channel int, msg string, fields ...zap.Field) {
	key := channelKey{animation, channel}
	if a.warned[key] {
		return
	}
	a.warned[key] = true

	fields = append(fields,
		zap.Int("animation", animation),
		zap.String("name", a.animations[animation].Name),
		zap.Int("channel", channel),
	)
	a.log.Warn(msg+", skipping", fields...)
}
