package mesh

// DefaultScale maps outline units (pixels of the 2D editor) to scene units.
const DefaultScale = 0.02

// Option configures surface generation.
//
// Example:
//
//	g := mesh.SurfaceOfRevolution(profile, perimeter, 64, 32,
//		mesh.WithScale(0.01),
//		mesh.WithPerimeterScale(0.5),
//	)
type Option func(*options)

type options struct {
	scale          float64
	perimeterScale float64
}

func defaultOptions() options {
	return options{
		scale:          DefaultScale,
		perimeterScale: 1,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScale sets the uniform scale applied to every generated position.
// Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithPerimeterScale sets the factor applied to perimeter coordinates before
// they are multiplied by the profile radius. Use it when the perimeter shape
// is drawn in a different unit than the profile.
func WithPerimeterScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.perimeterScale = s
		}
	}
}
