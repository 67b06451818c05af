package chart

// Options configures band chart rendering. Zero-valued fields are filled
// from DefaultOptions field by field; there is no dynamic option bag.
type Options struct {
	Title      string
	Width      int
	Height     int
	ForceColor bool
	// YUnit annotates the value axis, e.g. "kg" or "cm".
	YUnit string
	// XUnit annotates the independent axis, e.g. "months".
	XUnit string
}

// DefaultOptions returns the named defaults merged into every render.
func DefaultOptions() Options {
	return Options{
		Height: defaultChartHeight,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = autoChartWidth()
	}
	if o.Width < minChartWidth {
		o.Width = minChartWidth
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	return o
}
