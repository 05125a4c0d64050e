package report

// Category is the semantic outcome of classifying a status value. Palettes
// map categories to fill colors; the mapping differs per schema for styling
// reasons while category semantics stay shared.
type Category int

const (
	Unknown Category = iota
	Positive
	Warning
	Negative
	NotApplicable
)

func (c Category) String() string {
	switch c {
	case Positive:
		return "positive"
	case Warning:
		return "warning"
	case Negative:
		return "negative"
	case NotApplicable:
		return "not-applicable"
	default:
		return "unknown"
	}
}

// RGB is a fill or text color in 0-255 components.
type RGB struct {
	R, G, B int
}

// Base palette.
var (
	colorGreen      = RGB{146, 208, 80}  // affirmative fills
	colorDeepGreen  = RGB{0, 176, 80}    // completion green, indicator dots
	colorAmber      = RGB{255, 192, 0}   // warnings, pending work
	colorRed        = RGB{255, 0, 0}     // escalated status
	colorPink       = RGB{255, 192, 203} // soft negative
	colorSoftYellow = RGB{255, 255, 153} // highlights, medium satisfaction
	colorSilver     = RGB{192, 192, 192} // name column, empty status
	colorLightGray  = RGB{217, 217, 217} // muted cells, n/a
	colorDimGray    = RGB{200, 200, 200} // unrecognized audit values
	colorSlate      = RGB{128, 128, 128} // table headers, quality n/a
	colorHeaderGray = RGB{191, 191, 191} // health table header
	colorRose       = RGB{217, 192, 192} // parameter label column
	colorRosyBrown  = RGB{188, 143, 143} // category label column
	colorTan        = RGB{222, 184, 135} // amber-reason cells
)

// Palette maps categories to cell fills for one classifier family.
type Palette map[Category]RGB

// Color resolves a category, falling back to the palette's Unknown fill.
func (p Palette) Color(c Category) RGB {
	if rgb, ok := p[c]; ok {
		return rgb
	}
	return p[Unknown]
}

var (
	sentimentPalette = Palette{
		Positive:      colorGreen,
		Warning:       colorAmber,
		Negative:      colorRed,
		NotApplicable: colorLightGray,
		Unknown:       colorSilver,
	}
	completionPalette = Palette{
		Positive:      colorDeepGreen,
		Warning:       colorAmber,
		NotApplicable: colorSlate,
		Unknown:       colorSlate,
	}
	auditPalette = Palette{
		Positive:      colorGreen,
		Negative:      colorPink,
		NotApplicable: colorLightGray,
		Unknown:       colorDimGray,
	}
	feedbackPalette = Palette{
		Positive:      colorGreen,
		Warning:       colorSoftYellow,
		Negative:      colorPink,
		NotApplicable: colorLightGray,
		Unknown:       colorLightGray,
	}
	indicatorPalette = Palette{
		Positive: colorDeepGreen,
		Warning:  colorAmber,
		Negative: colorRed,
		Unknown:  colorSlate,
	}
)
