package catalog

import "slices"

// WebGL holds the GPU strings a browser exposes through the WebGL debug
// extension. Masked and unmasked values differ: the masked pair is what
// getParameter returns by default, the unmasked pair what
// WEBGL_debug_renderer_info reveals.
type WebGL struct {
	Vendor           string `json:"vendor"`
	Renderer         string `json:"renderer"`
	UnmaskedVendor   string `json:"unmaskedVendor"`
	UnmaskedRenderer string `json:"unmaskedRenderer"`
}

// Screen holds display geometry.
type Screen struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	ColorDepth int     `json:"colorDepth"`
	PixelRatio float64 `json:"pixelRatio"`
}

// Hardware holds the navigator-visible hardware shape.
type Hardware struct {
	CPUCores       int `json:"cpuCores"`
	DeviceMemory   int `json:"deviceMemory"`
	MaxTouchPoints int `json:"maxTouchPoints"`
}

// Template is one recorded browser identity. Templates are immutable after
// catalog load, except Weight which the override engine may rewrite once
// while the catalog is being assembled.
type Template struct {
	ID             string   `json:"id" validate:"required"`
	OS             string   `json:"os" validate:"required"`
	Browser        string   `json:"browser" validate:"required"`
	UserAgent      string   `json:"userAgent" validate:"required"`
	Platform       string   `json:"platform"`
	Vendor         string   `json:"vendor"`
	BrowserVersion string   `json:"browserVersion"`
	MajorVersion   int      `json:"majorVersion"`
	Weight         float64  `json:"weight"`
	OSVersion      string   `json:"osVersion"`
	WebGL          WebGL    `json:"webgl"`
	Screen         Screen   `json:"screen"`
	Hardware       Hardware `json:"hardware"`
	Fonts          []string `json:"fonts"`
}

// Clone returns a deep copy so callers can never mutate catalog state
// through a query result.
func (t *Template) Clone() *Template {
	c := *t
	c.Fonts = slices.Clone(t.Fonts)
	return &c
}

// EffectiveWeight is the weight the sampler uses: the template's own weight
// when positive, otherwise 1.
func (t *Template) EffectiveWeight() float64 {
	if t.Weight > 0 {
		return t.Weight
	}
	return 1
}
