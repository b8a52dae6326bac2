package format

import (
	"fmt"
	"strings"
)

// Resolution is a picture size; it parses from and prints as "WxH", so it
// can be used directly as a pflag value.
type Resolution struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

func (r *Resolution) Parse(s string) error {
	var w, h uint32
	if _, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &w, &h); err != nil {
		return fmt.Errorf("unable to parse resolution '%s': %w", s, err)
	}
	if w == 0 || h == 0 {
		return fmt.Errorf("invalid resolution '%s'", s)
	}
	r.Width, r.Height = w, h
	return nil
}

// Set implements pflag.Value.
func (r *Resolution) Set(s string) error {
	return r.Parse(s)
}

// Type implements pflag.Value.
func (r *Resolution) Type() string {
	return "resolution"
}

func (v Video) Resolution() Resolution {
	return Resolution{Width: v.Width, Height: v.Height}
}

func (v *Video) SetResolution(r Resolution) {
	v.Width, v.Height = r.Width, r.Height
}
