package persona

import "strings"

// PlatformHints is the tokenized form of a raw platform / user-agent string.
// Parsing is deliberately forgiving: anything unrecognized leaves Known false
// and the classifier falls back to behavior-only scoring.
type PlatformHints struct {
	Known bool

	// Form factor
	Desktop bool
	Mobile  bool
	Tablet  bool

	// Operating system
	Windows bool
	MacOS   bool
	Linux   bool
	IOS     bool
	Android bool

	// Browser family
	Chrome  bool
	Edge    bool
	Firefox bool
	Safari  bool
}

// ParsePlatform tokenizes a raw platform string into hints. It never fails;
// empty or garbage input yields the zero value.
func ParsePlatform(raw string) PlatformHints {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return PlatformHints{}
	}

	var h PlatformHints

	// OS / form factor
	switch {
	case strings.Contains(s, "ipad"):
		h.IOS, h.Tablet = true, true
	case strings.Contains(s, "iphone") || strings.Contains(s, "ipod"):
		h.IOS, h.Mobile = true, true
	case strings.Contains(s, "android"):
		h.Android = true
		if strings.Contains(s, "mobile") {
			h.Mobile = true
		} else {
			h.Tablet = true
		}
	case strings.Contains(s, "windows"):
		h.Windows, h.Desktop = true, true
	case strings.Contains(s, "macintosh") || strings.Contains(s, "mac os"):
		h.MacOS, h.Desktop = true, true
	case strings.Contains(s, "cros") || strings.Contains(s, "linux"):
		h.Linux, h.Desktop = true, true
	}

	// Browser family. Order matters: Edge UAs contain "chrome", and both
	// contain "safari".
	switch {
	case strings.Contains(s, "edg/") || strings.Contains(s, "edge"):
		h.Edge = true
	case strings.Contains(s, "firefox"):
		h.Firefox = true
	case strings.Contains(s, "chrome") || strings.Contains(s, "crios"):
		h.Chrome = true
	case strings.Contains(s, "safari"):
		h.Safari = true
	}

	h.Known = h.Desktop || h.Mobile || h.Tablet ||
		h.Chrome || h.Edge || h.Firefox || h.Safari
	return h
}
