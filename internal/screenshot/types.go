// Package screenshot captures page evidence for UI validation runs.
// Every request yields exactly one artifact: a real browser screenshot
// when a browser is reachable, a rendered placeholder image when it is
// not, and a plain-text error log when even rendering fails. Each
// artifact is paired with a JSON metadata sidecar.
package screenshot

// Kind identifies which tier produced an artifact.
type Kind string

const (
	KindReal        Kind = "real"
	KindPlaceholder Kind = "placeholder"
	KindErrorLog    Kind = "error-log"
)

// Request describes one screenshot to take.
type Request struct {
	URL         string
	Name        string
	Description string
	Width       int
	Height      int
}

// Artifact points at the files written for one request.
type Artifact struct {
	Path        string
	SidecarPath string
	Kind        Kind
	Reason      string
}

// Metadata is the sidecar record written next to every artifact.
type Metadata struct {
	Filename    string     `json:"filename"`
	Timestamp   string     `json:"timestamp"`
	Description string     `json:"description"`
	Type        Kind       `json:"type"`
	Reason      string     `json:"reason,omitempty"`
	URL         string     `json:"url"`
	Title       string     `json:"title,omitempty"`
	WindowSize  Dimensions `json:"window_size"`
}

// Dimensions is a window size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
