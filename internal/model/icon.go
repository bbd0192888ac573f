package model

// SourceKind tags the active IconSource variant.
type SourceKind string

var (
	SourceStatic SourceKind = "static"
	SourceRemote SourceKind = "remote"
	SourceNone   SourceKind = "none"
)

// ImageRef points at a bundled icon. Inline assets have only a Name; bundled image
// files also carry the path they are served from and still need an image fetch.
type ImageRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// IconSource is a tagged union: Ref is set only for static, URL only for remote.
type IconSource struct {
	Kind SourceKind `json:"kind"`
	Ref  *ImageRef  `json:"ref,omitempty"`
	URL  string     `json:"url,omitempty"`
}

func StaticSource(ref ImageRef) IconSource {
	return IconSource{Kind: SourceStatic, Ref: &ref}
}

func RemoteSource(url string) IconSource {
	return IconSource{Kind: SourceRemote, URL: url}
}

func NoneSource() IconSource {
	return IconSource{Kind: SourceNone}
}

// Identity names the image target. Two sources with the same identity render the same image.
func (s IconSource) Identity() string {
	switch s.Kind {
	case SourceStatic:
		if s.Ref == nil {
			return "static:"
		}
		return "static:" + s.Ref.Name + "|" + s.Ref.URL
	case SourceRemote:
		return "remote:" + s.URL
	default:
		return "none"
	}
}

// ImageURL returns the URL the consumer has to load, if any.
func (s IconSource) ImageURL() string {
	switch s.Kind {
	case SourceStatic:
		if s.Ref != nil {
			return s.Ref.URL
		}
	case SourceRemote:
		return s.URL
	}
	return ""
}

// NeedsImageFetch reports whether the consumer must load an image before the icon is displayed.
func (s IconSource) NeedsImageFetch() bool {
	return s.ImageURL() != ""
}
