package model

type LoadState string

var (
	LoadStateLoading LoadState = "loading"
	LoadStateLoaded  LoadState = "loaded"
	LoadStateFailed  LoadState = "failed"
)

// Terminal reports whether no further image events change the state.
func (s LoadState) Terminal() bool {
	return s == LoadStateLoaded || s == LoadStateFailed
}
