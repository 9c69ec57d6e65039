package types

// Result reports the outcome of processing one source file.
type Result struct {
	Filename     string
	Output       string
	OriginalSize int
	MinifiedSize int
}

// Saved returns the number of bytes removed by processing.
func (r Result) Saved() int {
	return r.OriginalSize - r.MinifiedSize
}
