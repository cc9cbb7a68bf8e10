package model

// Path represents a file system path.
type Path string

// Case is a reusable run input loaded from a YAML file.
type Case struct {
	Algorithm AlgorithmID `yaml:"algorithm"`
	Array     []int       `yaml:"array"`
	Target    *int        `yaml:"target,omitempty"`
	Start     int         `yaml:"start,omitempty"`
	Graph     Graph       `yaml:"graph,omitempty"`
}

// RunInput is everything a step source factory needs to build one run.
type RunInput struct {
	Algorithm AlgorithmID
	Array     []int
	Target    *int

	// Graph and Start are used by graph traversals only.
	Graph Graph
	Start int

	// Source and Kind are used by the interpreted step source only.
	Source string
	Kind   Kind
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
