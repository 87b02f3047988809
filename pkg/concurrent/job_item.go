package concurrent

// DepthJobItem satu gambar input untuk depth stub.
type DepthJobItem struct {
	InputPath  string
	OutputPath string
}

type JobI interface {
	DepthJobItem
}

type JobFunc[T JobI, G any] func(job T) G
