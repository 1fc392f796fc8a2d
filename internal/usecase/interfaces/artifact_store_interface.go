package interfaces

import "context"

// IArtifactStore abstracts the external media service holding proof photos
// and signatures. The core never stores bytes, only the opaque reference the
// service hands back.
type IArtifactStore interface {
	Store(ctx context.Context, kind string, filename string, data []byte) (reference string, err error)
}
