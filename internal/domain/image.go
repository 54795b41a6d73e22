package domain

import (
	"context"
	"io"
)

// MaxImageSize is the largest accepted event image payload (10 MB).
const MaxImageSize = 10 << 20

// ImageStore uploads an image payload and returns a publicly resolvable URL.
// Upload failures abort event creation; there are no retries.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (url string, err error)
}
