package pageops

import (
	"errors"
	"fmt"
)

// Merge joins documents in order: all pages of the first, then all pages of
// the second, and so on.
func Merge(srcs ...[]byte) ([]byte, error) {
	if len(srcs) == 0 {
		return nil, errors.New("pageops: no documents to merge")
	}
	pdf := newDocument()
	for i, src := range srcs {
		if err := importAll(pdf, src, nil); err != nil {
			return nil, fmt.Errorf("pageops: merging document %d: %w", i+1, err)
		}
	}
	return output(pdf, "merge")
}
