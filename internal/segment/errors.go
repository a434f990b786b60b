// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import "fmt"

// SegmentationError reports structurally unrecognizable input: a required
// positional segment is missing, or a delimiter the layout grammar relies on
// is absent. The reason names the missing piece so misclassified entries
// stay diagnosable.
type SegmentationError struct {
	Reason string
}

func (e *SegmentationError) Error() string {
	return "segmentation: " + e.Reason
}

func segErr(format string, args ...any) error {
	return &SegmentationError{Reason: fmt.Sprintf(format, args...)}
}

// UnparsableEntryError wraps the underlying segmenter or serial-line failure
// for exactly one raw entry. Callers log the raw text and move on; there is
// no retry and no partial record.
type UnparsableEntryError struct {
	Raw string
	Err error
}

func (e *UnparsableEntryError) Error() string {
	return fmt.Sprintf("unparsable entry: %v", e.Err)
}

func (e *UnparsableEntryError) Unwrap() error {
	return e.Err
}
