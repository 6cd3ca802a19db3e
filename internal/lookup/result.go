// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"fmt"

	"github.com/pdiddy/pubmed-lookup/pkg/types"
)

// Status is the kind of outcome a lookup ended in.
type Status int

const (
	// StatusFound means Summary is populated.
	StatusFound Status = iota
	// StatusNotFound means the search matched nothing.
	StatusNotFound
	// StatusFailed means a call or the extraction failed; Err holds why.
	StatusFailed
	// StatusInvalid means the title was rejected before any call.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	case StatusInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one lookup. Summary is set only when Status is
// StatusFound; Err is set for every other status.
type Result struct {
	Status  Status
	Title   string
	Summary types.ArticleSummary
	Err     error
}

// OK reports whether the lookup produced a summary.
func (r Result) OK() bool { return r.Status == StatusFound }

// Message returns text suitable for showing to the user.
func (r Result) Message() string {
	switch r.Status {
	case StatusFound:
		return "Article found."
	case StatusNotFound:
		return fmt.Sprintf("No article matched %q. Check that the title is correct.", r.Title)
	case StatusInvalid:
		return "Please enter a valid article title."
	default:
		return fmt.Sprintf("An error occurred: %v", r.Err)
	}
}
