// File: request.go
// Title: Argument Requests
// Description: A Request matches tokenized arguments against descriptions.
//              Named arguments are matched by name, positional arguments by
//              order. Validity is decided by a validator and recorded on
//              the request.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package request

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/gemscli/foundation/cli/argument"
	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/core/validation"
)

// Request holds arguments matched against descriptions
type Request struct {
	id           string
	arguments    []argument.Argument
	descriptions []description.Description
	matches      map[string][]argument.Argument
	unknown      []argument.Argument
	surplus      []argument.Argument
	valid        bool
	failures     []validation.Error
}

// New matches args against descs. The request starts out invalid until a
// validator records a result.
func New(args []argument.Argument, descs []description.Description) *Request {
	r := &Request{
		id:           uuid.NewString(),
		arguments:    append([]argument.Argument(nil), args...),
		descriptions: append([]description.Description(nil), descs...),
		matches:      make(map[string][]argument.Argument),
	}

	positional := make([]description.Description, 0, len(descs))
	for _, d := range descs {
		if d.Role == description.Passed {
			positional = append(positional, d)
		}
	}

	next := 0
	for _, arg := range args {
		if arg.Named() {
			r.matchNamed(arg)
			continue
		}
		if next >= len(positional) {
			r.surplus = append(r.surplus, arg)
			continue
		}
		d := positional[next]
		r.add(d.Name, arg)
		if d.Multiplicity == description.Once {
			next++
		}
	}
	return r
}

func (r *Request) matchNamed(arg argument.Argument) {
	for _, d := range r.descriptions {
		if d.Role == description.Named && d.Matches(arg.Name) {
			r.add(d.Name, arg)
			return
		}
	}
	r.unknown = append(r.unknown, arg)
}

func (r *Request) add(name string, arg argument.Argument) {
	key := strings.ToLower(name)
	r.matches[key] = append(r.matches[key], arg)
}

// ID returns the unique request identifier
func (r *Request) ID() string {
	return r.id
}

// Arguments returns all arguments in the order given
func (r *Request) Arguments() []argument.Argument {
	return append([]argument.Argument(nil), r.arguments...)
}

// Descriptions returns the descriptions the request was matched against
func (r *Request) Descriptions() []description.Description {
	return append([]description.Description(nil), r.descriptions...)
}

// Contains reports whether any argument matched the parameter name
func (r *Request) Contains(name string) bool {
	return r.Count(name) > 0
}

// First returns the first argument matched to the parameter name
func (r *Request) First(name string) (argument.Argument, bool) {
	matched := r.matches[strings.ToLower(name)]
	if len(matched) == 0 {
		return argument.Argument{}, false
	}
	return matched[0], true
}

// All returns every argument matched to the parameter name
func (r *Request) All(name string) []argument.Argument {
	return append([]argument.Argument(nil), r.matches[strings.ToLower(name)]...)
}

// Count returns how many arguments matched the parameter name
func (r *Request) Count(name string) int {
	return len(r.matches[strings.ToLower(name)])
}

// Unknown returns named arguments that match no named parameter
func (r *Request) Unknown() []argument.Argument {
	return append([]argument.Argument(nil), r.unknown...)
}

// Surplus returns positional arguments left over after all positional
// parameters were filled
func (r *Request) Surplus() []argument.Argument {
	return append([]argument.Argument(nil), r.surplus...)
}

// Valid reports the recorded validation outcome
func (r *Request) Valid() bool {
	return r.valid
}

// Failures returns the recorded validation errors
func (r *Request) Failures() []validation.Error {
	return append([]validation.Error(nil), r.failures...)
}

// Record stores a validation result on the request
func (r *Request) Record(result validation.Result) {
	r.valid = result.Valid
	r.failures = append([]validation.Error(nil), result.Errors...)
}

// String returns a short summary of the request
func (r *Request) String() string {
	return fmt.Sprintf("Request{id: %s, arguments: %d, valid: %v, failures: %d}",
		r.id, len(r.arguments), r.valid, len(r.failures))
}
