//go:build !cgo || !golp
// +build !cgo !golp

package lp

import "errors"

// Stub used when the build has no CGO or lacks the golp tag. SolveStrict
// surfaces the error as an "lp_check unavailable" warning upstream.

func newGolpProgram(numVars int) (lpProgram, error) {
	return nil, errors.New("golp solver requires CGO and the golp build tag")
}
