// SPDX-License-Identifier: MIT

package survey

import (
	"fmt"

	"github.com/katalvlaran/primegraph/builder"
)

// minFamilyOrder is the smallest n for which the family is non-empty.
const minFamilyOrder = 4

// TriangleFreeRegularFamily returns the complements TFRG_n_k_c for
// n in [nMin, nMax] and k in [max(1,(n+2)/6), n-2], in (n, k) order.
func TriangleFreeRegularFamily(nMin, nMax int) ([]Candidate, error) {
	if nMin < minFamilyOrder || nMax < nMin {
		return nil, fmt.Errorf("%w: [%d,%d], need %d ≤ nMin ≤ nMax", ErrBadRange, nMin, nMax, minFamilyOrder)
	}
	var out []Candidate
	for n := nMin; n <= nMax; n++ {
		for k := max(1, (n+2)/6); k <= n-2; k++ {
			g, err := builder.Build(builder.TriangleFreeRegularComplement(n, k))
			if err != nil {
				return nil, fmt.Errorf("survey: %s: %w", builder.Name(n, k, true), err)
			}
			out = append(out, Candidate{Name: builder.Name(n, k, true), Graph: g})
		}
	}
	return out, nil
}
