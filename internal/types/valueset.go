//
// Sudodle - Latin square puzzle engine in GO
//
// MIT License
//
// Copyright (c) 2025 Zulko
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// ValueSet is a bitmask over bit positions 0..N-1. Depending on
// context a bit stands for a value (bit v-1 set iff value v is in the
// set) or for a row/column index (bit j set iff position j is still
// possible). 32 bits is plenty for the MaxSize of 16.
type ValueSet uint32

// FullSet returns a ValueSet with bits 0..n-1 set.
func FullSet(n int) ValueSet {
	return ValueSet(1)<<n - 1
}

// PopCount returns the number of set bits.
func (vs ValueSet) PopCount() int {
	return bits.OnesCount32(uint32(vs))
}

// Lsb returns the index of the least significant set bit.
// Returns 32 if the set is empty.
func (vs ValueSet) Lsb() int {
	return bits.TrailingZeros32(uint32(vs))
}

// PopLsb returns the index of the least significant set bit and
// removes it from the set. The given set is changed directly.
// Returns 32 if the set is empty.
func (vs *ValueSet) PopLsb() int {
	lsb := vs.Lsb()
	*vs &= *vs - 1
	return lsb
}

// Has reports whether bit i is set.
func (vs ValueSet) Has(i int) bool {
	return vs&(ValueSet(1)<<i) != 0
}

// Add sets bit i. The given set is changed directly.
func (vs *ValueSet) Add(i int) {
	*vs |= ValueSet(1) << i
}

// Remove clears bit i. The given set is changed directly.
func (vs *ValueSet) Remove(i int) {
	*vs &^= ValueSet(1) << i
}

// Values returns the 1-indexed values of all set bits in ascending
// order (bit 0 -> value 1).
func (vs ValueSet) Values() []int {
	values := make([]int, 0, vs.PopCount())
	m := vs
	for m != 0 {
		values = append(values, m.PopLsb()+1)
	}
	return values
}

// StrGrp returns a string representation of the n lowest bits in
// LSB-to-MSB order followed by the numerical value. Used for debug
// logging of constraint masks.
func (vs ValueSet) StrGrp(n int) string {
	var os strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && i%4 == 0 {
			os.WriteString(".")
		}
		if vs.Has(i) {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", vs))
	return os.String()
}
