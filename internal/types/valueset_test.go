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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullSet(t *testing.T) {
	assert.Equal(t, ValueSet(0b1), FullSet(1))
	assert.Equal(t, ValueSet(0b11111), FullSet(5))
	assert.Equal(t, 16, FullSet(16).PopCount())
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, ValueSet(0).PopCount())
	assert.Equal(t, 3, ValueSet(0b10101).PopCount())
}

func TestLsbPopLsb(t *testing.T) {
	vs := ValueSet(0b10100)
	assert.Equal(t, 2, vs.Lsb())
	assert.Equal(t, 2, vs.PopLsb())
	assert.Equal(t, 4, vs.PopLsb())
	assert.Equal(t, ValueSet(0), vs)
	assert.Equal(t, 32, vs.Lsb())
}

func TestAddRemoveHas(t *testing.T) {
	var vs ValueSet
	vs.Add(0)
	vs.Add(4)
	assert.True(t, vs.Has(0))
	assert.True(t, vs.Has(4))
	assert.False(t, vs.Has(1))
	vs.Remove(0)
	assert.False(t, vs.Has(0))
	// removing a clear bit is a no-op
	vs.Remove(0)
	assert.Equal(t, ValueSet(0b10000), vs)
}

func TestValues(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, ValueSet(0b10101).Values())
	assert.Empty(t, ValueSet(0).Values())
}

func TestStrGrp(t *testing.T) {
	assert.Equal(t, "1010 (5)", ValueSet(0b0101).StrGrp(4))
}

var result int

func BenchmarkPopCount(b *testing.B) {
	tmp := 0
	for i := 0; i < b.N; i++ {
		tmp += ValueSet(i).PopCount()
	}
	result = tmp
}

func BenchmarkPopLsb(b *testing.B) {
	tmp := 0
	for i := 0; i < b.N; i++ {
		vs := ValueSet(i | 1)
		tmp += vs.PopLsb()
	}
	result = tmp
}
