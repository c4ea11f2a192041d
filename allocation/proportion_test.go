// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocation

import (
	"math"
	"testing"
)

func TestProportion(t *testing.T) {

	testCases := []struct {
		amount     uint64
		percentage uint64
		expected   uint64
	}{
		{5000, 25, 1250},
		{5000, 33, 1650},
		{5000, 0, 0},
		{0, 50, 0},
		{1, 1, 0},     // rounds down to nothing
		{99, 99, 98},  // floor(98.01)
		{100, 100, 100},
		{101, 50, 50}, // floor(50.5)
		{math.MaxUint64, 100, math.MaxUint64},
		{math.MaxUint64, 50, math.MaxUint64 / 2},
		{math.MaxUint64, 1, math.MaxUint64 / 100},
	}

	for i, testCase := range testCases {
		actual := proportion(testCase.amount, testCase.percentage)
		if testCase.expected != actual {
			t.Errorf("%d: proportion(%d, %d) = %d  expected: %d",
				i, testCase.amount, testCase.percentage, actual, testCase.expected)
		}
	}
}
