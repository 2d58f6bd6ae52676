// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"math/big"
	"testing"
)

func TestInteger_Unsigned(t *testing.T) {
	tests := map[string]struct {
		i          Integer
		u8, u32    bool
		u64        bool
		want8      uint8
		want32     uint32
		wantUint64 uint64
	}{
		"Empty":     {Integer{}, true, true, true, 0, 0, 0},
		"OneByte":   {Integer{0x03}, true, true, true, 3, 3, 3},
		"TwoBytes":  {Integer{0x01, 0x00}, false, true, true, 0, 256, 256},
		"FourBytes": {Integer{0xff, 0xff, 0xff, 0xff}, false, true, true, 0, 0xffffffff, 0xffffffff},
		"FiveBytes": {Integer{0x01, 0x00, 0x00, 0x00, 0x00}, false, false, true, 0, 0, 1 << 32},
		"NineBytes": {Integer{0x01, 0, 0, 0, 0, 0, 0, 0, 0}, false, false, false, 0, 0, 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got, ok := tc.i.Uint8(); ok != tc.u8 || got != tc.want8 {
				t.Errorf("Uint8() = (%d, %t), want (%d, %t)", got, ok, tc.want8, tc.u8)
			}
			if got, ok := tc.i.Uint32(); ok != tc.u32 || got != tc.want32 {
				t.Errorf("Uint32() = (%d, %t), want (%d, %t)", got, ok, tc.want32, tc.u32)
			}
			if got, ok := tc.i.Uint64(); ok != tc.u64 || got != tc.wantUint64 {
				t.Errorf("Uint64() = (%d, %t), want (%d, %t)", got, ok, tc.wantUint64, tc.u64)
			}
			if len(tc.i.Bytes()) != len(tc.i) {
				t.Errorf("Bytes() returned %d bytes, want %d", len(tc.i.Bytes()), len(tc.i))
			}
		})
	}
}

func TestInteger_Signed(t *testing.T) {
	tests := map[string]struct {
		i    Integer
		want int64
		ok   bool
	}{
		"Empty":    {Integer{}, 0, false},
		"Zero":     {Integer{0x00}, 0, true},
		"Positive": {Integer{0x01, 0x00}, 256, true},
		"MinusOne": {Integer{0xff}, -1, true},
		"Negative": {Integer{0xff, 0x7f}, -129, true},
		"MaxInt64": {Integer{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<63 - 1, true},
		"MinInt64": {Integer{0x80, 0, 0, 0, 0, 0, 0, 0}, -1 << 63, true},
		"TooWide":  {Integer{0x00, 0x80, 0, 0, 0, 0, 0, 0, 0}, 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tc.i.Int64()
			if ok != tc.ok || got != tc.want {
				t.Errorf("Int64() = (%d, %t), want (%d, %t)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestInteger_Big(t *testing.T) {
	tests := map[string]struct {
		i    Integer
		want string
	}{
		"Positive": {Integer{0x00, 0x80, 0, 0, 0, 0, 0, 0, 0}, "9223372036854775808"},
		"Negative": {Integer{0xff, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "-9223372036854775809"},
		"Small":    {Integer{0xff, 0x7f}, "-129"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			want, _ := new(big.Int).SetString(tc.want, 10)
			if got := tc.i.Big(); got.Cmp(want) != 0 {
				t.Errorf("Big() = %s, want %s", got, want)
			}
			if got := tc.i.String(); got != tc.want {
				t.Errorf("String() = %s, want %s", got, tc.want)
			}
		})
	}
	if Integer(nil).Big() != nil {
		t.Errorf("Integer(nil).Big() = %s, want nil", Integer(nil).Big())
	}
}

func TestInteger_IsMinimal(t *testing.T) {
	tests := map[string]struct {
		i    Integer
		want bool
	}{
		"Empty":           {Integer{}, false},
		"Zero":            {Integer{0x00}, true},
		"PositivePadding": {Integer{0x00, 0x80}, true},
		"NonMinimal":      {Integer{0x00, 0x7f}, false},
		"NegativeMinimal": {Integer{0xff, 0x7f}, true},
		"NegativePadding": {Integer{0xff, 0x80}, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.i.IsMinimal(); got != tc.want {
				t.Errorf("IsMinimal() = %t, want %t", got, tc.want)
			}
		})
	}
}
