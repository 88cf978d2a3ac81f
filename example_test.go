// Copyright 2020 Aleksandr Demakin. All rights reserved.

package arbfloat

import (
	"fmt"
)

func ExampleFormat_Decode() {
	fmt.Println(Binary32.Decode(0x80000000)) // -0.0
	fmt.Println(Binary32.Decode(0x7F800000)) // +infinity
	fmt.Println(Binary32.Decode(0x7FC00000)) // quiet NaN
	fmt.Println(Binary32.Decode(0x3F800000)) // 1.0
	fmt.Println(Binary64.Decode(0x3FF0000000000000))

	// Output:
	// -0
	// +Inf
	// NaN
	// 1*2^0
	// 1*2^0
}

func ExampleNew() {
	// a toy 3-bit format: one sign bit, one exponent bit, one fraction bit.
	binary3 := MustNew(1, 1)
	for raw := uint64(0); raw < 8; raw++ {
		fmt.Println(binary3.Decode(raw))
	}

	// Output:
	// 0
	// 1*2^0
	// +Inf
	// NaN
	// -0
	// -1*2^0
	// -Inf
	// NaN
}

func ExampleDecodeFloat64() {
	d := DecodeFloat64(1.5)
	r, _ := d.Rat()
	fmt.Printf("%s = %s, kind %s, negative %v\n", d, r.RatString(), d.Kind(), d.Neg())

	// Output:
	// 3*2^-1 = 3/2, kind regular, negative false
}
