package bitvec_test

import (
	"fmt"

	"github.com/hupe1980/bitvec"
)

func ExampleBitmap() {
	// One bit per slot in a 16-slot span; the atomic strategy makes the
	// bitmap safe to share across goroutines without a lock.
	occupancy, err := bitvec.New[bitvec.Atomic](16)
	if err != nil {
		panic(err)
	}
	defer occupancy.Close()

	// Allocate three slots.
	fmt.Println(occupancy.SetFirstEmpty(0))
	fmt.Println(occupancy.SetFirstEmpty(0))
	fmt.Println(occupancy.TryToSet(5))

	// Free the second slot again.
	occupancy.Unset(1)

	fmt.Println(occupancy.String())
	fmt.Println(occupancy.InUseCount())
	// Output:
	// 0
	// 1
	// true
	// 1000010000000000
	// 2
}

func ExampleBitmap_SetBits() {
	occupancy, err := bitvec.FromBitString[bitvec.Relaxed]("0110001")
	if err != nil {
		panic(err)
	}
	defer occupancy.Close()

	for idx := range occupancy.SetBits() {
		fmt.Println(idx)
	}
	// Output:
	// 1
	// 2
	// 6
}
