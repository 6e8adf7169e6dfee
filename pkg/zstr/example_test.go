package zstr_test

import (
	"fmt"

	"github.com/ssungk/zstr/pkg/zstr"
)

// The zero value is ready to use; mutators allocate on demand.
func Example() {
	var s zstr.S
	s.Put("Hello World")
	fmt.Println(s.String())

	s.Put("How about some pancakes?")
	s.Catf(" Sure! I'd like %d.", 5)
	fmt.Println(s.String())

	s.Free()
	// Output:
	// Hello World
	// How about some pancakes? Sure! I'd like 5.
}

// Example of pre-reserving capacity to batch several appends into one
// allocation. Growth is exact-fit, so without the reservation every Cat
// would reallocate.
func ExampleS_MakeRoomFor() {
	var s zstr.S
	s.Put("potato")
	s.MakeRoomFor(len(" salad") + len(" with beans"))
	s.Cat(" salad")
	s.Cat(" with beans")
	fmt.Println(s.String())
	// Output: potato salad with beans
}

func ExampleS_Trim() {
	var s zstr.S
	s.Put("--= title =--")
	s.Trim("-= ")
	fmt.Println(s.String())
	// Output: title
}

// Swap adopts a fully-built scratch string without copying bytes.
func ExampleS_Swap() {
	var result, scratch zstr.S
	result.Put("partial")
	scratch.Put("complete")

	result.Swap(&scratch)
	fmt.Println(result.String())
	// Output: complete
}

// Example of writing into the storage directly after reserving capacity.
// The caller terminates and sets the length itself.
func ExampleS_PokeLen() {
	var s zstr.S
	s.EnsureCap(8)
	raw := s.Raw()
	n := copy(raw, "horchata")
	raw[n] = 0
	s.PokeLen(n)
	fmt.Println(s.String(), s.Len())
	// Output: horchata 8
}
