package carrays_test

import (
	"errors"
	"fmt"

	"github.com/underworld/carrays-go/pkg/carrays"
)

func ExampleNewDoubleArray() {
	arr, err := carrays.NewDoubleArray(5)
	if err != nil {
		panic(err)
	}
	defer arr.Close()

	_ = arr.Set(0, 3.14)
	_ = arr.Set(1, 2.71)

	for i := range 3 {
		v, _ := arr.Get(i)
		fmt.Println(v)
	}
	// Output:
	// 3.14
	// 2.71
	// 0
}

func ExampleArray_Get_outOfRange() {
	arr, err := carrays.NewUnsignedArray(3)
	if err != nil {
		panic(err)
	}
	defer arr.Close()

	_, err = arr.Get(3)
	fmt.Println(err)
	fmt.Println(errors.Is(err, carrays.ErrIndexOutOfRange))
	// Output:
	// carrays: index 3 out of range [0, 3)
	// true
}

func ExampleArray_Raw() {
	arr, err := carrays.NewIntArray(0)
	if err != nil {
		panic(err)
	}
	defer arr.Close()

	view, err := arr.Raw()
	if err != nil {
		panic(err)
	}
	fmt.Println(view.Pointer() == nil, view.Len())
	// Output:
	// true 0
}
