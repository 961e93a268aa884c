// Copyright 2020 Aleksandr Demakin. All rights reserved.

package vector

import (
	"fmt"
)

type conn struct {
	name string
}

func (c *conn) Release() {
	fmt.Printf("closing %s\n", c.name)
}

func ExampleVector() {
	v := New(2, 7)
	for i := 0; i < 3; i++ {
		v.Push(i)
	}
	fmt.Printf("len = %d, cap = %d, data = %v\n", v.Len(), v.Cap(), v.Data())

	c := v.Clone()
	c.Set(0, -1)
	fmt.Printf("original = %v, copy = %v\n", v.Data(), c.Data())

	moved := Take(v)
	fmt.Printf("moved = %v, source len = %d, cap = %d\n", moved.Data(), v.Len(), v.Cap())

	// Output:
	// len = 5, cap = 5, data = [7 7 0 1 2]
	// original = [7 7 0 1 2], copy = [-1 7 0 1 2]
	// moved = [7 7 0 1 2], source len = 0, cap = 0
}

func ExampleReleaser() {
	var v Vector[conn]
	v.Push(conn{name: "a"})
	v.Push(conn{name: "b"})
	v.Reserve(16)
	v.Pop()
	v.Free()

	// Output:
	// closing b
	// closing a
}
