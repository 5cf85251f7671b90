// Package dynarray provides a growable, index-addressable sequence over a
// comparable element type.
//
//   - [Array]: the dynamic array itself
//   - [Observer]: receives capacity growth notifications
//   - [Iterator]: stateful forward iterator over the live elements
//
// # Growth
//
// Storage doubles as soon as an append fills the last free slot, so an
// append never fails for lack of room and Len is always below Cap after an
// append. Capacity never shrinks.
//
// # Element Types
//
// Search and removal use ==. For interface element types such as any, the
// dynamic values must themselves be comparable; comparing two interfaces
// that hold slices, maps or funcs panics at run time. The zero Array is
// ready to use and allocates on its first Add.
//
// # Example
//
//	arr := dynarray.New[string]()
//	_ = arr.Add("x")
//	_ = arr.Add("y")
//	i, _ := arr.IndexOf("y") // 1
//	for v := range arr.All() {
//		fmt.Println(v)
//	}
//
// # Thread Safety
//
// Array instances are NOT thread-safe. Callers sharing an Array between
// goroutines must synchronize access themselves.
package dynarray
