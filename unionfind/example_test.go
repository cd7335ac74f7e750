package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/unionfind"
)

// ExampleUnionFind shows the size counter shrinking as components merge.
func ExampleUnionFind() {
	u := unionfind.New(4)
	fmt.Println("size:", u.Size())

	_, _ = u.Union(0, 1)
	_, _ = u.Union(2, 3)
	fmt.Println("size:", u.Size())

	same, _ := u.Connected(1, 2)
	fmt.Println("1~2:", same)

	_, _ = u.Union(1, 2)
	same, _ = u.Connected(0, 3)
	fmt.Println("size:", u.Size(), "0~3:", same)

	// Output:
	// size: 4
	// size: 2
	// 1~2: false
	// size: 1 0~3: true
}
