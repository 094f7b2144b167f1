package chain_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-array-utils/chain"
)

func ExampleNew() {
	c := chain.New(1, 2, 3, 4, 5)
	fmt.Println(c.Count(), c.Reduce(func(acc, n, _ int, _ []int) int { return acc + n }, 0))
	// Output: 5 15
}

func ExampleChain_Filter() {
	result := chain.New(1, 2, 3, 4, 5, 6).
		Filter(func(n, _ int, _ []int) bool { return n%2 == 0 }).
		ToArray()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleChain_Sort() {
	fmt.Println(chain.New(5, 3, 10, 4, 2).Sort().ToArray())
	// Output: [2 3 4 5 10]
}

func ExampleChain_Slice() {
	c := chain.New("a", "b", "c", "d", "e")
	fmt.Println(c.Slice(1, 3).ToArray(), c.Slice(-2).ToArray())
	// Output: [b c] [d e]
}

func ExampleChain_Value() {
	_, err := chain.New(1, 2, 3).Take(-1).Reverse().Value()
	fmt.Println(errors.Is(err, chain.ErrInvalidArgument))
	// Output: true
}

func ExampleChain_Stats() {
	s, err := chain.New(2, 4, 4, 4, 5, 5, 7, 9).Stats()
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Sum, s.Min, s.Max, s.Mode)
	// Output: 40 2 9 [4]
}

func ExampleRangeInt() {
	c, _ := chain.RangeInt(10, 0, -3)
	fmt.Println(c.Join(", "))
	// Output: 10, 7, 4, 1
}

func ExampleMap() {
	labels := chain.Map(chain.New(1, 2, 3), func(n, _ int, _ []int) string {
		return "#" + strconv.Itoa(n)
	})
	fmt.Println(labels.ToArray())
	// Output: [#1 #2 #3]
}

func ExampleGroupBy() {
	groups := chain.GroupBy(chain.New("go", "rust", "c", "zig"), func(s string) int { return len(s) })
	for k, v := range groups.All() {
		fmt.Println(k, v)
	}
	// Output:
	// 2 [go]
	// 4 [rust]
	// 1 [c]
	// 3 [zig]
}
