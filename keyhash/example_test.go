package keyhash_test

import (
	"fmt"

	"github.com/hasbyte1/go-array-utils/keyhash"
)

func ExampleCanonical() {
	fmt.Println(string(keyhash.Canonical("id", 7, map[string]bool{"z": true, "a": false})))
	// Output: [string:"id",int:7,map[string]bool:{"a":false,"z":true}]
}

func ExampleManager_KeyWith() {
	m, _ := keyhash.NewDefaultManager()
	k, _ := m.KeyWith(keyhash.DriverPlain, []int{1, 2})
	fmt.Println(k)
	// Output: [[]int:[1,2]]
}
