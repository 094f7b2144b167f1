package arr_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"

	"github.com/hasbyte1/go-array-utils/arr"
)

// The cases below check arr against samber/lo, whose behaviour for these
// operations is the same ordering and duplicate handling arr promises.

var oracleInputs = map[string][]int{
	"empty":      {},
	"single":     {7},
	"sorted":     {1, 2, 3, 4, 5, 6, 7, 8, 9},
	"duplicates": {3, 1, 3, 2, 1, 3, 5, 5, 0},
	"negatives":  {-4, 8, -4, 0, 15, -16, 23, 42, 0},
}

func TestOracleTransform(t *testing.T) {
	double := func(n int) int { return n * 2 }
	odd := func(n int) bool { return n%2 != 0 }

	for name, in := range oracleInputs {
		t.Run(name, func(t *testing.T) {
			got := arr.Map(in, func(n, _ int, _ []int) int { return double(n) })
			want := lo.Map(in, func(n, _ int) int { return double(n) })
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Map mismatch (-lo +arr):\n%s", diff)
			}

			got = arr.Filter(in, func(n, _ int, _ []int) bool { return odd(n) })
			want = lo.Filter(in, func(n, _ int) bool { return odd(n) })
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Filter mismatch (-lo +arr):\n%s", diff)
			}

			got = arr.Reject(in, func(n, _ int, _ []int) bool { return odd(n) })
			want = lo.Reject(in, func(n, _ int) bool { return odd(n) })
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Reject mismatch (-lo +arr):\n%s", diff)
			}

			sum := arr.Reduce(in, func(acc, n, _ int, _ []int) int { return acc + n }, 0)
			if want := lo.Sum(in); sum != want {
				t.Errorf("Reduce sum: got %d want %d", sum, want)
			}

			labels := arr.FlatMap(in, func(n, _ int, _ []int) []string { return []string{strconv.Itoa(n), "|"} })
			wantLabels := lo.FlatMap(in, func(n, _ int) []string { return []string{strconv.Itoa(n), "|"} })
			if diff := cmp.Diff(wantLabels, labels, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("FlatMap mismatch (-lo +arr):\n%s", diff)
			}
		})
	}
}

func TestOracleSearch(t *testing.T) {
	gtTwo := func(n int) bool { return n > 2 }

	for name, in := range oracleInputs {
		t.Run(name, func(t *testing.T) {
			_, wantIdx, _ := lo.FindIndexOf(in, gtTwo)
			if got := arr.FindIndex(in, func(n, _ int, _ []int) bool { return gtTwo(n) }); got != wantIdx {
				t.Errorf("FindIndex: got %d want %d", got, wantIdx)
			}
			_, wantLast, _ := lo.FindLastIndexOf(in, gtTwo)
			if got := arr.FindLastIndex(in, func(n, _ int, _ []int) bool { return gtTwo(n) }); got != wantLast {
				t.Errorf("FindLastIndex: got %d want %d", got, wantLast)
			}
			if got, want := arr.Some(in, func(n, _ int, _ []int) bool { return gtTwo(n) }), lo.SomeBy(in, gtTwo); got != want {
				t.Errorf("Some: got %v want %v", got, want)
			}
			if got, want := arr.Every(in, func(n, _ int, _ []int) bool { return gtTwo(n) }), lo.EveryBy(in, gtTwo); got != want {
				t.Errorf("Every: got %v want %v", got, want)
			}
		})
	}
}

func TestOracleSets(t *testing.T) {
	other := []int{5, 3, 3, 11, -4}

	for name, in := range oracleInputs {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(lo.Uniq(in), arr.Unique(in), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Unique mismatch (-lo +arr):\n%s", diff)
			}

			parity := func(n int) int { return n % 2 }
			if diff := cmp.Diff(lo.UniqBy(in, parity), arr.UniqueBy(in, parity), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("UniqueBy mismatch (-lo +arr):\n%s", diff)
			}

			left, _ := lo.Difference(in, other)
			if diff := cmp.Diff(left, arr.Difference(in, other), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Difference mismatch (-lo +arr):\n%s", diff)
			}

			if diff := cmp.Diff(lo.Union(in, other), arr.Union(in, other), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Union mismatch (-lo +arr):\n%s", diff)
			}

			// lo.Intersect follows the order of its second argument, so
			// compare as sets.
			sorted := cmpopts.SortSlices(func(a, b int) bool { return a < b })
			want := lo.Uniq(lo.Intersect(other, in))
			if diff := cmp.Diff(want, arr.Intersection(in, other), cmpopts.EquateEmpty(), sorted); diff != "" {
				t.Errorf("Intersection mismatch (-lo +arr):\n%s", diff)
			}
		})
	}
}

func TestOracleRestructure(t *testing.T) {
	for name, in := range oracleInputs {
		t.Run(name, func(t *testing.T) {
			for _, size := range []int{1, 2, 4, 10} {
				got, err := arr.Chunk(in, size)
				if err != nil {
					t.Fatalf("Chunk(%d): %v", size, err)
				}
				if diff := cmp.Diff(lo.Chunk(in, size), got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Chunk(%d) mismatch (-lo +arr):\n%s", size, diff)
				}
			}

			for _, n := range []int{0, 1, 3, 100} {
				got, err := arr.Skip(in, n)
				if err != nil {
					t.Fatalf("Skip(%d): %v", n, err)
				}
				if diff := cmp.Diff(lo.Drop(in, n), got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Skip(%d) mismatch (-lo +arr):\n%s", n, diff)
				}
			}

			chunks := lo.Chunk(in, 3)
			if diff := cmp.Diff(lo.Flatten(chunks), arr.Collapse(chunks), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Collapse mismatch (-lo +arr):\n%s", diff)
			}
		})
	}
}

func TestOracleGrouping(t *testing.T) {
	sign := func(n int) string {
		switch {
		case n < 0:
			return "neg"
		case n == 0:
			return "zero"
		}
		return "pos"
	}

	for name, in := range oracleInputs {
		t.Run(name, func(t *testing.T) {
			got := arr.GroupBy(in, sign).ToMap()
			if diff := cmp.Diff(lo.GroupBy(in, sign), got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("GroupBy mismatch (-lo +arr):\n%s", diff)
			}

			pass, fail := arr.Partition(in, func(n, _ int, _ []int) bool { return n > 0 })
			wantPass := lo.Filter(in, func(n, _ int) bool { return n > 0 })
			wantFail := lo.Reject(in, func(n, _ int) bool { return n > 0 })
			if diff := cmp.Diff(wantPass, pass, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Partition pass mismatch (-lo +arr):\n%s", diff)
			}
			if diff := cmp.Diff(wantFail, fail, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Partition fail mismatch (-lo +arr):\n%s", diff)
			}
		})
	}
}

func TestOracleStats(t *testing.T) {
	for name, in := range oracleInputs {
		if len(in) == 0 {
			continue
		}
		t.Run(name, func(t *testing.T) {
			s := arr.GetStats(in)
			if s.Sum != float64(lo.Sum(in)) {
				t.Errorf("Sum: got %v want %v", s.Sum, lo.Sum(in))
			}
			if s.Min != float64(lo.Min(in)) {
				t.Errorf("Min: got %v want %v", s.Min, lo.Min(in))
			}
			if s.Max != float64(lo.Max(in)) {
				t.Errorf("Max: got %v want %v", s.Max, lo.Max(in))
			}
		})
	}
}
