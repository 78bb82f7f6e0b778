package anosim_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ordstat/anosim"
	"github.com/katalvlaran/ordstat/distmat"
)

// ExampleRun computes the observed R statistic without a permutation test
// (Permutations: 0 leaves the p-value undefined).
func ExampleRun() {
	dm, err := distmat.New([][]float64{
		{0, 1, 5, 4},
		{1, 0, 3, 2},
		{5, 3, 0, 3},
		{4, 2, 3, 0},
	}, []string{"s1", "s2", "s3", "s4"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := anosim.Run(dm, anosim.ByPosition([]string{"Control", "Control", "Fast", "Fast"}),
		&anosim.Options{Permutations: 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%s: n=%d groups=%v R=%.3f\n", res.Method, res.SampleSize, res.Groups, res.R)
	// Output:
	// ANOSIM: n=4 groups=[Control Fast] R=0.625
}

// ExampleNew shows the reusable form: ranks are computed once, then two
// permutation runs of different sizes reuse them. Every random draw comes
// from the explicitly injected source.
func ExampleNew() {
	dm, err := distmat.New([][]float64{
		{0, 1, 5, 4},
		{1, 0, 3, 2},
		{5, 3, 0, 3},
		{4, 2, 3, 0},
	}, []string{"s1", "s2", "s3", "s4"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	a, err := anosim.New(dm, anosim.ByPosition([]string{"Control", "Control", "Fast", "Fast"}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, permutations := range []int{99, 999} {
		res, runErr := a.Run(&anosim.Options{
			Permutations: permutations,
			Rand:         rand.New(rand.NewSource(0)),
		})
		if runErr != nil {
			fmt.Println("error:", runErr)

			return
		}
		fmt.Printf("permutations=%d R=%.3f p in (0,1]: %t\n",
			res.Permutations, res.R, res.PValue > 0 && res.PValue <= 1)
	}
	// Output:
	// permutations=99 R=0.625 p in (0,1]: true
	// permutations=999 R=0.625 p in (0,1]: true
}
