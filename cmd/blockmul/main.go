// Command blockmul demonstrates block-partitioned matrix multiplication.
//
// Usage:
//
//	blockmul -rows 100 -inner 200 -cols 100 -block 4
//	blockmul -rows 6 -inner 6 -cols 6 -block 2 -min 0 -max 10 -seed 1 -v
//
// It generates two random integer matrices A (rows×inner) and B
// (inner×cols), partitions both with the requested block size, multiplies
// the partitions block-by-block, reassembles the result, and prints it in
// the serialized text form. The blocked result is cross-checked against
// the flat product before printing. Pure orchestration: all the real work
// happens in the matrix package.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/katalvlaran/blockmat/matrix"
)

var (
	rows    = flag.Int("rows", 100, "Row count of matrix A")
	inner   = flag.Int("inner", 200, "Column count of A and row count of B")
	cols    = flag.Int("cols", 100, "Column count of matrix B")
	block   = flag.Int("block", 4, "Maximum block size, applied to both dimensions")
	minVal  = flag.Int64("min", 10, "Inclusive lower bound of generated values")
	maxVal  = flag.Int64("max", 20, "Exclusive upper bound of generated values")
	seed    = flag.Int64("seed", 0, "Seed for the random generator; 0 uses the default source")
	verbose = flag.Bool("v", false, "Also print the block map of the result partition")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockmul: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	a, err := matrix.Random(*rows, *inner, *minVal, *maxVal, rng)
	if err != nil {
		return fmt.Errorf("generate A: %w", err)
	}
	b, err := matrix.Random(*inner, *cols, *minVal, *maxVal, rng)
	if err != nil {
		return fmt.Errorf("generate B: %w", err)
	}

	pa, err := a.Partition(*block, *block)
	if err != nil {
		return fmt.Errorf("partition A: %w", err)
	}
	pb, err := b.Partition(*block, *block)
	if err != nil {
		return fmt.Errorf("partition B: %w", err)
	}

	product, err := matrix.MulPartitions(pa, pb)
	if err != nil {
		return fmt.Errorf("block multiply: %w", err)
	}
	result := product.ToMatrix()

	// Cross-check the blocked result against the flat product.
	flat, err := matrix.Mul(a, b)
	if err != nil {
		return fmt.Errorf("flat multiply: %w", err)
	}
	if result.Serialize() != flat.Serialize() {
		return fmt.Errorf("blocked product disagrees with flat product")
	}

	if *verbose {
		fmt.Println(product)
	}
	fmt.Print(result.Serialize())
	fmt.Println("ok")

	return nil
}
