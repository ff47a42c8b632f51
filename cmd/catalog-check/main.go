// catalog-check samples a reward catalog and prints observed vs expected
// frequencies, for verifying edited catalog files before deploy.
//
//	catalog-check [-n 1000000] [-seed 1] [catalog.json]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/duskforge/ladyluck-server/catalog"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of samples")
	seed := flag.Uint64("seed", 1, "seed for the random source")
	flag.Parse()

	path := ""
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	table, err := catalog.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	src := catalog.NewSeededSource(*seed)
	counts := make(map[string]int)
	for i := 0; i < *n; i++ {
		counts[table.Sample(src).ID]++
	}

	total := table.TotalWeight()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tweight\texpected\tobserved")
	for _, r := range table.Rewards() {
		expected := r.Weight / total
		observed := float64(counts[r.ID]) / float64(*n)
		fmt.Fprintf(w, "%s\t%.2f\t%.6f\t%.6f\n", r.ID, r.Weight, expected, observed)
	}
	w.Flush()
	fmt.Printf("\n%d samples over %d rewards (total weight %.2f)\n", *n, len(table.Rewards()), total)
}
