package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/booklend/seed"
)

/* validate-seed - checks a catalog seed file before the catalog is started with it
 * Usage: go run cmd/validate-seed/main.go [seed.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	seedFile := "seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	fmt.Printf("Validating seed file: %s\n", seedFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	books := loader.Books()
	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d book(s):\n", len(books))
	stock := 0
	for _, b := range books {
		fmt.Printf("  %s\n", b)
		stock += b.Stock
	}
	fmt.Printf("\n%d copies on the shelf.\n", stock)
}
