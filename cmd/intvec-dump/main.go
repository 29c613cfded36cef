// intvec-dump loads a serialized intvec.Vector and prints a summary of
// its header fields, optionally followed by its decoded values.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mewkiz/intvec/serialize"
)

var flagValues bool

func init() {
	flag.BoolVar(&flagValues, "values", false, "Also print every decoded value.")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: intvec-dump [OPTION]... FILE...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	for _, path := range flag.Args() {
		if err := dump(path); err != nil {
			log.Fatalln(err)
		}
	}
}

func dump(path string) error {
	vec, err := serialize.LoadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  elements: %d\n", vec.Len())
	fmt.Printf("  sampling period (k): %d\n", vec.K())
	fmt.Printf("  endianness: %s\n", vec.Endianness())
	fmt.Printf("  sample table entries: %d\n", vec.SampleTable().Len())

	rep := vec.MemReport()
	fmt.Printf("  bit buffer: %d bytes\n", rep.BitBufferBytes)
	fmt.Printf("  sample table: %d bytes\n", rep.SampleTableBytes)
	fmt.Printf("  total: %d bytes\n", rep.Total())

	if flagValues {
		fmt.Println("  values:")
		it := vec.Iter()
		for i := uint64(0); ; i++ {
			x, ok := it.Next()
			if !ok {
				break
			}
			fmt.Printf("    [%d]: %d\n", i, x)
		}
	}
	return nil
}
