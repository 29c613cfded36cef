// intvec-bench builds an intvec.Vector from a flat list of unsigned
// integers, one per line, and reports how its memory footprint
// compares to an uncompressed baseline and to general-purpose
// compressors, as CSV on stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mewkiz/intvec"
	"github.com/mewkiz/intvec/codec"
	"github.com/mewkiz/intvec/report"
	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
)

var (
	flagCodec = flag.String("codec", "gamma", "Codec to use: gamma, delta, rice:K, expgolomb:K, zeta:K, minimal:U.")
	flagK     = flag.Uint("k", 16, "Sample table period.")
	flagOut   = flag.String("out", "", "Write the CSV report to a file instead of stdout.")
	flagForce = flag.Bool("f", false, "Force overwrite of an existing -out file.")
)

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: intvec-bench [OPTION]... FILE")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if err := bench(flag.Arg(0)); err != nil {
		log.Fatalln(err)
	}
}

func bench(path string) error {
	values, err := readValues(path)
	if err != nil {
		return err
	}

	c, err := parseCodec(*flagCodec)
	if err != nil {
		return err
	}

	vec, err := intvec.Build(values, uint32(*flagK), c, intvec.BigEndian)
	if err != nil {
		return err
	}

	rep, err := report.Compare(vec, values)
	if err != nil {
		return err
	}

	if *flagOut == "" {
		return rep.WriteCSV(os.Stdout)
	}
	csvPath := pathutil.TrimExt(*flagOut) + ".csv"
	if !*flagForce && osutil.Exists(csvPath) {
		return errors.Errorf("report file %q already present; use -f flag to force overwrite", csvPath)
	}
	out, err := os.Create(csvPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer out.Close()
	return rep.WriteCSV(out)
}

func readValues(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []uint64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", line, err)
		}
		values = append(values, v)
	}
	return values, sc.Err()
}

func parseCodec(spec string) (codec.Codec, error) {
	name, param := spec, uint64(0)
	for i, r := range spec {
		if r == ':' {
			name = spec[:i]
			v, err := strconv.ParseUint(spec[i+1:], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse codec parameter in %q: %w", spec, err)
			}
			param = v
			break
		}
	}

	switch name {
	case "gamma":
		return codec.Gamma{}, nil
	case "delta":
		return codec.Delta{}, nil
	case "rice":
		return codec.Rice{K: uint(param)}, nil
	case "expgolomb":
		return codec.ExpGolomb{K: uint(param)}, nil
	case "zeta":
		return codec.Zeta{K: uint(param)}, nil
	case "minimal":
		return codec.MinimalBinary{U: param}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
