// Command radixsort sorts the numbers in an input file with a linked-list
// radix sort and prints them in ascending order.
//
// The first token of the input is the radix (10 or 16), every following
// whitespace-delimited token is a number in that radix. With -f json the
// input is a document such as {"radix": 16, "items": ["1a", "ff"]}.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/RICE-COMP318-FALL23/radixsort-cll/config"
	"github.com/RICE-COMP318-FALL23/radixsort-cll/jsonschema"
	"github.com/RICE-COMP318-FALL23/radixsort-cll/logging"
	"github.com/RICE-COMP318-FALL23/radixsort-cll/radixsort"
	"github.com/RICE-COMP318-FALL23/radixsort-cll/tokens"
)

func main() {
	configPath := flag.String("c", "", "YAML configuration file")
	inputFormat := flag.String("f", "", "input format: text or json (overrides config)")
	outputFormat := flag.String("o", "", "output format: lines, inline or json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *inputFormat != "" {
		cfg.Input.Format = *inputFormat
	}
	if *outputFormat != "" {
		cfg.Output.Format = *outputFormat
	}

	closer, err := logging.Setup(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, flag.Arg(0), os.Stdout); err != nil {
		slog.Error("radixsort failed", "error", err)
		closer.Close()
		os.Exit(1)
	}
}

// run sorts the input named by path ("" or "-" for stdin) and writes the
// result to out.
func run(cfg *config.Config, path string, out io.Writer) error {
	in := io.Reader(os.Stdin)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	ts, err := openStream(cfg.Input, in)
	if err != nil {
		return err
	}

	sorter := radixsort.New()
	sorter.OnPass = func(pass int, rear *radixsort.Node) {
		slog.Debug("pass", "index", pass, "front", rear.Next().Data, "rear", rear.Data)
	}
	rear, err := sorter.Sort(ts)
	if err != nil {
		return err
	}
	slog.Info("Sorted", "radix", sorter.Radix(), "items", radixsort.Len(rear))
	return writeList(out, cfg.Output.Format, rear)
}

func openStream(cfg config.InputConfig, in io.Reader) (radixsort.TokenStream, error) {
	if cfg.Format != config.FormatJSON {
		return tokens.NewScanner(in), nil
	}

	var (
		sv  jsonschema.SchemaValidator
		err error
	)
	if cfg.Schema != "" {
		sv, err = jsonschema.NewSchemaValidator(cfg.Schema)
	} else {
		sv, err = jsonschema.NewInputValidator()
	}
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return tokens.FromJSON(data, sv)
}

// writeList prints the circular list front to rear. An empty list prints
// nothing, except for the json format which prints an empty array.
func writeList(w io.Writer, format string, rear *radixsort.Node) error {
	values := radixsort.Values(rear)
	switch format {
	case config.OutputJSON:
		if values == nil {
			values = []string{}
		}
		return json.NewEncoder(w).Encode(values)
	case config.OutputInline:
		if len(values) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Join(values, " "))
		return err
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}
