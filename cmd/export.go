package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
)

// encodeStore returns the export document of a store key.
func encodeStore(key string) ([]byte, error) {
	var buf bytes.Buffer
	switch key {
	case fleetbook.BookKey:
		book, err := fleetbook.LoadBook(DataDir())
		if err != nil {
			return nil, err
		}
		if err := fleetbook.EncodeBook(&buf, book); err != nil {
			return nil, err
		}
	case fleetbook.FinesKey:
		fines, err := fleetbook.LoadFines(DataDir())
		if err != nil {
			return nil, err
		}
		if err := fleetbook.EncodeFines(&buf, fines); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store %q, use %q or %q", key, fleetbook.BookKey, fleetbook.FinesKey)
	}
	return buf.Bytes(), nil
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	store  string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a store as a JSON document" }
func (*exportCmd) Usage() string {
	return `fbk export -s <book|fines> [-o <file>]

  Writes a store as a JSON document, the same shape 'fbk import' accepts.
  Without -o the file is named after the store and the current time.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.store, "s", fleetbook.BookKey, "store to export: book or fines")
	f.StringVar(&c.output, "o", "", "output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermExport); err != nil {
		return fail(err)
	}
	data, err := encodeStore(c.store)
	if err != nil {
		return fail(err)
	}
	name := c.output
	if name == "" {
		name = fleetbook.ExportName(c.store, time.Now())
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %s to %s\n", c.store, name)
	return subcommands.ExitSuccess
}
