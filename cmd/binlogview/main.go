// Command binlogview prints the events of a MySQL binary log file,
// one line per event.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mysqlstream/binlog"
)

func main() {
	var repl bool

	cmd := &cobra.Command{
		Use:   "binlogview FILE...",
		Short: "print the events of MySQL binary log files",
		Long: `binlogview decodes MySQL binary log files and prints one line per event.

With --repl the input is treated as a raw dump of a live replication
stream, where every event carries one extra leading marker byte.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := view(path, repl); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&repl, "repl", false, "input is a dumped live replication stream (marker-byte headers)")

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))
	if err := cmd.Execute(); err != nil {
		slog.Error("binlogview failed", "error", err)
		os.Exit(1)
	}
}

func view(path string, repl bool) error {
	if repl {
		return viewStream(path)
	}
	f, err := binlog.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for {
		ev, err := f.NextEvent()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		printEvent(ev)
	}
}

// viewStream decodes a raw dump of a live replication session. There
// is no file magic and each event is prefixed with a marker byte, so
// event boundaries are tracked by hand.
func viewStream(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	cur := binlog.NewCursor(f)
	dec := binlog.NewDecoder(binlog.Config{ConnType: binlog.ConnTypeRepl})
	for {
		start, err := cur.Tell()
		if err != nil {
			return err
		}
		ev, err := dec.DecodeEvent(cur)
		switch {
		case err == io.EOF:
			return nil
		case errors.Is(err, binlog.ErrUnsupportedEvent):
			slog.Warn("skipping unsupported event",
				"kind", ev.Header.Kind, "typeCode", ev.Header.TypeCode,
				"length", ev.Header.EventLength)
		case err != nil:
			return err
		}
		printEvent(ev)
		// marker byte + declared event length
		next := start + 1 + int64(ev.Header.EventLength)
		if _, err := f.Seek(next, io.SeekStart); err != nil {
			return err
		}
	}
}

func printEvent(ev binlog.Event) {
	h := ev.Header
	ts := time.Unix(int64(h.Timestamp), 0).UTC().Format(time.RFC3339)
	prefix := fmt.Sprintf("%s server=%d %-9s", ts, h.ServerID, h.Kind)
	switch data := ev.Data.(type) {
	case binlog.QueryEvent:
		fmt.Printf("%s db=%s query=%q\n", prefix, data.Database, data.Command)
	case binlog.XidEvent:
		fmt.Printf("%s xid=%d\n", prefix, data.Xid)
	case binlog.RotateEvent:
		fmt.Printf("%s next=%s\n", prefix, data.NextBinlog)
	case binlog.GtidEvent:
		fmt.Printf("%s gtid=%s:%d lastCommitted=%d seq=%d\n",
			prefix, data.Gtid, data.GnoID, data.LastCommitted, data.SequenceNumber)
		if data.Truncated {
			slog.Warn("gtid event missing trailing sequence fields, defaulted to zero",
				"gtid", data.Gtid.String())
		}
	case binlog.TableMapEvent:
		fmt.Printf("%s table=%s.%s columns=%d\n",
			prefix, data.Database, data.Table, data.ColumnCount)
		for i, col := range data.Columns {
			if col.Type == binlog.TypeUnrecognized {
				slog.Warn("unrecognized column type", "table", data.Table, "column", i)
			}
		}
	default:
		fmt.Printf("%s length=%d\n", prefix, h.EventLength)
	}
}
