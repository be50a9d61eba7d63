package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agenthands/wordscan/pkg/harness"
	"github.com/agenthands/wordscan/pkg/scan"
)

func main() {
	// glog complains on every message unless its flags look parsed.
	_ = flag.CommandLine.Parse([]string{})
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}

	rootCmd := &cobra.Command{
		Use:  "wordscan",
		Long: "wordscan splits input into whitespace-delimited tokens using interchangeable scanning strategies",
	}
	rootCmd.AddCommand(
		newTokensCommand(),
		newSumCommand(),
		newBenchCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		glog.Fatalf("error running command: %v", err)
	}
}

func newTokensCommand() *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print one token per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := scan.ParseKind(strategy)
			if err != nil {
				return err
			}
			r, err := openInput(args)
			if err != nil {
				return err
			}
			toks, err := harness.Tokens(k, r)
			if err != nil {
				return err
			}
			for _, tok := range toks {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", scan.KindLookahead.String(), "scanning strategy: "+strategyList())
	return cmd
}

func newSumCommand() *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "sum [file]",
		Short: "Sum all integer tokens in the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := scan.ParseKind(strategy)
			if err != nil {
				return err
			}
			r, err := openInput(args)
			if err != nil {
				return err
			}
			s := scan.New(k, scan.NewSource(r))
			defer s.Close()

			total := 0
			for s.HasNext() {
				n, err := s.NextInt()
				if err != nil {
					return err
				}
				total += n
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", scan.KindLookahead.String(), "scanning strategy: "+strategyList())
	return cmd
}

func newBenchCommand() *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Time every strategy over the same input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			open := func() (io.Reader, error) {
				return os.Open(path)
			}
			if err := harness.Agree(open); err != nil {
				glog.Warningf("strategies disagree on this input: %v", err)
			}
			var last []harness.Result
			for i := 0; i < runs; i++ {
				results, err := harness.RunAll(open)
				if err != nil {
					return errors.Wrapf(err, "run %d", i+1)
				}
				last = results
			}
			harness.WriteReport(cmd.OutOrStdout(), last)
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 1, "number of timed runs; the last one is reported")
	return cmd
}

// openInput returns the named file, or stdin when no argument is given.
// The scanner's Close releases it.
func openInput(args []string) (io.Reader, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", args[0])
	}
	return f, nil
}

func strategyList() string {
	out := ""
	for i, k := range scan.Kinds() {
		if i > 0 {
			out += ", "
		}
		out += k.String()
	}
	return out
}
