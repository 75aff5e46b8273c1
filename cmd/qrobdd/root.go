package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arnegrid/qrobdd/bdd"
	"github.com/arnegrid/qrobdd/eval"
	"github.com/arnegrid/qrobdd/export"
	"github.com/arnegrid/qrobdd/order"
	"github.com/arnegrid/qrobdd/parser"
)

type rootFlags struct {
	expr       string
	table      bool
	listTrue   bool
	oneModel   bool
	dotBDD     string
	dotParse   string
	orderPath  string
	showOrder  bool
	filter     string
	benchN     int
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "qrobdd [FILE]",
		Short:         "Evaluate quantified propositional formulas with cardinality and fixed-point operators into a canonical ROBDD",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.expr, "expr", "e", "", "inline formula string (mutually exclusive with FILE)")
	cmd.Flags().BoolVarP(&flags.table, "table", "t", false, "emit the truth table on stdout")
	cmd.Flags().BoolVarP(&flags.listTrue, "vars", "v", false, "list variables assigned true in one satisfying model")
	cmd.Flags().BoolVarP(&flags.oneModel, "model", "m", false, "emit one satisfying model")
	cmd.Flags().StringVarP(&flags.dotBDD, "dot", "d", "", "serialize the BDD to PATH in Graphviz dot format (\"-\" for stdout)")
	cmd.Flags().StringVarP(&flags.dotParse, "parsetree", "p", "", "serialize the parse tree to PATH in Graphviz dot format (\"-\" for stdout)")
	cmd.Flags().StringVarP(&flags.orderPath, "ordering", "o", "", "read a custom variable ordering, one name per line")
	cmd.Flags().BoolVarP(&flags.showOrder, "show-ordering", "r", false, "print the derived variable ordering")
	cmd.Flags().StringVarP(&flags.filter, "filter", "f", "any", "truth-table row filter: any|true|false")
	cmd.Flags().IntVarP(&flags.benchN, "bench", "b", 0, "repeat the solve N times for benchmarking")

	cmd.AddCommand(newGenCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	filter, err := export.ParseFilter(flags.filter)
	if err != nil {
		return userError(err)
	}

	src, err := readSource(flags.expr, args)
	if err != nil {
		return userError(err)
	}

	e, err := parser.Parse(src)
	if err != nil {
		reportSyntaxError(src, err)
		return userError(err)
	}

	var ord *order.Ordering
	if flags.orderPath != "" {
		override, err := readOrderingOverride(flags.orderPath)
		if err != nil {
			return userError(err)
		}
		ord = order.Override(e, override)
	} else {
		ord = order.Default(e)
	}

	if flags.showOrder {
		for _, name := range ord.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	}

	if flags.benchN > 0 {
		avg, digest, err := runBenchmark(src, ord, e, flags.benchN)
		if err != nil {
			return internalError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "content-hash=%016x repetitions=%d average=%s\n", digest, flags.benchN, avg)
		return nil
	}

	s, err := bdd.New(ord.Len())
	if err != nil {
		return internalError(err)
	}
	h, err := eval.Eval(s, ord, e)
	if err != nil {
		return userError(err)
	}

	if flags.table {
		if err := export.TruthTable(cmd.OutOrStdout(), s, ord, h, filter); err != nil {
			return internalError(err)
		}
	}

	if flags.listTrue || flags.oneModel {
		m, ok := export.AnyModel(s, ord, h)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "unsatisfiable")
		} else {
			if flags.oneModel {
				if err := export.WriteModel(cmd.OutOrStdout(), ord, m); err != nil {
					return internalError(err)
				}
			}
			if flags.listTrue {
				if err := export.WriteTrueVariables(cmd.OutOrStdout(), ord, m); err != nil {
					return internalError(err)
				}
			}
		}
	}

	if flags.dotBDD != "" {
		if err := writeDot(flags.dotBDD, func(w io.Writer) error { return export.Dot(w, s, ord, h) }); err != nil {
			return internalError(err)
		}
	}

	if flags.dotParse != "" {
		if err := writeDot(flags.dotParse, func(w io.Writer) error { return export.ParseTreeDot(w, e) }); err != nil {
			return internalError(err)
		}
	}

	return nil
}

func writeDot(path string, fn func(io.Writer) error) error {
	w, err := openOutput(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(w)
}
