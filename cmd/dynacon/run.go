package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jublebi/dynacon/cstn"
	"github.com/jublebi/dynacon/dcctx"
	"github.com/jublebi/dynacon/dcerr"
	"github.com/jublebi/dynacon/dispatch"
	"github.com/jublebi/dynacon/graph"
	"github.com/jublebi/dynacon/initcheck"
	"github.com/jublebi/dynacon/io/graphml"
	"github.com/jublebi/dynacon/status"
	"github.com/jublebi/dynacon/stnu"
)

// cliError wraps a failure that should set a non-zero exit code per spec
// §6 ("non-zero only on I/O or malformed-input errors"); any other
// abnormal outcome (NotDC, Timeout) is a logical result carried in the
// status report, not an error.
type cliError struct{ err error }

func (e cliError) Error() string { return e.err.Error() }
func (e cliError) Unwrap() error { return e.err }

func runCheck(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	f, err := os.Open(inPath)
	if err != nil {
		return cliError{fmt.Errorf("dynacon: opening %s: %w", inPath, err)}
	}
	defer f.Close()

	g, err := graphml.Read(f)
	if err != nil {
		return cliError{err}
	}

	if alsoAsOrdinary {
		addContingentAsOrdinary(g)
	}

	ctx := dcctx.Background()
	if verbose {
		ctx = dcctx.WithSink(os.Stderr, dcctx.Verbose)
	}

	g, st, err := check(g, ctx)
	if err != nil {
		return cliError{err}
	}

	if clean && st.Controllable {
		dst, derr := dispatch.Minimize(g, dispatch.WithContext(ctx))
		if derr != nil {
			return cliError{derr}
		}
		st = dst
	}

	out := os.Stdout
	if outPath != "" {
		of, cerr := os.Create(outPath)
		if cerr != nil {
			return cliError{fmt.Errorf("dynacon: creating %s: %w", outPath, cerr)}
		}
		defer of.Close()
		out = of
	}
	if err := graphml.Write(out, g); err != nil {
		return cliError{err}
	}

	if save {
		statusPath := outPath + ".status.yaml"
		if outPath == "" {
			statusPath = inPath + ".status.yaml"
		}
		sf, serr := os.Create(statusPath)
		if serr != nil {
			return cliError{fmt.Errorf("dynacon: creating %s: %w", statusPath, serr)}
		}
		defer sf.Close()
		if err := graphml.WriteStatus(sf, st); err != nil {
			return cliError{err}
		}
	}

	fmt.Fprint(os.Stderr, st.Report())
	return nil
}

// check dispatches to the selected algorithm, running the appropriate
// initcheck.InitAndCheck pass first (spec §4.1's well-definition and
// normal-form rewrite).
func check(g *graph.Graph, ctx dcctx.Context) (*graph.Graph, *status.CheckStatus, error) {
	var timeout time.Duration
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	if algName == "CSTN" {
		g, err := initcheck.InitAndCheck(g, initcheck.WithCSTNHorizonEdges(), initcheck.WithContext(ctx))
		if err != nil {
			return nil, nil, err
		}
		st, err := cstn.Check(g, cstn.WithTimeout(timeout), cstn.WithContext(ctx))
		return g, st, err
	}

	var icOpts []initcheck.Option
	if algName == "Morris2014" {
		icOpts = append(icOpts, initcheck.WithNormalForm())
	}
	icOpts = append(icOpts, initcheck.WithContext(ctx))
	g, err := initcheck.InitAndCheck(g, icOpts...)
	if err != nil {
		return nil, nil, err
	}

	opts := []stnu.Option{stnu.WithTimeout(timeout), stnu.WithContext(ctx)}
	var st *status.CheckStatus
	switch algName {
	case "Morris2014":
		st, err = stnu.Morris2014(g, opts...)
	case "Morris2014Dispatchable":
		st, err = stnu.Morris2014Dispatchable(g, opts...)
	case "FD_STNU":
		st, err = stnu.FDSTNU(g, opts...)
	case "FD_STNU_IMPROVED":
		st, err = stnu.FDSTNUImproved(g, opts...)
	case "RUL2018":
		st, err = stnu.RUL2018(g, opts...)
	case "RUL2021":
		st, err = stnu.RUL2021(g, opts...)
	case "SRNCycleFinder":
		st, err = stnu.SRNCycleFinder(g, opts...)
	default:
		return nil, nil, fmt.Errorf("dynacon: %w: unknown algorithm %q", dcerr.ErrMalformedInput, algName)
	}
	return g, st, err
}

// addContingentAsOrdinary implements `-contingentAlsoAsOrdinary`: for every
// contingent link, add its [x,y] bound a second time as a plain ordinary
// requirement pair, so a downstream consumer that ignores upper-/lower-case
// edges entirely still sees the duration bound.
func addContingentAsOrdinary(g *graph.Graph) {
	for _, ctg := range g.ContingentNames() {
		act, ok := g.ActivationOf(ctg)
		if !ok {
			continue
		}
		loName, _ := g.LowerEdgeOf(ctg)
		upName, _ := g.UpperEdgeOf(ctg)
		lo, _ := g.Edge(loName)
		up, _ := g.Edge(upName)
		if lo == nil || up == nil || lo.LowerCase == nil || up.UpperCase == nil {
			continue
		}
		_, _ = g.AddEdge(act, ctg, graph.Requirement, graph.WithOrdinaryValue(-up.UpperCase.Value))
		_, _ = g.AddEdge(ctg, act, graph.Requirement, graph.WithOrdinaryValue(-lo.LowerCase.Value))
	}
}

func exitOnError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
