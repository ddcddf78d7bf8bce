package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flag values, following the teacher's package-level cobra variable
// convention (cmd/aleutian/commands.go).
var (
	outPath        string
	timeoutSeconds int
	algName        string
	clean          bool
	save           bool
	alsoAsOrdinary bool
	verbose        bool
)

// algNames are the selectable algorithms of spec §6, plus "CSTN" for the
// label-propagation checker the expanded spec adds alongside the STNU
// family.
var algNames = []string{
	"Morris2014", "Morris2014Dispatchable",
	"FD_STNU", "FD_STNU_IMPROVED",
	"RUL2018", "RUL2021", "SRNCycleFinder",
	"CSTN",
}

var rootCmd = &cobra.Command{
	Use:   "dynacon <input>",
	Short: "Check, and optionally minimize, a Dynamic-Controllability constraint graph",
	Long: fmt.Sprintf(`dynacon reads a GraphML-like constraint graph, runs the selected
DC-checking algorithm, and writes the (possibly minimized) graph back out.

Algorithms: %v`, algNames),
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&outPath, "o", "o", "", "output graph file (default: stdout)")
	f.IntVarP(&timeoutSeconds, "t", "t", 0, "wall-clock timeout in seconds (0 = none)")
	f.StringVarP(&algName, "a", "a", "Morris2014", "algorithm to run")
	f.BoolVar(&clean, "clean", false, "run the dispatchability minimizer after a controllable check")
	f.BoolVar(&save, "save", false, "write the status report as a YAML side-channel next to the output graph (next to the input file when -o is not given)")
	f.BoolVar(&alsoAsOrdinary, "contingentAlsoAsOrdinary", false, "additionally add each contingent link's [x,y] bound as ordinary requirement edges")
	f.BoolVarP(&verbose, "v", "v", false, "verbose diagnostic output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		exitOnError(err)
	}
}
