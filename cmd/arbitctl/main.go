// Command arbitctl is a small inspection tool for the arbit registry: it
// draws and prints samples from a named Arbitrary without writing a Go
// test, useful for eyeballing a generator's output distribution.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arbitlab/arbit/shrink"
)

var (
	seed    int64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arbitctl",
	Short: "Inspect arbit registry arbitraries from the command line",
	Long: `arbitctl draws samples from a built-in Arbitrary kind (int, long,
float, double, string, bool, bigint) or one loaded under a name (see
arbitrary.LoadDefaultsYAML / arbitrary.NamedDefault) and prints them, so a
generator's shape can be checked without writing a throwaway test.`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks a time-based seed)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print shrink-tree depth alongside each sample")

	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// effectiveSeed mirrors prop.Config.effectiveSeed: a zero --seed picks a
// time-based one so repeated invocations still vary.
func effectiveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// shrinkDepth counts the steps along the first-child path of s's shrink
// tree (stopping after 1001), a quick proxy for how much shrinking room a
// draw has.
func shrinkDepth[T any](s shrink.Shrinkable[T]) int {
	depth := 0
	for {
		children := s.Shrinks()
		if len(children) == 0 {
			return depth
		}
		s = children[0]
		depth++
		if depth > 1000 {
			return depth
		}
	}
}
