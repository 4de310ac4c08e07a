// Command untwist recovers PRNG seeds from observed values.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nozzle/untwist"
	"github.com/nozzle/untwist/internal/config"
	"github.com/nozzle/untwist/internal/console"
	"github.com/nozzle/untwist/prng"
	"github.com/nozzle/untwist/search"
)

const (
	// oneYear is the ±range of the -u timestamp search, in seconds.
	oneYear = 31536000
	// sampleLen is the number of values emitted in generate mode.
	sampleLen = 10
)

type options struct {
	input      string
	prngName   string
	depth      int
	threads    int
	confidence float64
	unixRange  bool
	seed       uint32
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "untwist",
		Short: "Recover PRNG seeds from observed values",
		Long:  usageLong(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "path to a file of newline-separated observed outputs (decimal or 0x-hex)")
	flags.StringVarP(&opts.prngName, "prng", "r", "", "PRNG algorithm (see --help for the supported list)")
	flags.IntVarP(&opts.depth, "depth", "d", 0, "outputs to inspect per candidate seed (default 1000)")
	flags.IntVarP(&opts.threads, "threads", "t", 0, "worker threads (default: number of CPUs)")
	flags.Float64VarP(&opts.confidence, "confidence", "c", 0, "minimum confidence percentage to report (default 100)")
	flags.BoolVarP(&opts.unixRange, "unix-range", "u", false, "search only timestamp seeds within ±1 year of now")
	flags.Uint32VarP(&opts.seed, "generate", "g", 0, "generate a test sample from this seed (or from inferred state when observations are loaded)")
	flags.StringVar(&opts.configPath, "config", "", "YAML preset file (explicit flags override it)")
	return cmd
}

func usageLong() string {
	var b strings.Builder
	b.WriteString("Untwist - Recover PRNG seeds from observed values.\n\n")
	b.WriteString("Supported PRNG algorithms:\n")
	for i, name := range prng.Names() {
		b.WriteString("  * " + name)
		if i == 0 {
			b.WriteString(" (default)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func run(cmd *cobra.Command, opts *options) error {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	console.SetNoColor(!tty)

	u, err := buildController(cmd, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.Warn()+"ERROR: "+err.Error())
		return err
	}

	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%sERROR: File %q not found\n", console.Warn(), opts.input)
			return err
		}
		err = u.LoadObservations(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, console.Warn()+"ERROR: "+err.Error())
			return err
		}
	}

	if cmd.Flags().Changed("generate") {
		return generate(u, opts.seed)
	}

	if len(u.Observations()) == 0 {
		fmt.Fprintln(os.Stderr, console.Warn()+"ERROR: No input numbers provided. Use -i <file> to provide a file")
		return fmt.Errorf("no observations")
	}

	if ok, err := u.InferState(); ok {
		reportState(u)
		return nil
	} else if err != nil {
		fmt.Fprintln(os.Stderr, console.Warn()+"State inference failed: "+err.Error())
	}

	lower, upper := seedRange(opts.unixRange)
	return findSeed(u, lower, upper)
}

// buildController layers defaults, the optional preset file, and
// explicit flags, in that order.
func buildController(cmd *cobra.Command, opts *options) (*untwist.Untwist, error) {
	cfg := untwist.DefaultConfig()

	if opts.configPath != "" {
		preset, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		if preset.PRNG != "" {
			cfg.PRNG = preset.PRNG
		}
		if preset.Depth != 0 {
			cfg.Depth = preset.Depth
		}
		if preset.Threads != 0 {
			cfg.Workers = preset.Threads
		}
		if preset.MinConfidence != 0 {
			cfg.MinConfidence = preset.MinConfidence
		}
	}

	flags := cmd.Flags()
	if flags.Changed("prng") {
		cfg.PRNG = opts.prngName
	}
	if flags.Changed("depth") {
		cfg.Depth = opts.depth
	}
	if flags.Changed("threads") {
		cfg.Workers = opts.threads
	}
	if flags.Changed("confidence") {
		cfg.MinConfidence = opts.confidence
	}

	u, err := untwist.New(cfg)
	if err != nil {
		return nil, err
	}
	if flags.Changed("depth") {
		fmt.Println(console.Info() + fmt.Sprintf("Depth set to: %d", cfg.Depth))
	}
	if flags.Changed("confidence") {
		fmt.Println(console.Info() + fmt.Sprintf("Minimum confidence set to: %g", cfg.MinConfidence))
	}
	return u, nil
}

func seedRange(unixRange bool) (uint32, uint32) {
	if unixRange {
		now := time.Now().Unix()
		return uint32(now - oneYear), uint32(now + oneYear)
	}
	return 0, 0xffffffff
}

func generate(u *untwist.Untwist, seed uint32) error {
	var sample []uint32
	if len(u.Observations()) == 0 {
		sample = u.GenerateFromSeed(seed, sampleLen)
	} else {
		if ok, err := u.InferState(); !ok {
			msg := "cannot generate from state: state inference failed"
			if err != nil {
				msg += ": " + err.Error()
			}
			fmt.Fprintln(os.Stderr, console.Warn()+msg)
			return fmt.Errorf("state inference failed")
		}
		var err error
		sample, err = u.GenerateFromState(sampleLen)
		if err != nil {
			return err
		}
	}
	for _, v := range sample {
		fmt.Println(v)
	}
	return nil
}

func reportState(u *untwist.Untwist) {
	fmt.Println(console.Success() + "Successfully inferred the internal state")
	state := u.InferredState()
	var b strings.Builder
	for i, w := range state {
		if i > 0 {
			if i%8 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d", w)
	}
	fmt.Println(b.String())
}

func findSeed(u *untwist.Untwist, lower, upper uint32) error {
	fmt.Println(console.Info() + "Looking for seed using " + console.Bold(u.PRNG()))
	fmt.Printf("%sSpawning %d worker thread(s) ...\n", console.Info(), u.Workers())

	monitor := u.Monitor()
	total := uint64(upper) - uint64(lower)

	var wg sync.WaitGroup
	if isatty.IsTerminal(os.Stdout.Fd()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			search.Watch(os.Stdout, monitor, total)
		}()
	}

	started := time.Now()
	results, err := u.BruteForce(context.Background(), lower, upper)
	wg.Wait()
	if err != nil {
		fmt.Fprintln(os.Stderr, console.Warn()+"ERROR: "+err.Error())
		return err
	}

	fmt.Printf("%sCompleted in %d second(s)\n", console.Info(), int(time.Since(started).Seconds()))
	for _, r := range results {
		fmt.Printf("%sFound seed %d with a confidence of %g%%\n", console.Success(), r.Seed, r.Confidence)
	}
	return nil
}
