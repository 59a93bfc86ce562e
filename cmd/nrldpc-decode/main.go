// Command nrldpc-decode drives the RateDematcher and LayeredLdpcDecoder
// against a file of raw channel LLRs, for offline testing and bench
// reproduction outside of a live L1 pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oran-l1/nrldpc/decoder"
	"github.com/oran-l1/nrldpc/geometry"
	"github.com/oran-l1/nrldpc/internal/llrcodec"
	"github.com/oran-l1/nrldpc/ratematch"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "nrldpc-decode",
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	var verbose bool

	root := &cobra.Command{
		Use:   "nrldpc-decode",
		Short: "Offline driver for the 5G-NR LDPC rate-dematcher and layered decoder",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return loadConfig(cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (overrides flag defaults)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDecodeCmd(), newDematchCmd(), newInspectArchiveCmd())
	return root
}

// loadConfig layers an optional YAML profile under the process's flags:
// viper.Get* calls later in decode's RunE fall back to whatever the file sets,
// letting a deployment pin beta/iteration defaults without touching the CLI
// invocation every run.
func loadConfig(cfgFile string) error {
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("nrldpc-decode: reading config %s: %w", cfgFile, err)
		}
	}
	return nil
}

func newDecodeCmd() *cobra.Command {
	var (
		bg               int
		z                int
		rows             int
		beta             int
		maxIterations    int
		earlyTermination bool
		fillerBits       int
		input            string
		archive          string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Run the layered min-sum decoder over a raw channel-LLR file",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			runLog := logger.With("run_id", runID.String())

			if !cmd.Flags().Changed("beta") {
				beta = configIntOr("decode.beta", beta)
			}
			if !cmd.Flags().Changed("max-iterations") {
				maxIterations = configIntOr("decode.max_iterations", maxIterations)
			}

			baseGraph := geometry.BG1
			if bg == 2 {
				baseGraph = geometry.BG2
			}

			geom, err := geometry.Resolve(baseGraph, uint16(z), rows)
			if err != nil {
				return fmt.Errorf("nrldpc-decode: resolving geometry: %w", err)
			}
			runLog.Info("geometry resolved", "base_graph", baseGraph, "z", z, "rows", rows, "cols", geom.NCols())

			channelLLRs, err := readLLRFile(input)
			if err != nil {
				return fmt.Errorf("nrldpc-decode: %w", err)
			}

			req := decoder.Request{
				Beta:             uint16(beta),
				MaxIterations:    uint16(maxIterations),
				EarlyTermination: earlyTermination,
				FillerBits:       uint32(fillerBits),
				NChannelLLRs:     uint32(len(channelLLRs)),
			}

			out, err := decoder.Decode(channelLLRs, geom, req)
			if err != nil {
				return fmt.Errorf("nrldpc-decode: decode failed: %w", err)
			}

			runLog.Info("decode complete",
				"iterations_used", out.IterationsUsed,
				"parity_passed", out.ParityPassed,
				"n_msg_bits", out.NMsgBits,
			)

			if archive != "" {
				encoded := llrcodec.Encode(out.AppLLR)
				if err := os.WriteFile(archive, encoded, 0o644); err != nil {
					return fmt.Errorf("nrldpc-decode: writing LLR archive %s: %w", archive, err)
				}
				runLog.Info("app_llr archived", "path", archive, "values", len(out.AppLLR), "bytes", len(encoded))
			}

			fmt.Printf("%x\n", out.Bits)
			if !out.ParityPassed {
				return fmt.Errorf("nrldpc-decode: parity check failed after %d iterations", out.IterationsUsed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&bg, "bg", 1, "base graph (1 or 2)")
	cmd.Flags().IntVar(&z, "z", 0, "lifting factor Z")
	cmd.Flags().IntVar(&rows, "rows", 0, "number of parity-check rows to decode")
	cmd.Flags().IntVar(&beta, "beta", configIntOr("decode.beta", 8), "min-sum normalization offset")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", configIntOr("decode.max_iterations", 20), "maximum decode iterations")
	cmd.Flags().BoolVar(&earlyTermination, "early-termination", true, "stop as soon as all parity checks pass")
	cmd.Flags().IntVar(&fillerBits, "filler-bits", 0, "number of trailing filler bits in the systematic block")
	cmd.Flags().StringVar(&input, "input", "", "path to a file of one signed byte per channel LLR (required)")
	cmd.Flags().StringVar(&archive, "archive", "", "optional path to archive the final app_llr soft values (StreamVByte-encoded, see internal/llrcodec)")
	cmd.MarkFlagRequired("z")
	cmd.MarkFlagRequired("rows")
	cmd.MarkFlagRequired("input")

	return cmd
}

func newInspectArchiveCmd() *cobra.Command {
	var (
		archive string
		count   int
		index   int
	)

	cmd := &cobra.Command{
		Use:   "inspect-archive",
		Short: "Read back an app_llr archive written by `decode --archive`",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := os.ReadFile(archive)
			if err != nil {
				return fmt.Errorf("nrldpc-decode: reading archive %s: %w", archive, err)
			}

			if index >= 0 {
				v, err := llrcodec.DecodeOne(encoded, count, index)
				if err != nil {
					return fmt.Errorf("nrldpc-decode: decoding archive entry %d: %w", index, err)
				}
				fmt.Println(v)
				return nil
			}

			values := llrcodec.Decode(encoded, count)
			for _, v := range values {
				fmt.Println(v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archive, "archive", "", "path to a StreamVByte app_llr archive (required)")
	cmd.Flags().IntVar(&count, "count", 0, "number of LLR values in the archive (required)")
	cmd.Flags().IntVar(&index, "index", -1, "decode only this index via random access instead of the whole archive")
	cmd.MarkFlagRequired("archive")
	cmd.MarkFlagRequired("count")

	return cmd
}

func newDematchCmd() *cobra.Command {
	var (
		bg        int
		z         int
		ncb       uint32
		e         uint32
		rv        int
		modOrder  int
		startNull uint32
		numNull   uint32
		isRetx    bool
		input     string
	)

	cmd := &cobra.Command{
		Use:   "dematch",
		Short: "Run RateDematcher over a channel-LLR file and print the combined HARQ buffer",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseGraph := geometry.BG1
			if bg == 2 {
				baseGraph = geometry.BG2
			}

			channelLLRs, err := readLLRFile(input)
			if err != nil {
				return fmt.Errorf("nrldpc-decode: %w", err)
			}

			harq := make([]int8, ncb)
			params := ratematch.Params{
				Ncb:             ncb,
				E:               e,
				RvID:            uint8(rv),
				Z:               uint16(z),
				ModulationOrder: uint8(modOrder),
				BaseGraph:       baseGraph,
				StartNull:       startNull,
				NumNull:         numNull,
				IsRetx:          isRetx,
			}

			res := ratematch.Dematch(channelLLRs, harq, params)
			logger.Info("dematch complete", "k0", res.K0, "window_size", res.WindowSize)
			fmt.Printf("%x\n", harq)
			return nil
		},
	}

	cmd.Flags().IntVar(&bg, "bg", 1, "base graph (1 or 2)")
	cmd.Flags().IntVar(&z, "z", 0, "lifting factor Z")
	cmd.Flags().Uint32Var(&ncb, "ncb", 0, "circular buffer length")
	cmd.Flags().Uint32Var(&e, "e", 0, "number of rate-matched output bits")
	cmd.Flags().IntVar(&rv, "rv", 0, "redundancy version (0-3)")
	cmd.Flags().IntVar(&modOrder, "mod-order", 2, "modulation order (bits per symbol)")
	cmd.Flags().Uint32Var(&startNull, "start-null", 0, "start index of the null/filler region")
	cmd.Flags().Uint32Var(&numNull, "num-null", 0, "length of the null/filler region")
	cmd.Flags().BoolVar(&isRetx, "retx", false, "treat the HARQ buffer as already populated from a prior transmission")
	cmd.Flags().StringVar(&input, "input", "", "path to a file of one signed byte per channel LLR (required)")
	cmd.MarkFlagRequired("z")
	cmd.MarkFlagRequired("ncb")
	cmd.MarkFlagRequired("e")
	cmd.MarkFlagRequired("input")

	return cmd
}

func readLLRFile(path string) ([]int8, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	out := make([]int8, len(raw))
	for i, b := range raw {
		out[i] = int8(b)
	}
	return out, nil
}

func configIntOr(key string, def int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return def
}
