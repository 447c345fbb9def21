package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrsymbol"
	"github.com/qrforge/qrsymbol/internal/config"
	"github.com/qrforge/qrsymbol/render"
)

var (
	encodeOut     string
	encodeBorder  int
	encodeOpen    bool
	encodeVerbose bool
	encodeConfig  string
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a QR Code symbol and render it as SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeOut, "out", "", "output SVG path (overrides config)")
	encodeCmd.Flags().IntVar(&encodeBorder, "border", -1, "quiet-zone border in modules (overrides config)")
	encodeCmd.Flags().BoolVar(&encodeOpen, "open", false, "open the rendered SVG in the system browser")
	encodeCmd.Flags().BoolVar(&encodeVerbose, "verbose", false, "print stage snapshot dimensions")
	encodeCmd.Flags().StringVar(&encodeConfig, "config", "qrsymbol.yaml", "path to a YAML config file")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(encodeConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if encodeOut != "" {
		cfg.OutputPath = encodeOut
	}
	if encodeBorder >= 0 {
		cfg.Border = encodeBorder
	}
	if encodeOpen {
		cfg.OpenInBrowser = true
	}

	text := args[0]

	var result qrsymbol.Result
	if encodeVerbose {
		var stages qrsymbol.Stages
		result, stages, err = qrsymbol.EncodeWithStages(text)
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "pre-mask %dx%d, post-mask %dx%d, final %dx%d\n",
				len(stages.PreMask), len(stages.PreMask),
				len(stages.PostMask), len(stages.PostMask),
				len(stages.Final), len(stages.Final))
		}
	} else {
		result, err = qrsymbol.Encode(text)
	}

	if err != nil {
		return reportEncodeError(err)
	}

	svg, err := render.SVG(result, cfg.Border)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (version %d, mask %d)\n", cfg.OutputPath, result.Version, result.MaskID)

	if cfg.OpenInBrowser {
		if err := browser.OpenFile(cfg.OutputPath); err != nil {
			return fmt.Errorf("opening %s: %w", cfg.OutputPath, err)
		}
	}

	return nil
}

// reportEncodeError logs ErrInternalInvariant failures (a bug in the core,
// never expected from valid input) before returning them, and passes the
// caller-facing input errors straight through.
func reportEncodeError(err error) error {
	if errors.Is(err, qrsymbol.ErrInternalInvariant) {
		slog.Error("qrsymbol: internal invariant violated", "error", err)
	}
	return err
}
