// Command drgattacks runs depth-reduction attacks against synthetic
// depth-robust-candidate graphs.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/greedy"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("run failed", "error", err)
		if errors.Is(err, attack.ErrExhausted) || errors.Is(err, greedy.ErrSaturated) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

