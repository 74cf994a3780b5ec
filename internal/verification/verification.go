// Package verification verifies that decoding a dump again recreates the
// generated output.
package verification

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// maxReportedMismatches limits the logged offset mismatches.
const maxReportedMismatches = 10

// Producer decodes a dump and renders its output.
type Producer func(ctx context.Context) ([]byte, error)

// VerifyOutput runs the producer again and verifies that it recreates the
// exact output.
func VerifyOutput(ctx context.Context, logger *log.Logger, output []byte, produce Producer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	again, err := produce(ctx)
	if err != nil {
		return fmt.Errorf("decoding dump for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, output, again); err != nil {
		return fmt.Errorf("output mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	var diffs uint64
	for i := range min(len(input), len(output)) {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}

	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
