// Package cli implements CrcUtil command-line parsing and operations.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/dustin/go-humanize"

	"crcutil/internal/crc"
	apperrors "crcutil/internal/errors"
	"crcutil/internal/logging"
	"crcutil/internal/selftest"
	"crcutil/internal/stream"
	"crcutil/internal/timetrial"
	"crcutil/internal/validate"
)

// Diagnostic lines mirror the OS checksum utility this tool imitates; they
// are contract output and go to stdout like everything else.
const (
	msgNotFound    = "CrcUtil: The system cannot find the file specified."
	msgReadFailure = "CrcUtil: The system cannot read from the specified device."
	msgCloseFail   = "CrcUtil: The input file could not be closed."
	msgBadFormat   = "CrcUtil: The provided BufferSize argument does not have the appropriate format."
	msgOutOfRange  = "CrcUtil: The provided BufferSize argument is out of the supported range [1, 2147483645]."
)

// RootCommand handles argument parsing for the CrcUtil CLI.
type RootCommand struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	args   []string
}

// NewRootCommand creates the CrcUtil root command.
func NewRootCommand(out io.Writer, errOut io.Writer) *RootCommand {
	return &RootCommand{out: out, errOut: errOut, logger: logging.ForVerbose(errOut, false)}
}

// SetArgs sets command arguments.
func (r *RootCommand) SetArgs(args []string) { r.args = args }

// Execute parses arguments and runs the selected operation. The dispatch
// order matches the utility this tool imitates: help, build info, time
// trial, test suite, string, incremental, then bare file path.
func (r *RootCommand) Execute() error {
	args := r.args
	if i := slices.Index(args, "-v"); i >= 0 {
		args = slices.Delete(slices.Clone(args), i, i+1)
		r.logger = logging.ForVerbose(r.errOut, true)
	}

	if len(args) == 0 {
		return r.printUsage(false)
	}

	if slices.Contains(args, "-?") || slices.Contains(args, "/?") {
		return r.printUsage(true)
	}

	if slices.Contains(args, "-version") {
		return r.printVersion()
	}

	if slices.Contains(args, "-t") {
		return r.runTimeTrial()
	}

	if slices.Contains(args, "-x") {
		return r.runTestSuite()
	}

	if i := slices.Index(args, "-s"); i >= 0 {
		if i+1 == len(args) {
			return r.missingArgument()
		}
		return r.runString(args[i+1])
	}

	if i := slices.Index(args, "-showupdates"); i >= 0 {
		return r.dispatchShowUpdates(args[i+1:])
	}

	return r.runFile(args[0])
}

func (r *RootCommand) dispatchShowUpdates(rest []string) error {
	switch len(rest) {
	case 0:
		return r.missingArgument()
	case 1:
		return r.runShowUpdates(stream.DefaultBufferSize, rest[0])
	default:
		bufferSize, err := validate.ParseBufferSize(rest[0])
		if err != nil {
			if errors.Is(err, validate.ErrOutOfRange) {
				_, _ = fmt.Fprintln(r.out, msgOutOfRange)
			} else {
				_, _ = fmt.Fprintln(r.out, msgBadFormat)
			}
			return err
		}
		return r.runShowUpdates(bufferSize, rest[1])
	}
}

func (r *RootCommand) runFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		_, _ = fmt.Fprintln(r.out, msgNotFound)
		return fmt.Errorf("open %s: %w", path, apperrors.ErrNotFound)
	}

	source := &countingReader{r: file}
	value, sumErr := stream.Checksum(source, stream.DefaultBufferSize, nil)
	if sumErr != nil {
		_, _ = fmt.Fprintln(r.out, msgReadFailure)
	} else {
		_, _ = fmt.Fprintf(r.out, "CRC32 checksum of %s:\n%x\nCrcUtil: Command completed successfully.\n", path, value)
		r.logger.Debug("file checksum complete",
			"path", path,
			"bytes", humanize.Bytes(uint64(source.n)),
			"buffer", stream.DefaultBufferSize)
	}

	return r.closeInput(file, path, sumErr)
}

func (r *RootCommand) runShowUpdates(bufferSize int, path string) error {
	file, err := os.Open(path)
	if err != nil {
		_, _ = fmt.Fprintln(r.out, msgNotFound)
		return fmt.Errorf("open %s: %w", path, apperrors.ErrNotFound)
	}

	if _, err := fmt.Fprintf(r.out, "Incremental CRC32 checksum of %s:\n", path); err != nil {
		return r.closeInput(file, path, fmt.Errorf("write incremental header: %w", err))
	}

	source := &countingReader{r: file}
	_, sumErr := stream.Checksum(source, bufferSize, func(report stream.Report) {
		_, _ = fmt.Fprintf(r.out, "Update %d = %x\n", report.Index, report.Value)
	})
	if sumErr != nil {
		_, _ = fmt.Fprintln(r.out, msgReadFailure)
	} else {
		_, _ = fmt.Fprintln(r.out, "CrcUtil: -showupdates command completed successfully")
		r.logger.Debug("incremental checksum complete",
			"path", path,
			"bytes", humanize.Bytes(uint64(source.n)),
			"buffer", bufferSize)
	}

	return r.closeInput(file, path, sumErr)
}

// closeInput releases the input file after a read attempt. A close failure
// is reported on its own line and never masks an earlier read error.
func (r *RootCommand) closeInput(file *os.File, path string, sumErr error) error {
	if closeErr := file.Close(); closeErr != nil {
		_, _ = fmt.Fprintln(r.out, msgCloseFail)
		if sumErr == nil {
			return fmt.Errorf("close %s: %w", path, apperrors.ErrClose)
		}
	}
	if sumErr != nil {
		return fmt.Errorf("checksum %s: %w", path, sumErr)
	}
	return nil
}

func (r *RootCommand) runString(s string) error {
	value := crc.Checksum([]byte(s))
	if _, err := fmt.Fprintf(r.out, "CRC32 checksum of \"%s\":\n%x\nCrcUtil: -s command completed successfully.\n", s, value); err != nil {
		return fmt.Errorf("write string checksum output: %w", err)
	}
	return nil
}

func (r *RootCommand) runTimeTrial() error {
	if _, err := fmt.Fprintf(r.out, "CRC32 time trial. Checksumming %d %d-byte blocks...", timetrial.BlockCount, timetrial.BlockLength); err != nil {
		return fmt.Errorf("write time trial header: %w", err)
	}

	result := timetrial.Run(timetrial.BlockCount, timetrial.BlockLength)

	if _, err := fmt.Fprintf(r.out, " done\nChecksum = %x\nTime = %d seconds\nSpeed = %d bytes/second\nCrcUtil: -t command completed successfully.\n",
		result.Checksum, int64(result.Elapsed.Seconds()), int64(result.BytesPerSecond)); err != nil {
		return fmt.Errorf("write time trial result: %w", err)
	}

	r.logger.Debug("time trial complete",
		"blocks", result.Blocks,
		"blockLength", result.BlockLength,
		"elapsed", result.Elapsed,
		"rate", result.HumanRate())
	return nil
}

func (r *RootCommand) runTestSuite() error {
	if _, err := fmt.Fprintln(r.out, "CRC32 test suite:"); err != nil {
		return fmt.Errorf("write test suite header: %w", err)
	}
	if err := selftest.Run(r.out); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, "CrcUtil: -x command completed successfully"); err != nil {
		return fmt.Errorf("write test suite footer: %w", err)
	}
	return nil
}

func (r *RootCommand) missingArgument() error {
	if _, err := fmt.Fprint(r.out, "Expected at least 1 argument, received 0\nCrcUtil: Missing argument\n\n"); err != nil {
		return fmt.Errorf("write missing argument notice: %w", err)
	}
	if err := r.printUsage(false); err != nil {
		return err
	}
	return fmt.Errorf("missing argument: %w", apperrors.ErrUsage)
}

func (r *RootCommand) printUsage(confirm bool) error {
	const usage = "Usage:\n" +
		"  crcutil [Options] [InFile]\n" +
		"  Generate and display CRC32 checksum over a file\n" +
		"\n" +
		"Options:\n" +
		"  -t                -- Run time trial\n" +
		"  -x                -- Run test script\n" +
		"  -s String                  -- Checksum string\n" +
		"  -showupdates [BufferSize]  -- Process BufferSize bytes at a time\n" +
		"  -v                         -- Log verbose diagnostics to stderr\n" +
		"  -version                   -- Display build information\n" +
		"\n" +
		"BufferSize defaults to 32768\n" +
		"\n" +
		"CrcUtil -?              -- Display help text\n" +
		"\n"

	text := usage
	if confirm {
		text += "CrcUtil: -? command completed successfully.\n\n"
	}
	if _, err := fmt.Fprint(r.out, text); err != nil {
		return fmt.Errorf("write usage output: %w", err)
	}
	return nil
}

// countingReader tracks bytes consumed for verbose diagnostics.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// NewOSRootCommand creates a command wired to process standard streams.
func NewOSRootCommand() *RootCommand {
	return NewRootCommand(os.Stdout, os.Stderr)
}
