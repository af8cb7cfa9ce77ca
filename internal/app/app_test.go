package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsUsageAndReturnsZero(t *testing.T) {
	output, err := captureStdout(func() int {
		application := New()
		return application.Run(nil)
	})
	if err != nil {
		t.Fatalf("capture stdout: %v", err)
	}

	if output.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", output.exitCode)
	}
	if !strings.Contains(output.stdout, "Usage:") {
		t.Fatalf("expected usage text, got %q", output.stdout)
	}
}

func TestRunFileChecksumReturnsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	output, err := captureStdout(func() int {
		application := New()
		return application.Run([]string{path})
	})
	if err != nil {
		t.Fatalf("capture stdout: %v", err)
	}

	if output.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", output.exitCode)
	}
	if !strings.Contains(output.stdout, "352441c2") {
		t.Fatalf("expected abc checksum in output, got %q", output.stdout)
	}
	if !strings.Contains(output.stdout, "CrcUtil: Command completed successfully.") {
		t.Fatalf("expected success line, got %q", output.stdout)
	}
}

func TestRunMissingFileReturnsOne(t *testing.T) {
	output, err := captureStdout(func() int {
		application := New()
		return application.Run([]string{filepath.Join(t.TempDir(), "absent.bin")})
	})
	if err != nil {
		t.Fatalf("capture stdout: %v", err)
	}

	if output.exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", output.exitCode)
	}
	if !strings.Contains(output.stdout, "CrcUtil: The system cannot find the file specified.") {
		t.Fatalf("expected not-found diagnostic, got %q", output.stdout)
	}
}

func TestRunBadBufferSizeReturnsOne(t *testing.T) {
	output, err := captureStdout(func() int {
		application := New()
		return application.Run([]string{"-showupdates", "0", "ignored.bin"})
	})
	if err != nil {
		t.Fatalf("capture stdout: %v", err)
	}

	if output.exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", output.exitCode)
	}
}

type runOutput struct {
	exitCode int
	stdout   string
}

func captureStdout(run func() int) (runOutput, error) {
	originalStdout := os.Stdout
	reader, writer, err := os.Pipe()
	if err != nil {
		return runOutput{}, err
	}

	os.Stdout = writer
	exitCode := run()
	_ = writer.Close()
	os.Stdout = originalStdout

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, reader); err != nil {
		return runOutput{}, err
	}

	return runOutput{exitCode: exitCode, stdout: buffer.String()}, nil
}
