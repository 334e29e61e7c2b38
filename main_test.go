package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, f func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		os.Stderr = oldStderr
	}()
	f()
	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestMainRoot(t *testing.T) {
	oldRun, oldExit := run, osExit
	defer func() {
		run, osExit = oldRun, oldExit
	}()
	runCalled := false
	run = func(ctx context.Context) int {
		runCalled = true
		return 3
	}
	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
	if exitCode != 3 {
		t.Errorf("expected exit code 3, got %d", exitCode)
	}
}

func Test_run(t *testing.T) {
	oldExecute := execute
	defer func() {
		execute = oldExecute
	}()

	t.Run("ok", func(t *testing.T) {
		execute = func(ctx context.Context) error {
			return nil
		}
		if code := run(context.Background()); code != 0 {
			t.Errorf("expected 0, got %d", code)
		}
	})

	t.Run("error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		execute = func(ctx context.Context) error {
			return expectedErr
		}
		var code int
		output := captureStderr(t, func() {
			code = run(context.Background())
		})
		if code != 1 {
			t.Errorf("expected 1, got %d", code)
		}
		if !strings.Contains(output, expectedErr.Error()) {
			t.Errorf("expected stderr to contain %q, got %q", expectedErr.Error(), output)
		}
	})

	t.Run("panic", func(t *testing.T) {
		execute = func(ctx context.Context) error {
			panic("boom")
		}
		var code int
		output := captureStderr(t, func() {
			code = run(context.Background())
		})
		if code != 1 {
			t.Errorf("expected 1, got %d", code)
		}
		if !strings.Contains(output, "Recovered from panic: boom") {
			t.Errorf("unexpected stderr %q", output)
		}
	})
}
