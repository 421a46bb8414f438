package adapter

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

//go:embed tsdriver/driver.js
var driverScript string

// DefaultCompilerTimeout bounds a single compiler invocation.
const DefaultCompilerTimeout = 2 * time.Minute

// TypeScriptAdapter abstracts the TypeScript compiler. It is treated as an
// oracle: it receives files and options and reports raw diagnostics.
type TypeScriptAdapter interface {
	// Check builds a program from files, emits it and returns the
	// pre-emission and emission diagnostics. workDir is where the compiler
	// runs and resolves its own installation from.
	Check(ctx context.Context, workDir m.Path, files []m.Path, options m.CompilerOptions) (m.CheckOutput, error)
}

// NodeTypeScriptAdapter runs the compiler through node and the typescript
// package installed in (or above) the working directory.
type NodeTypeScriptAdapter struct {
	node    string
	timeout time.Duration
}

// NewNodeTypeScriptAdapter constructs a NodeTypeScriptAdapter. An empty node
// binary defaults to "node" and a non-positive timeout to DefaultCompilerTimeout.
func NewNodeTypeScriptAdapter(node string, timeout time.Duration) *NodeTypeScriptAdapter {
	if node == "" {
		node = "node"
	}

	if timeout <= 0 {
		timeout = DefaultCompilerTimeout
	}

	return &NodeTypeScriptAdapter{node: node, timeout: timeout}
}

type checkRequest struct {
	Files   []m.Path          `json:"files"`
	Options m.CompilerOptions `json:"options"`
}

// Check runs the embedded driver script with node.
func (a *NodeTypeScriptAdapter) Check(ctx context.Context, workDir m.Path, files []m.Path, options m.CompilerOptions) (m.CheckOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	request, err := json.Marshal(checkRequest{Files: files, Options: options})
	if err != nil {
		return m.CheckOutput{}, fmt.Errorf("encode compiler request: %w", err)
	}

	cmd := exec.CommandContext(ctx, a.node, "-e", driverScript)
	cmd.Dir = string(workDir)
	cmd.Stdin = bytes.NewReader(request)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return m.CheckOutput{}, fmt.Errorf("compiler exited with code %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}

		return m.CheckOutput{}, fmt.Errorf("run compiler: %w", err)
	}

	var output m.CheckOutput
	if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
		return m.CheckOutput{}, fmt.Errorf("decode compiler output: %w", err)
	}

	return output, nil
}
