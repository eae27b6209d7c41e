package renderer

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/input-output-hk/catalyst-forge-libs/executor"

	"keychain-backend/internal/config"
	"keychain-backend/internal/model"
	"keychain-backend/pkg/logger"
)

const (
	sceneFileName    = "keychain.scad"
	artifactFileName = "keychain.stl"
)

// Renderer runs OpenSCAD on a scene program inside a scoped workspace and
// returns the binary STL it produces. One subprocess per call, no retries.
type Renderer struct {
	binPath  string
	fontsDir string
	workDir  string
	timeout  time.Duration
}

func New(cfg config.RendererConfig) *Renderer {
	return &Renderer{
		binPath:  cfg.OpenSCADPath,
		fontsDir: cfg.FontsDir,
		workDir:  cfg.WorkDir,
		timeout:  cfg.Timeout,
	}
}

// Render persists the scene into a fresh temporary workspace, invokes the
// engine and classifies the outcome. The workspace is removed on every exit
// path, including panics further up the stack.
func (r *Renderer) Render(ctx context.Context, scene string) ([]byte, error) {
	jobID := uuid.New().String()
	log := logger.WithField("job_id", jobID)

	workspace, err := os.MkdirTemp(r.workDir, "keychain-"+jobID+"-")
	if err != nil {
		return nil, model.NewPipelineError(model.KindUnhandledFault,
			"failed to create render workspace", err.Error())
	}
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			log.Warnf("failed to remove workspace %s: %v", filepath.Base(workspace), err)
		}
	}()

	scenePath := filepath.Join(workspace, sceneFileName)
	artifactPath := filepath.Join(workspace, artifactFileName)
	if err := os.WriteFile(scenePath, []byte(scene), 0o600); err != nil {
		return nil, model.NewPipelineError(model.KindUnhandledFault,
			"failed to write scene file", err.Error())
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// Success is signaled by the exit code plus the presence of the output
	// file; stdout is only diagnostic. OPENSCAD_FONT_PATH lets the engine
	// resolve the bare font filename against our fonts directory.
	cmd := executor.New(r.binPath,
		"-o", artifactPath,
		scenePath,
		"--export-format", "binstl",
		"--quiet",
	)
	result, runErr := cmd.Execute(ctx,
		executor.SilentMode(),
		executor.WithEnvVar("OPENSCAD_FONT_PATH", r.fontsDir),
	)

	var exitErr *exec.ExitError
	switch {
	case runErr != nil && errors.As(runErr, &exitErr):
		// The engine ran and did not exit cleanly: non-zero exit code or a
		// signal death (segfault on pathological geometry shows up here).
		detail := ""
		if result != nil {
			detail = strings.TrimSpace(result.Stderr)
			if detail == "" {
				detail = strings.TrimSpace(result.Stdout)
			}
		}
		if detail == "" {
			detail = exitErr.Error()
		}
		log.Errorf("engine exited with code %d: %s", exitErr.ExitCode(), detail)
		return nil, model.NewPipelineError(model.KindEngineExecutionFailed,
			"OpenSCAD failed", detail)
	case runErr != nil:
		// The engine never spawned: binary missing or not executable.
		log.Errorf("engine invocation failed: %v", runErr)
		return nil, model.NewPipelineError(model.KindUnhandledFault,
			"failed to run rendering engine", runErr.Error())
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Errorf("engine exited cleanly but produced no artifact")
			return nil, model.NewPipelineError(model.KindArtifactNotProduced,
				"STL file not generated", "")
		}
		return nil, model.NewPipelineError(model.KindUnhandledFault,
			"failed to read STL file", err.Error())
	}

	log.Debugf("rendered %d bytes", len(data))
	return data, nil
}
