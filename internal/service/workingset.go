package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
)

// WorkingSetManager owns the per-job directories under one work root.
type WorkingSetManager struct {
	workDir string
}

func NewWorkingSetManager(workDir string) *WorkingSetManager {
	return &WorkingSetManager{workDir: workDir}
}

// Prepare creates <work_dir>/job-<id>/<role> for every role. Directories left
// over from an earlier run are reused. On failure the partially prepared set
// is returned with the error so the caller can tear it down.
func (m *WorkingSetManager) Prepare(job *domain.Job) (*domain.WorkingSet, error) {
	root := filepath.Join(m.workDir, "job-"+strconv.FormatInt(job.ID, 10))
	ws := &domain.WorkingSet{
		JobID: job.ID,
		Root:  root,
		Dirs:  make(map[domain.Role]string, len(domain.Roles())),
	}

	for _, role := range domain.Roles() {
		dir := filepath.Join(root, string(role))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ws, fmt.Errorf("create %s directory: %w", role, err)
		}
		ws.Dirs[role] = dir
	}
	return ws, nil
}

// Teardown removes the role directories and the job root unless keep is set.
func (m *WorkingSetManager) Teardown(ws *domain.WorkingSet, keep bool) error {
	if ws == nil {
		return nil
	}
	if keep {
		logger.Info.Printf("keeping working directories under %s", ws.Root)
		return nil
	}

	var err error
	for _, role := range domain.Roles() {
		if dir := ws.Dir(role); dir != "" {
			err = multierr.Append(err, os.RemoveAll(dir))
		}
	}
	err = multierr.Append(err, os.RemoveAll(ws.Root))
	if err != nil {
		return fmt.Errorf("teardown %s: %w", ws.Root, err)
	}
	return nil
}
