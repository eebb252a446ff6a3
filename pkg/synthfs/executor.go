// Package synthfs adapts the synthfs operation pipeline as the
// repository's mutation executor. Every directory creation and file
// copy is validated against the repository root before it runs, so the
// organize pipeline can never write outside the repository.
package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/assort/pkg/errors"
	"github.com/arthur-debert/assort/pkg/logging"
	"github.com/arthur-debert/assort/pkg/paths"
)

// Executor runs repository mutations through synthfs pipelines. It
// satisfies repository.Executor.
type Executor struct {
	logger     zerolog.Logger
	filesystem synthfs.FileSystem
	paths      paths.Paths
}

// NewExecutor creates a synthfs-backed executor scoped to the given
// repository paths.
func NewExecutor(p paths.Paths) *Executor {
	return &Executor{
		logger:     logging.GetLogger("synthfs"),
		filesystem: filesystem.NewOSFileSystem("/"),
		paths:      p,
	}
}

// CreateDir creates the directory at abs, parents included.
func (e *Executor) CreateDir(abs string) error {
	if err := e.validateRepoPath(abs); err != nil {
		return err
	}

	relPath, err := filepath.Rel("/", abs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", abs)
	}

	e.logger.Debug().Str("dir", abs).Msg("creating directory")

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", abs))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: os.FileMode(0755),
	})

	return e.run(synthfs.NewOperationsPackageAdapter(createOp))
}

// CopyFile copies the file at srcAbs to dstAbs.
func (e *Executor) CopyFile(srcAbs, dstAbs string) error {
	if err := e.validateRepoPath(dstAbs); err != nil {
		return err
	}

	relSource, err := filepath.Rel("/", srcAbs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert source path: %s", srcAbs)
	}
	relTarget, err := filepath.Rel("/", dstAbs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert target path: %s", dstAbs)
	}

	e.logger.Debug().Str("source", srcAbs).Str("target", dstAbs).Msg("copying file")

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", filepath.Base(srcAbs), dstAbs))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	return e.run(synthfs.NewOperationsPackageAdapter(copyOp))
}

// run executes a single operation in its own pipeline. One pipeline
// per mutation keeps item-level failures isolated: a failed copy must
// not abort the copies that follow it.
func (e *Executor) run(op synthfs.Operation) error {
	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(op); err != nil {
		return errors.Wrap(err, errors.ErrInternal,
			"failed to add operation to pipeline")
	}

	executor := synthfs.NewExecutor()
	result := executor.Run(context.Background(), pipeline, e.filesystem)
	if result.GetError() != nil {
		return errors.Wrap(result.GetError(), errors.ErrFileWrite,
			"pipeline execution failed")
	}
	return nil
}

// validateRepoPath rejects mutation targets outside the repository root.
func (e *Executor) validateRepoPath(abs string) error {
	normalized, err := filepath.Abs(abs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to normalize path: %s", abs)
	}

	root := filepath.Clean(e.paths.RepoRoot())
	rel, err := filepath.Rel(root, filepath.Clean(normalized))
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return errors.Newf(errors.ErrInvalidInput,
			"mutation target is outside the repository: %s", abs)
	}
	return nil
}

// directoryItem carries the metadata synthfs directory operations need
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
