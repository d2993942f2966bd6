package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/config"
	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

// FileVersion is the schema version written to new project files.
const FileVersion = "1"

// ErrNotExist is returned by Load when the project file is missing.
var ErrNotExist = errors.New("project file does not exist")

// File is the on-disk layout of a project.
type File struct {
	Version      string `yaml:"version"`
	studio.State `yaml:",inline"`
}

// Load reads and validates a project file.
func Load(path string) (studio.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return studio.State{}, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return studio.State{}, gridsmitherrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return studio.State{}, gridsmitherrors.NewParseError(path, lineOf(err), err)
	}
	if file.Version != FileVersion {
		return studio.State{}, gridsmitherrors.NewValidationError("version",
			fmt.Sprintf("unsupported project version %q (expected %q)", file.Version, FileVersion), nil)
	}
	if err := config.ValidateTheme(file.Theme); err != nil {
		return studio.State{}, err
	}
	if err := file.Design.Document.Validate(); err != nil {
		return studio.State{}, gridsmitherrors.NewValidationError("design.document", err.Error(), err)
	}
	if err := file.Design.ValidateHistory(); err != nil {
		return studio.State{}, gridsmitherrors.NewValidationError("design.history", err.Error(), err)
	}

	return file.State, nil
}

// Open loads the project at path and resumes a studio session from it.
func Open(path string, opts ...studio.Option) (*studio.Service, error) {
	state, err := Load(path)
	if err != nil {
		return nil, err
	}
	return studio.Restore(state, opts...)
}

// Save writes state to path atomically, creating parent directories as needed.
func Save(path string, state studio.State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := Marshal(state)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set project file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Marshal renders state in the project file format.
func Marshal(state studio.State) ([]byte, error) {
	data, err := yaml.Marshal(File{Version: FileVersion, State: state})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}
	return data, nil
}

// Exists reports whether a project file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
