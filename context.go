package dotazure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

const (
	// ProjectFileName marks the root directory of a project.
	ProjectFileName = "azure.yaml"
	// EnvironmentDirName is the directory under the project root holding all environments.
	EnvironmentDirName = ".azure"
	// ConfigFileName is the project config under EnvironmentDirName.
	ConfigFileName = "config.json"
	// EnvironmentFileName is the variable file inside each environment directory.
	EnvironmentFileName = ".env"
)

var validate = validator.New()

// Context identifies a project root and its active environment.
// Obtain one from ContextBuilder.Build.
type Context struct {
	projectDir      string
	environmentName string
}

// ProjectDir is the absolute path of the directory containing azure.yaml.
func (c Context) ProjectDir() string { return c.projectDir }

// EnvironmentName is the name of the active environment.
func (c Context) EnvironmentName() string { return c.environmentName }

// ProjectPath returns the path to azure.yaml.
func (c Context) ProjectPath() string {
	return filepath.Join(c.projectDir, ProjectFileName)
}

// EnvironmentDir returns the directory containing all environments.
func (c Context) EnvironmentDir() string {
	return filepath.Join(c.projectDir, EnvironmentDirName)
}

// ConfigPath returns the path to the project's config.json.
func (c Context) ConfigPath() string {
	return filepath.Join(c.EnvironmentDir(), ConfigFileName)
}

// EnvironmentRoot returns the directory of the active environment.
func (c Context) EnvironmentRoot() string {
	return filepath.Join(c.EnvironmentDir(), c.environmentName)
}

// EnvironmentFile returns the .env file of the active environment.
func (c Context) EnvironmentFile() string {
	return filepath.Join(c.EnvironmentRoot(), EnvironmentFileName)
}

func (c Context) String() string {
	return fmt.Sprintf("%s (%s)", c.environmentName, c.projectDir)
}

// ContextBuilder collects the optional inputs used to resolve a Context.
// The zero value starts from the working directory and reads the default
// environment from config.json.
type ContextBuilder struct {
	currentDir      string
	environmentName string
}

// NewContextBuilder returns an empty ContextBuilder.
func NewContextBuilder() ContextBuilder {
	return ContextBuilder{}
}

// CurrentDir sets the directory the project search starts from.
// The directory must exist.
func (b ContextBuilder) CurrentDir(path string) (ContextBuilder, error) {
	if err := validate.Var(path, "required,dir"); err != nil {
		msg := fmt.Sprintf("directory %q does not exist", path)
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			msg = fmt.Sprintf("%q is not a directory", path)
		}
		return b, wrapError(KindIo, err, msg)
	}
	b.currentDir = path
	return b, nil
}

// EnvironmentName sets the environment to use instead of the project's default.
func (b ContextBuilder) EnvironmentName(name string) (ContextBuilder, error) {
	if err := validate.Var(name, "required"); err != nil {
		return b, wrapError(KindInvalidData, err, "environment name cannot be empty")
	}
	b.environmentName = name
	return b, nil
}

// Build finds the nearest directory at or above the starting directory
// containing azure.yaml and resolves the environment name.
//
// The filesystem is consulted on every call.
func (b ContextBuilder) Build() (Context, error) {
	start := b.currentDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Context{}, wrapError(KindIo, err, "failed to get working directory")
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return Context{}, wrapError(KindIo, err, "failed to resolve starting directory")
	}

	projectDir, err := findProjectDir(start)
	if err != nil {
		return Context{}, err
	}

	name := b.environmentName
	if name == "" {
		path := filepath.Join(projectDir, EnvironmentDirName, ConfigFileName)
		if name, err = readDefaultEnvironment(path); err != nil {
			return Context{}, err
		}
	}

	return Context{
		projectDir:      projectDir,
		environmentName: name,
	}, nil
}

// findProjectDir walks from dir up to the filesystem root and returns the
// first directory containing ProjectFileName.
func findProjectDir(dir string) (string, error) {
	for {
		info, err := os.Stat(filepath.Join(dir, ProjectFileName))
		if err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", newError(KindNotFound, "no project exists; to create a new project, run `azd init`")
}
