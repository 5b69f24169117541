package dotazure

import "github.com/joho/godotenv"

// Applier applies a variable file to the process environment.
//
// When replace is false, variables already present in the environment must
// be left alone. An error matching fs.ErrNotExist means the file is absent.
type Applier interface {
	Apply(path string, replace bool) error
}

// ApplierFunc adapts a function to an Applier.
type ApplierFunc func(path string, replace bool) error

// Apply calls f(path, replace).
func (f ApplierFunc) Apply(path string, replace bool) error {
	return f(path, replace)
}

// DotenvApplier applies files with github.com/joho/godotenv.
type DotenvApplier struct{}

// Apply loads path with godotenv.Overload when replace is set, otherwise godotenv.Load.
func (DotenvApplier) Apply(path string, replace bool) error {
	if replace {
		return godotenv.Overload(path)
	}
	return godotenv.Load(path)
}
