/*
Package dotazure loads environment variables for an Azure Developer CLI (azd)
project.

When a project has been provisioned with azd, the active environment's
variables live in .azure/<environment>/.env under the directory containing
azure.yaml. dotazure finds that file from anywhere inside the project and
applies it to the process environment.

# Quick Start

The simplest way to use dotazure is with AutoLoad in your init function:

	package main

	import "github.com/presbrey/dotazure"

	func init() {
		dotazure.AutoLoad()
	}

Load returns whether a file was applied, and an error only for real
failures:

	loaded, err := dotazure.Load()
	if err != nil {
		log.Fatal(err)
	}
	if loaded {
		log.Println("loaded environment variables")
	}

# How It Works

Starting from the working directory, each directory up to the filesystem
root is checked for azure.yaml. The first match is the project directory:

	/src/myapp/
	├── azure.yaml
	├── .azure/
	│   ├── config.json         # {"defaultEnvironment": "dev"}
	│   ├── dev/
	│   │   └── .env            # Loaded
	│   └── prod/
	│       └── .env
	└── cmd/
	    └── main.go             # Your app runs here

Unless an environment name is given, the defaultEnvironment field of
.azure/config.json selects the environment.

No project, no config.json, and no .env are all expected states before a
project is provisioned. Load reports them by returning false rather than an
error. Permission errors, malformed JSON, and unreadable .env files are
returned as *Error values; use KindOf, IsNotFound, IsInvalidData or IsIo to
inspect them.

# Customizing

Build a Context to pick the starting directory or the environment, and use
a Loader to replace variables that are already set:

	b, err := dotazure.NewContextBuilder().EnvironmentName("prod")
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	loaded, err := dotazure.NewLoader().
		Context(ctx).
		Replace(true).
		Logger(log.Default()).
		Load()

# Thread Safety

Loading mutates the process environment. Concurrent loads racing on the
same variable names are not synchronized by this package.
*/
package dotazure
