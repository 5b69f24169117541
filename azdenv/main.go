package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"

	"github.com/presbrey/dotazure"
)

// contextView is the printable form of a resolved context
type contextView struct {
	ProjectDir      string `json:"projectDir" yaml:"projectDir"`
	EnvironmentName string `json:"environmentName" yaml:"environmentName"`
	EnvironmentFile string `json:"environmentFile" yaml:"environmentFile"`
	Exists          bool   `json:"exists" yaml:"exists"`
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: azdenv [options] [show|path|exec -- command [args...]]\n")
	flag.PrintDefaults()
}

func main() {
	dir := flag.String("C", "", "directory to start the project search from (default: working directory)")
	envName := flag.String("e", os.Getenv("AZURE_ENV_NAME"), "environment name (default: $AZURE_ENV_NAME, then defaultEnvironment from .azure/config.json)")
	replace := flag.Bool("replace", false, "replace variables that are already set")
	output := flag.String("o", "text", "output format for show: text, json or yaml")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("azdenv: ")

	args := flag.Args()
	cmd := "show"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	ctx, err := resolve(*dir, *envName)
	if err != nil {
		log.Fatalf("failed to resolve project: %v", err)
	}

	loader := dotazure.NewLoader().Context(ctx).Replace(*replace)
	if *verbose {
		loader = loader.Logger(log.New(os.Stderr, "azdenv: ", 0))
	}

	switch cmd {
	case "show":
		if err := show(os.Stdout, ctx, *output); err != nil {
			log.Fatal(err)
		}
	case "path":
		fmt.Println(ctx.EnvironmentFile())
	case "exec":
		os.Exit(run(loader, args))
	default:
		usage()
		os.Exit(2)
	}
}

func resolve(dir, envName string) (dotazure.Context, error) {
	b := dotazure.NewContextBuilder()
	var err error
	if dir != "" {
		if b, err = b.CurrentDir(dir); err != nil {
			return dotazure.Context{}, err
		}
	}
	if envName != "" {
		if b, err = b.EnvironmentName(envName); err != nil {
			return dotazure.Context{}, err
		}
	}
	return b.Build()
}

func show(w io.Writer, ctx dotazure.Context, format string) error {
	view := contextView{
		ProjectDir:      ctx.ProjectDir(),
		EnvironmentName: ctx.EnvironmentName(),
		EnvironmentFile: ctx.EnvironmentFile(),
	}
	if info, err := os.Stat(view.EnvironmentFile); err == nil && !info.IsDir() {
		view.Exists = true
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(view)
	case "text":
		_, err := fmt.Fprintf(w, "Project:     %s\nEnvironment: %s\nFile:        %s (exists: %t)\n",
			view.ProjectDir, view.EnvironmentName, view.EnvironmentFile, view.Exists)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// run loads the environment then runs args with it, returning the exit code.
func run(loader dotazure.Loader, args []string) int {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		log.Print("exec requires a command")
		return 2
	}

	loaded, err := loader.Load()
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	if !loaded {
		log.Printf("no environment file found; running without it")
	}

	c := exec.Command(args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		log.Printf("failed to run %s: %v", args[0], err)
		return 1
	}
	return 0
}
