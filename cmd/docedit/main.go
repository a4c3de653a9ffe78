// Package main provides the CLI entry point for docedit.
//
// Usage:
//
//	docedit apply --doc fixture.yaml -o result.json
//	docedit doctor --doc fixture.yaml
//	docedit fmt fixture.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/boergens/docedit/internal/doctor"
	"github.com/boergens/docedit/internal/fixture"
	"github.com/boergens/docedit/wire"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "apply":
		err = runApply(os.Args[2:])
	case "doctor":
		err = runDoctor(os.Args[2:])
	case "fmt":
		err = runFmt(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`docedit - a structured document edit engine

Usage:
  docedit apply --doc <fixture.yaml> [-o <out.json>]
  docedit doctor --doc <fixture.yaml>
  docedit fmt <fixture.yaml>
  docedit help
  docedit version

Commands:
  apply    Apply a fixture's steps to its document and print the result
  doctor   Audit a fixture's document for structural invariant violations
  fmt      Rewrite a fixture file in canonical YAML form
  help     Show this help message
  version  Show version information

Options:
  --doc     Path to a YAML document/step fixture (see internal/fixture)
  --config  Path to a TOML profile (preview width, severity threshold)
  -o        Output file path (default: stdout)`)
}

func printVersion() {
	fmt.Println("docedit version 0.1.0")
}

// profile is the shape of the --config TOML file.
type profile struct {
	// PreviewWidth is decoded from the profile but not passed to
	// doctor.Audit, which previews offending text at a fixed 24 graphemes.
	PreviewWidth int `toml:"preview_width"`
	// MinSeverity suppresses diagnostics below this severity ("warning"
	// or "error").
	MinSeverity string `toml:"min_severity"`
}

func defaultProfile() profile {
	return profile{PreviewWidth: 24, MinSeverity: "warning"}
}

func loadProfile(path string) (profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return profile{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return p, nil
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	docPath := fs.String("doc", "", "Path to a YAML document/step fixture")
	output := fs.String("o", "", "Output file path (default: stdout)")
	configPath := fs.String("config", "", "Path to a TOML profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := loadProfile(*configPath); err != nil {
		return err
	}
	if *docPath == "" {
		return fmt.Errorf("missing --doc")
	}

	f, err := fixture.Load(*docPath)
	if err != nil {
		return err
	}
	result, err := fixture.Apply(f)
	if err != nil {
		return err
	}

	data, err := wire.EncodeNode(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return writeOutput(*output, data)
}

func runDoctor(args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	docPath := fs.String("doc", "", "Path to a YAML document/step fixture")
	configPath := fs.String("config", "", "Path to a TOML profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	prof, err := loadProfile(*configPath)
	if err != nil {
		return err
	}
	if *docPath == "" {
		return fmt.Errorf("missing --doc")
	}

	f, err := fixture.Load(*docPath)
	if err != nil {
		return err
	}

	diags := doctor.Audit(f.Doc)
	shown := 0
	for _, d := range diags {
		if prof.MinSeverity == "error" && d.Severity != doctor.SeverityError {
			continue
		}
		fmt.Printf("%s [%s] %s: %s\n", d.Code, d.Severity, d.Path, d.Message)
		shown++
	}
	if shown == 0 {
		fmt.Println("no issues found")
		return nil
	}
	return fmt.Errorf("%d issue(s) found", shown)
}

func runFmt(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	output := fs.String("o", "", "Output file path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}

	f, err := fixture.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	data, err := fixture.Write(f)
	if err != nil {
		return err
	}
	return writeOutput(*output, data)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
