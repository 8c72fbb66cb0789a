package cli

import (
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/bairiak/internal/codegen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output   string // output file; only with a single spec
	Package  string // package clause; defaults to $GOPACKAGE or the output directory
	Manifest string // layout manifest file; only with a single spec
}

// GenerateResult describes one written file.
type GenerateResult struct {
	Spec        string   `json:"spec"`
	Output      string   `json:"output"`
	Package     string   `json:"package"`
	Fingerprint string   `json:"fingerprint"`
	Enums       []string `json:"enums"`
	Manifest    string   `json:"manifest,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <spec>...",
		Short: "Generate Go flag types from specs",
		Long: `Generate Go flag types from YAML or CUE specs.

Each spec is written to <spec>_bairiak.go next to the spec unless --output
is given. Every spec is validated and generated before any file is written:
if one spec fails, nothing is written.

Use from go generate:

	//go:generate go run github.com/roach88/bairiak/cmd/bairiak generate flags.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (single spec only)")
	cmd.Flags().StringVarP(&opts.Package, "package", "p", "", "package name (default $GOPACKAGE or output directory name)")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "write the canonical JSON layout manifest to this file (single spec only)")

	return cmd
}

type generateJob struct {
	spec     string
	output   string
	pkg      string
	artifact *codegen.Artifact
	manifest []byte
	err      error
}

func runGenerate(opts *GenerateOptions, specs []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)
	logger := opts.newLogger(cmd.ErrOrStderr())

	if len(specs) > 1 && (opts.Output != "" || opts.Manifest != "") {
		return fail(formatter, &LoadError{
			Code:    ErrCodeInvalidArgs,
			Message: "--output and --manifest need exactly one spec",
		})
	}

	jobs := make([]*generateJob, len(specs))
	for i, spec := range specs {
		output := opts.Output
		if output == "" {
			output = defaultOutput(spec)
		}
		pkg := opts.Package
		if pkg == "" {
			pkg = defaultPackage(output)
		}
		jobs[i] = &generateJob{spec: spec, output: output, pkg: pkg}
	}
	if err := checkOutputs(jobs, opts.Manifest); err != nil {
		return fail(formatter, err)
	}

	// Generate everything first; files are only written once every spec
	// has succeeded.
	var g errgroup.Group
	for _, job := range jobs {
		g.Go(func() error {
			job.err = job.run(logger, opts.Manifest != "")
			return job.err
		})
	}
	if err := g.Wait(); err != nil {
		// Report the first failing spec in argument order, not whichever
		// finished first.
		for _, job := range jobs {
			if job.err != nil {
				return fail(formatter, job.err)
			}
		}
		return fail(formatter, err)
	}

	var files []pendingFile
	results := make([]GenerateResult, 0, len(jobs))
	for _, job := range jobs {
		files = append(files, pendingFile{path: job.output, data: job.artifact.Code, what: "writing generated code"})
		result := GenerateResult{
			Spec:        job.spec,
			Output:      job.output,
			Package:     job.pkg,
			Fingerprint: job.artifact.Fingerprint,
		}
		for _, e := range job.artifact.Enums {
			result.Enums = append(result.Enums, e.Name)
		}
		if opts.Manifest != "" {
			files = append(files, pendingFile{path: opts.Manifest, data: job.manifest, what: "writing manifest"})
			result.Manifest = opts.Manifest
		}
		results = append(results, result)
	}
	if err := writeAll(files); err != nil {
		return fail(formatter, err)
	}
	for _, f := range files {
		formatter.VerboseLog("Wrote %s (%d bytes)", f.path, len(f.data))
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for i, r := range results {
		fmt.Fprintf(formatter.Writer, "✓ Generated %s from %s\n", r.Output, r.Spec)
		for _, e := range jobs[i].artifact.Enums {
			fmt.Fprintf(formatter.Writer, "  %s: %d flag(s), %s\n", e.Name, len(e.Variants), e.Width)
		}
	}
	return nil
}

func (j *generateJob) run(logger *slog.Logger, manifest bool) error {
	m, err := LoadSpec(j.spec)
	if err != nil {
		return err
	}
	logger.Debug("loaded spec", "spec", j.spec, "enums", len(m.Enums))

	a, err := codegen.Generate(m, codegen.Options{
		Package: j.pkg,
		Source:  filepath.Base(j.spec),
		Logger:  logger.With("spec", j.spec),
	})
	if err != nil {
		return err
	}
	j.artifact = a

	if manifest {
		j.manifest, err = codegen.MarshalManifest(a)
		if err != nil {
			return err
		}
	}
	return nil
}

// checkOutputs rejects two jobs, or a job and the manifest, that would
// write the same file.
func checkOutputs(jobs []*generateJob, manifest string) error {
	seen := make(map[string]string, len(jobs)+1)
	claim := func(path, owner string) error {
		key, err := filepath.Abs(path)
		if err != nil {
			key = filepath.Clean(path)
		}
		if prev, ok := seen[key]; ok {
			return &LoadError{
				Code:    ErrCodeInvalidArgs,
				Path:    path,
				Message: fmt.Sprintf("written by both %s and %s", prev, owner),
			}
		}
		seen[key] = owner
		return nil
	}
	for _, job := range jobs {
		if err := claim(job.output, job.spec); err != nil {
			return err
		}
	}
	if manifest != "" {
		return claim(manifest, "--manifest")
	}
	return nil
}

type pendingFile struct {
	path string
	data []byte
	what string
}

// writeAll stages every file as a temporary sibling and renames them into
// place only once all of them were written, so a failed write leaves no
// output behind.
func writeAll(files []pendingFile) error {
	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, t := range temps {
			_ = os.Remove(t)
		}
	}

	for _, f := range files {
		tmp, err := stageFile(f)
		if err != nil {
			cleanup()
			return &LoadError{Code: ErrCodeWriteFailed, Path: f.path, Message: f.what, Err: err}
		}
		temps = append(temps, tmp)
	}
	for i, f := range files {
		if err := os.Rename(temps[i], f.path); err != nil {
			cleanup()
			return &LoadError{Code: ErrCodeWriteFailed, Path: f.path, Message: f.what, Err: err}
		}
	}
	return nil
}

func stageFile(f pendingFile) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(f.data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// defaultOutput places <base>_bairiak.go next to spec.
func defaultOutput(spec string) string {
	base := strings.TrimSuffix(filepath.Base(spec), filepath.Ext(spec))
	return filepath.Join(filepath.Dir(spec), base+"_bairiak.go")
}

// defaultPackage prefers $GOPACKAGE, which go generate sets, and otherwise
// derives a package name from the directory the output goes to.
func defaultPackage(output string) string {
	if pkg := os.Getenv("GOPACKAGE"); pkg != "" {
		return pkg
	}
	dir, err := filepath.Abs(filepath.Dir(output))
	if err != nil {
		return codegen.DefaultPackage
	}
	return sanitizePackage(filepath.Base(dir))
}

// sanitizePackage lowercases name and drops every rune that cannot appear
// in a package name.
func sanitizePackage(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	pkg := b.String()
	if pkg == "" || unicode.IsDigit([]rune(pkg)[0]) || token.IsKeyword(pkg) {
		return codegen.DefaultPackage
	}
	return pkg
}
