// cmd/arbgen/main.go
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// This binary is a code-generation tool.
//
// It reads a spec describing a struct type and how each field should be generated,
// then emits an Arbitrary method so the type opts into arb.Value and arb.Of.
//
// Key behaviors:
// - Reads spec JSON or YAML (by extension): package, type, fields, partial
// - Parses the package directory and checks the type is a struct whose fields the spec covers
// - Refuses to generate when the type already declares Arbitrary outside generated files
// - Reuses owner-file imports that field types or generator expressions refer to
// - Writes gofmt'ed output atomically (temp file + rename) to avoid partial writes

const (
	defaultArbImport = "github.com/sghaida/arbitrary/arb"
	randImport       = "math/rand/v2"
)

// Field describes how one struct field is generated.
// Exactly one of Type or Gen is normally set; Gen wins when both are.
type Field struct {
	// Name is the struct field name.
	Name string `json:"name" yaml:"name"`

	// Type is the Go type of the field, resolved with arb.Value[Type].
	Type string `json:"type" yaml:"type"`

	// Gen is a Go expression of type arb.Gen[FieldType] (or a function with that
	// signature), called as (Gen)(r, size).
	Gen string `json:"gen" yaml:"gen"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package string  `json:"package" yaml:"package"`
	Type    string  `json:"type" yaml:"type"`
	Fields  []Field `json:"fields" yaml:"fields"`

	// Partial allows struct fields that the spec does not list; they stay zero.
	Partial bool `json:"partial" yaml:"partial"`

	// ArbImport overrides the import path of the arb package.
	ArbImport string `json:"arbImport" yaml:"arbImport"`
}

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string
	Path  string
}

// typeInfo is what the generator learns about the target type from source.
type typeInfo struct {
	fields       []string
	hasArbitrary bool
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec        Spec
	ImportsList []ImportSpec
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("arbgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to type.arb.json or type.arb.yaml")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: arbgen -spec <file.arb.json|file.arb.yaml> -out <file.gen.go>")
		return 2
	}

	if err := generate(*specPath, filepath.Clean(*outPath)); err != nil {
		_, _ = fmt.Fprintln(stderr, "arbgen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// generate reads the spec, inspects the package, renders and writes the output.
func generate(specPath, generatedFilePath string) error {
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return err
	}

	spec, err := decodeSpec(specPath, specBytes)
	if err != nil {
		return fmt.Errorf("decode %s: %w", specPath, err)
	}
	if err := validateSpec(spec); err != nil {
		return err
	}

	packageDir := filepath.Dir(generatedFilePath)

	info, err := inspectType(packageDir, spec.Type)
	if err != nil {
		return err
	}
	if err := checkCoverage(spec, info); err != nil {
		return err
	}

	ownerGoFilePath, err := findOwnerGoGenerateFile(packageDir)
	if err != nil {
		// Without an owner file we can still generate; field types then
		// need no imports beyond rand and arb.
		ownerGoFilePath = ""
	}

	data := templateData{
		Spec:        *spec,
		ImportsList: resolveImports(ownerGoFilePath, spec),
	}

	src, err := render(data)
	if err != nil {
		return err
	}
	return writeFileAtomic(generatedFilePath, src, 0o644)
}

// decodeSpec picks YAML for .yaml/.yml files and JSON otherwise.
func decodeSpec(specPath string, data []byte) (*Spec, error) {
	var spec Spec
	switch strings.ToLower(filepath.Ext(specPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(spec.ArbImport) == "" {
		spec.ArbImport = defaultArbImport
	}
	return &spec, nil
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) error {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("type", spec.Type)

	if len(spec.Fields) == 0 {
		missingFields = append(missingFields, "fields (must have at least 1)")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("spec missing required fields: %v", missingFields)
	}

	seenNames := make(map[string]struct{}, len(spec.Fields))
	for _, field := range spec.Fields {
		if field.Name == "" || (field.Type == "" && field.Gen == "") {
			return fmt.Errorf("each field must have name and type or gen; got: %+v", field)
		}
		if _, ok := seenNames[field.Name]; ok {
			return fmt.Errorf("duplicate field name: %s", field.Name)
		}
		seenNames[field.Name] = struct{}{}
	}
	return nil
}

// isSourceFile filters out tests and generated files.
func isSourceFile(fileName string) bool {
	return strings.HasSuffix(fileName, ".go") &&
		!strings.HasSuffix(fileName, "_test.go") &&
		!strings.HasSuffix(fileName, ".gen.go")
}

// inspectType parses the package in sourceDir and describes typeName.
//
// The type must be a non-generic struct declared in the package. Methods named
// Arbitrary with a receiver of typeName or *typeName are reported.
func inspectType(sourceDir, typeName string) (typeInfo, error) {
	dirEntries, err := os.ReadDir(sourceDir)
	if err != nil {
		return typeInfo{}, err
	}

	var (
		info  typeInfo
		found bool
	)
	fileSet := token.NewFileSet()

	for _, entry := range dirEntries {
		if entry.IsDir() || !isSourceFile(entry.Name()) {
			continue
		}

		filePath := filepath.Join(sourceDir, entry.Name())
		parsedFile, err := parser.ParseFile(fileSet, filePath, nil, parser.SkipObjectResolution)
		if err != nil {
			return typeInfo{}, err
		}

		for _, declaration := range parsedFile.Decls {
			switch decl := declaration.(type) {
			case *ast.GenDecl:
				if decl.Tok != token.TYPE {
					continue
				}
				for _, s := range decl.Specs {
					typeSpec, ok := s.(*ast.TypeSpec)
					if !ok || typeSpec.Name.Name != typeName {
						continue
					}
					if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
						return typeInfo{}, fmt.Errorf("type %s is generic; write its Arbitrary method by hand", typeName)
					}
					structType, ok := typeSpec.Type.(*ast.StructType)
					if !ok {
						return typeInfo{}, fmt.Errorf("type %s is not a struct", typeName)
					}
					info.fields = structFieldNames(structType)
					found = true
				}

			case *ast.FuncDecl:
				if decl.Recv == nil || decl.Name.Name != "Arbitrary" || len(decl.Recv.List) != 1 {
					continue
				}
				if receiverTypeName(decl.Recv.List[0].Type) == typeName {
					info.hasArbitrary = true
				}
			}
		}
	}

	if !found {
		return typeInfo{}, fmt.Errorf("type %s not found in %s", typeName, sourceDir)
	}
	return info, nil
}

// structFieldNames lists field names in declaration order, naming embedded
// fields after their type.
func structFieldNames(structType *ast.StructType) []string {
	var names []string
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			names = append(names, receiverTypeName(field.Type))
			continue
		}
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}
	return names
}

// receiverTypeName strips pointers and package qualifiers: *pkg.T -> T.
func receiverTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.Ident:
		return e.Name
	}
	return ""
}

// checkCoverage ensures the spec and the struct agree.
func checkCoverage(spec *Spec, info typeInfo) error {
	if info.hasArbitrary {
		return fmt.Errorf("type %s already declares an Arbitrary method", spec.Type)
	}

	declared := make(map[string]struct{}, len(info.fields))
	for _, name := range info.fields {
		declared[name] = struct{}{}
	}

	listed := make(map[string]struct{}, len(spec.Fields))
	for _, field := range spec.Fields {
		if _, ok := declared[field.Name]; !ok {
			return fmt.Errorf("type %s has no field %s", spec.Type, field.Name)
		}
		listed[field.Name] = struct{}{}
	}

	if spec.Partial {
		return nil
	}

	var uncovered []string
	for _, name := range info.fields {
		if _, ok := listed[name]; !ok {
			uncovered = append(uncovered, name)
		}
	}
	if len(uncovered) > 0 {
		return fmt.Errorf("type %s fields not covered by spec: %v (set partial to leave them zero)", spec.Type, uncovered)
	}
	return nil
}

// findOwnerGoGenerateFile finds the Go source file in packageDir that contains a go:generate
// directive invoking cmd/arbgen.
func findOwnerGoGenerateFile(packageDir string) (string, error) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return "", err
	}

	for _, entry := range dirEntries {
		if entry.IsDir() || !isSourceFile(entry.Name()) {
			continue
		}

		filePath := filepath.Join(packageDir, entry.Name())
		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			// Best-effort: unreadable file shouldn't break generation.
			continue
		}

		if bytes.Contains(fileBytes, []byte("go:generate")) && bytes.Contains(fileBytes, []byte("cmd/arbgen")) {
			return filePath, nil
		}
	}

	return "", fmt.Errorf("could not find owner file with go:generate invoking cmd/arbgen in %s", packageDir)
}

// readImportsFromFile parses imports from a Go file.
func readImportsFromFile(goFilePath string) ([]ImportSpec, error) {
	fileSet := token.NewFileSet()
	parsedFile, err := parser.ParseFile(fileSet, goFilePath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var imports []ImportSpec
	for _, importDecl := range parsedFile.Imports {
		importPath := strings.Trim(importDecl.Path.Value, `"`)
		importAlias := ""
		if importDecl.Name != nil {
			importAlias = importDecl.Name.Name
		}
		imports = append(imports, ImportSpec{Alias: importAlias, Path: importPath})
	}

	return imports, nil
}

func ensureImport(imports *[]ImportSpec, required ImportSpec) {
	for _, existing := range *imports {
		if existing.Path == required.Path {
			// Don't duplicate the path; keep existing alias as-is.
			return
		}
	}
	*imports = append(*imports, required)
}

var (
	majorVersion  = regexp.MustCompile(`^v[0-9]+$`)
	gopkgInSuffix = regexp.MustCompile(`\.v[0-9]+$`)
)

// importIdent returns the identifier an import binds in the importing file.
// Major-version suffixes are skipped: math/rand/v2 binds rand and
// gopkg.in/yaml.v3 binds yaml.
func importIdent(imp ImportSpec) string {
	if imp.Alias != "" {
		return imp.Alias
	}
	p := strings.TrimSpace(imp.Path)
	base := path.Base(p)
	if majorVersion.MatchString(base) && strings.Contains(p, "/") {
		return path.Base(path.Dir(p))
	}
	return gopkgInSuffix.ReplaceAllString(base, "")
}

var qualifier = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.`)

// usedQualifiers collects package identifiers referenced by field types and generators.
func usedQualifiers(spec *Spec) map[string]struct{} {
	used := map[string]struct{}{}
	for _, field := range spec.Fields {
		expr := field.Gen
		if expr == "" {
			// arb.Value[T] references arb as well as T's qualifiers
			used["arb"] = struct{}{}
			expr = field.Type
		}
		for _, m := range qualifier.FindAllStringSubmatch(expr, -1) {
			used[m[1]] = struct{}{}
		}
	}
	return used
}

// resolveImports builds the final imports list for the generated file.
//
// Rules:
// - Always import math/rand/v2 (the Arbitrary signature needs it)
// - Import arb when a field uses arb.Value or an expression mentions arb
// - Keep owner imports only when a field type or generator refers to them,
//   so the generated file never carries unused imports
// - Drop owner imports that would shadow rand
func resolveImports(ownerFilePath string, spec *Spec) []ImportSpec {
	used := usedQualifiers(spec)

	finalImports := []ImportSpec{{Path: randImport}}
	if _, ok := used["arb"]; ok {
		ensureImport(&finalImports, ImportSpec{Path: spec.ArbImport})
	}

	if strings.TrimSpace(ownerFilePath) == "" {
		return finalImports
	}
	importsFromOwner, err := readImportsFromFile(ownerFilePath)
	if err != nil {
		// If parsing fails, rely on rand and arb only.
		return finalImports
	}

	for _, imp := range importsFromOwner {
		ident := importIdent(imp)
		if ident == "rand" || ident == "_" || ident == "." {
			continue
		}
		if _, ok := used[ident]; ok {
			ensureImport(&finalImports, imp)
		}
	}
	return finalImports
}

// genTemplate is the Go source template used to generate the Arbitrary method.
var genTemplate = template.Must(
	template.New("arbgen").Parse(`// Code generated by arbgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
{{- range .ImportsList}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// Arbitrary implements arb.Arbitrary for {{.Spec.Type}}.
func ({{.Spec.Type}}) Arbitrary(r *rand.Rand, size int) {{.Spec.Type}} {
	return {{.Spec.Type}}{
{{- range .Spec.Fields}}
		{{.Name}}: {{if .Gen}}({{.Gen}})(r, size){{else}}arb.Value[{{.Type}}](r, size){{end}},
{{- end}}
	}
}
`),
)

// errFormat marks generated code that gofmt rejects, usually a bad type or gen expression.
var errFormat = errors.New("generated code does not parse")

// render executes the template and gofmt's the result.
func render(data templateData) ([]byte, error) {
	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errFormat, err)
	}
	return formatted, nil
}

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
