package generator

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"golang.org/x/tools/imports"

	"github.com/openmgmt/yangtools/schema"
)

// GeneratedFile represents a single generated file.
type GeneratedFile struct {
	// Name is the file name (e.g., "interfaces_ids.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating code from a schema
// model.
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// ModuleName is the source module name
	ModuleName string
	// FeatureCount is the number of feature constants generated
	FeatureCount int
	// IdentityCount is the number of identity constants generated
	IdentityCount int
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
}

// GetFile returns the generated file with the given name, or nil if not found.
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles code generation from compiled schema models.
type Generator struct {
	// PackageName is the Go package name for generated code.
	// If empty, defaults to "ids".
	PackageName string

	// EmitFeatures enables feature constant generation.
	// Default: true
	EmitFeatures bool

	// EmitIdentities enables identity constant generation.
	// Default: true
	EmitIdentities bool

	// SkipObsolete omits identities with obsolete status.
	// Default: false
	SkipObsolete bool
}

// New creates a new Generator instance with default settings.
func New() *Generator {
	return &Generator{
		EmitFeatures:   true,
		EmitIdentities: true,
	}
}

// Generate emits Go constants for the module's features and identities.
func (g *Generator) Generate(mod *schema.Module) (*GenerateResult, error) {
	if mod == nil {
		return nil, fmt.Errorf("generator: module cannot be nil")
	}
	start := time.Now()

	pkg := g.PackageName
	if pkg == "" {
		pkg = "ids"
	}
	result := &GenerateResult{
		PackageName: pkg,
		ModuleName:  mod.Name,
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by yangtools for module %s. DO NOT EDIT.\n\n", mod.Name)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	if g.EmitFeatures && len(mod.Features) > 0 {
		names := sortedKeys(mod.Features)
		fmt.Fprintf(&buf, "// Features defined by module %s.\nconst (\n", mod.Name)
		for _, name := range names {
			fmt.Fprintf(&buf, "\t// Feature%s names the %q feature.\n", goName(name), name)
			fmt.Fprintf(&buf, "\tFeature%s = %q\n", goName(name), name)
			result.FeatureCount++
		}
		buf.WriteString(")\n\n")
	}

	if g.EmitIdentities && len(mod.Identities) > 0 {
		names := sortedKeys(mod.Identities)
		emitted := 0
		var ids bytes.Buffer
		for _, name := range names {
			id := mod.Identities[name]
			if g.SkipObsolete && id.Status == schema.StatusObsolete {
				continue
			}
			if id.Base != nil {
				fmt.Fprintf(&ids, "\t// Identity%s names the %q identity (base %q).\n",
					goName(name), name, id.Base.Name)
			} else {
				fmt.Fprintf(&ids, "\t// Identity%s names the %q identity.\n", goName(name), name)
			}
			fmt.Fprintf(&ids, "\tIdentity%s = %q\n", goName(name), name)
			emitted++
		}
		if emitted > 0 {
			fmt.Fprintf(&buf, "// Identities defined by module %s.\nconst (\n", mod.Name)
			buf.Write(ids.Bytes())
			buf.WriteString(")\n")
			result.IdentityCount = emitted
		}
	}

	fileName := fmt.Sprintf("%s_ids.go", goFileName(mod.Name))
	formatted, err := imports.Process(fileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generator: formatting %s: %w", fileName, err)
	}
	result.Files = append(result.Files, GeneratedFile{Name: fileName, Content: formatted})
	result.GenerateTime = time.Since(start)
	return result, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
