package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/openmgmt/yangtools/schema"
)

// schemaDoc is the YAML shape of a compiled schema model document.
type schemaDoc struct {
	Module      string        `yaml:"module"`
	Namespace   string        `yaml:"namespace"`
	Prefix      string        `yaml:"prefix"`
	YANGVersion string        `yaml:"yang-version"`
	Features    []featureDoc  `yaml:"features"`
	Identities  []identityDoc `yaml:"identities"`
	Data        []nodeDoc     `yaml:"data"`
}

type featureDoc struct {
	Name string `yaml:"name"`
	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled"`
}

type identityDoc struct {
	Name       string   `yaml:"name"`
	Base       string   `yaml:"base"`
	Status     string   `yaml:"status"`
	IfFeatures []string `yaml:"if-features"`
}

type nodeDoc struct {
	Name        string    `yaml:"name"`
	Kind        string    `yaml:"kind"`
	Config      *bool     `yaml:"config"`
	Status      string    `yaml:"status"`
	Mandatory   bool      `yaml:"mandatory"`
	MinElements uint32    `yaml:"min-elements"`
	MaxElements uint32    `yaml:"max-elements"`
	Keys        []string  `yaml:"keys"`
	Unique      []string  `yaml:"unique"`
	IfFeatures  []string  `yaml:"if-features"`
	Type        *typeDoc  `yaml:"type"`
	Default     *string   `yaml:"default"`
	HasWhen     bool      `yaml:"has-when"`
	HasMust     bool      `yaml:"has-must"`
	Children    []nodeDoc `yaml:"children"`
}

type typeDoc struct {
	Name         string    `yaml:"name"`
	Kind         string    `yaml:"kind"`
	Base         *typeDoc  `yaml:"base"`
	Enums        []enumDoc `yaml:"enums"`
	Bits         []bitDoc  `yaml:"bits"`
	IdentityBase string    `yaml:"identity-base"`
	LeafrefPath  string    `yaml:"leafref-path"`
	Members      []typeDoc `yaml:"members"`
	Lengths      []string  `yaml:"lengths"`
	Patterns     []string  `yaml:"patterns"`
	Ranges       []string  `yaml:"ranges"`
}

type enumDoc struct {
	Name       string   `yaml:"name"`
	Value      int32    `yaml:"value"`
	Status     string   `yaml:"status"`
	IfFeatures []string `yaml:"if-features"`
}

type bitDoc struct {
	Name       string   `yaml:"name"`
	Position   uint32   `yaml:"position"`
	Status     string   `yaml:"status"`
	IfFeatures []string `yaml:"if-features"`
}

// ParseSchema loads a compiled schema model document and builds the
// module it describes. Extension definitions carry Go callbacks and are
// attached programmatically after loading, not read from the document.
func ParseSchema(opts ...Option) (*schema.Module, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	raw, err := cfg.readInput()
	if err != nil {
		return nil, err
	}

	var doc schemaDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parser: %s: invalid schema document: %w", cfg.source(), err)
	}
	mod, err := buildModule(&doc)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: %w", cfg.source(), err)
	}
	cfg.log().Debug("loaded schema model",
		"module", mod.Name, "features", len(mod.Features), "identities", len(mod.Identities))
	return mod, nil
}

func buildModule(doc *schemaDoc) (*schema.Module, error) {
	if doc.Module == "" {
		return nil, fmt.Errorf("schema document missing module name")
	}
	mod := &schema.Module{
		Name:       doc.Module,
		Namespace:  doc.Namespace,
		Prefix:     doc.Prefix,
		Features:   make(map[string]*schema.Feature),
		Identities: make(map[string]*schema.Identity),
	}
	switch doc.YANGVersion {
	case "", "1", "1.0":
		mod.Version = schema.Version1
	case "1.1":
		mod.Version = schema.Version1_1
	default:
		return nil, fmt.Errorf("unsupported yang-version %q", doc.YANGVersion)
	}

	for _, f := range doc.Features {
		if f.Name == "" {
			return nil, fmt.Errorf("feature missing name")
		}
		feat := &schema.Feature{Name: f.Name, Module: mod}
		if f.Enabled == nil || *f.Enabled {
			feat.Enable()
		}
		mod.Features[f.Name] = feat
	}

	// First pass registers identities so bases can be declared in any order.
	for _, id := range doc.Identities {
		if id.Name == "" {
			return nil, fmt.Errorf("identity missing name")
		}
		status, err := parseStatus(id.Status)
		if err != nil {
			return nil, fmt.Errorf("identity %q: %w", id.Name, err)
		}
		feats, err := resolveFeatures(mod, id.IfFeatures)
		if err != nil {
			return nil, fmt.Errorf("identity %q: %w", id.Name, err)
		}
		mod.Identities[id.Name] = &schema.Identity{
			Name:     id.Name,
			Module:   mod,
			Status:   status,
			Features: feats,
		}
	}
	for _, id := range doc.Identities {
		if id.Base == "" {
			continue
		}
		base := mod.Identities[id.Base]
		if base == nil {
			return nil, fmt.Errorf("identity %q: unknown base %q", id.Name, id.Base)
		}
		mod.Identities[id.Name].Base = base
	}

	for i := range doc.Data {
		n, err := buildNode(mod, nil, &doc.Data[i])
		if err != nil {
			return nil, err
		}
		mod.Data = append(mod.Data, n)
	}
	return mod, nil
}

func buildNode(mod *schema.Module, parent *schema.Node, doc *nodeDoc) (*schema.Node, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("schema node missing name")
	}
	kind, err := parseKind(doc.Kind)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", doc.Name, err)
	}
	status, err := parseStatus(doc.Status)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", doc.Name, err)
	}
	feats, err := resolveFeatures(mod, doc.IfFeatures)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", doc.Name, err)
	}

	n := &schema.Node{
		Name:        doc.Name,
		Module:      mod,
		Kind:        kind,
		Parent:      parent,
		Status:      status,
		Mandatory:   doc.Mandatory,
		MinElements: doc.MinElements,
		MaxElements: doc.MaxElements,
		Features:    feats,
		HasWhen:     doc.HasWhen,
		HasMust:     doc.HasMust,
	}
	if doc.Default != nil {
		n.Default = *doc.Default
		n.HasDefault = true
	}
	switch {
	case doc.Config == nil:
		n.Config = schema.TSUnset
	case *doc.Config:
		n.Config = schema.TSTrue
	default:
		n.Config = schema.TSFalse
	}

	if doc.Type != nil {
		t, err := buildType(mod, doc.Type)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", doc.Name, err)
		}
		n.Type = t
	}

	for i := range doc.Children {
		child, err := buildNode(mod, n, &doc.Children[i])
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}

	// Keys resolve against direct children, in declared key order.
	for _, keyName := range doc.Keys {
		if kind != schema.KindList {
			return nil, fmt.Errorf("node %q: keys on non-list node", doc.Name)
		}
		var key *schema.Node
		for _, child := range n.Children {
			if child.Name == keyName {
				key = child
				break
			}
		}
		if key == nil {
			return nil, fmt.Errorf("node %q: key %q is not a child", doc.Name, keyName)
		}
		if key.Kind != schema.KindLeaf {
			return nil, fmt.Errorf("node %q: key %q is not a leaf", doc.Name, keyName)
		}
		n.Keys = append(n.Keys, key)
	}

	// Each unique entry is a space-separated set of descendant paths, the
	// way the YANG unique argument is written.
	for _, uniq := range doc.Unique {
		set := strings.Fields(uniq)
		if len(set) == 0 {
			return nil, fmt.Errorf("node %q: empty unique set", doc.Name)
		}
		for _, path := range set {
			if n.FindDescendant(strings.Split(path, "/")) == nil {
				return nil, fmt.Errorf("node %q: unique path %q does not name a descendant", doc.Name, path)
			}
		}
		n.Uniques = append(n.Uniques, set)
	}
	return n, nil
}

func buildType(mod *schema.Module, doc *typeDoc) (*schema.Type, error) {
	kind, err := parseTypeKind(doc.Kind)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", doc.Name, err)
	}
	t := &schema.Type{
		Name:        doc.Name,
		Kind:        kind,
		LeafrefPath: doc.LeafrefPath,
	}

	if doc.Base != nil {
		base, err := buildType(mod, doc.Base)
		if err != nil {
			return nil, err
		}
		if base.Kind != kind {
			return nil, fmt.Errorf("type %q: base kind %q does not match %q", doc.Name, doc.Base.Kind, doc.Kind)
		}
		t.Base = base
	}

	for _, e := range doc.Enums {
		status, err := parseStatus(e.Status)
		if err != nil {
			return nil, fmt.Errorf("type %q enum %q: %w", doc.Name, e.Name, err)
		}
		feats, err := resolveFeatures(mod, e.IfFeatures)
		if err != nil {
			return nil, fmt.Errorf("type %q enum %q: %w", doc.Name, e.Name, err)
		}
		t.Enums = append(t.Enums, &schema.EnumValue{
			Name:     e.Name,
			Value:    e.Value,
			Status:   status,
			Features: feats,
		})
	}
	for _, b := range doc.Bits {
		status, err := parseStatus(b.Status)
		if err != nil {
			return nil, fmt.Errorf("type %q bit %q: %w", doc.Name, b.Name, err)
		}
		feats, err := resolveFeatures(mod, b.IfFeatures)
		if err != nil {
			return nil, fmt.Errorf("type %q bit %q: %w", doc.Name, b.Name, err)
		}
		t.Bits = append(t.Bits, &schema.BitValue{
			Name:     b.Name,
			Position: b.Position,
			Status:   status,
			Features: feats,
		})
	}

	if doc.IdentityBase != "" {
		base := mod.Identities[doc.IdentityBase]
		if base == nil {
			return nil, fmt.Errorf("type %q: unknown identity base %q", doc.Name, doc.IdentityBase)
		}
		t.IdentityBase = base
	}

	for i := range doc.Members {
		m, err := buildType(mod, &doc.Members[i])
		if err != nil {
			return nil, err
		}
		t.Members = append(t.Members, m)
	}

	for _, arg := range doc.Lengths {
		t.Lengths = append(t.Lengths, &schema.Restriction{Arg: arg})
	}
	for _, arg := range doc.Patterns {
		t.Patterns = append(t.Patterns, &schema.Restriction{Arg: arg})
	}
	for _, arg := range doc.Ranges {
		t.Ranges = append(t.Ranges, &schema.Restriction{Arg: arg})
	}
	return t, nil
}

func parseKind(s string) (schema.Kind, error) {
	switch s {
	case "container":
		return schema.KindContainer, nil
	case "list":
		return schema.KindList, nil
	case "leaf":
		return schema.KindLeaf, nil
	case "leaf-list":
		return schema.KindLeafList, nil
	case "choice":
		return schema.KindChoice, nil
	case "case":
		return schema.KindCase, nil
	case "uses":
		return schema.KindUses, nil
	case "anydata", "anyxml":
		return schema.KindAnydata, nil
	case "rpc":
		return schema.KindRPC, nil
	case "action":
		return schema.KindAction, nil
	case "notification":
		return schema.KindNotification, nil
	case "input":
		return schema.KindInput, nil
	case "output":
		return schema.KindOutput, nil
	default:
		return 0, fmt.Errorf("unknown node kind %q", s)
	}
}

func parseTypeKind(s string) (schema.TypeKind, error) {
	switch s {
	case "", "string":
		return schema.TypeString, nil
	case "boolean":
		return schema.TypeBool, nil
	case "int", "int8", "int16", "int32", "int64":
		return schema.TypeInt, nil
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return schema.TypeUint, nil
	case "decimal64":
		return schema.TypeDecimal64, nil
	case "binary":
		return schema.TypeBinary, nil
	case "empty":
		return schema.TypeEmpty, nil
	case "enumeration":
		return schema.TypeEnum, nil
	case "bits":
		return schema.TypeBits, nil
	case "identityref":
		return schema.TypeIdentityref, nil
	case "leafref":
		return schema.TypeLeafref, nil
	case "instance-identifier":
		return schema.TypeInstanceID, nil
	case "union":
		return schema.TypeUnion, nil
	default:
		return 0, fmt.Errorf("unknown type kind %q", s)
	}
}

func parseStatus(s string) (schema.Status, error) {
	switch s {
	case "", "current":
		return schema.StatusCurrent, nil
	case "deprecated":
		return schema.StatusDeprecated, nil
	case "obsolete":
		return schema.StatusObsolete, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

func resolveFeatures(mod *schema.Module, names []string) ([]*schema.Feature, error) {
	if len(names) == 0 {
		return nil, nil
	}
	feats := make([]*schema.Feature, 0, len(names))
	for _, name := range names {
		f := mod.Features[name]
		if f == nil {
			return nil, fmt.Errorf("unknown feature %q", name)
		}
		feats = append(feats, f)
	}
	return feats, nil
}
