package terraform

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	parserName  = "terraform"
	lockFile    = ".terraform.lock.hcl"
	minMatchLen = 6
)

//nolint:gochecknoglobals // compiled once
var (
	providerPattern = regexp.MustCompile(`(?m)^\s*provider\s+"([^"]+)"`)
	modulePattern   = regexp.MustCompile(`(?s)module\s+"([^"]+)"\s*\{[^}]*source\s*=\s*"([^"]+)"`)
	refPattern      = regexp.MustCompile(`\?ref=[^&\s"]+`)
)

// TerraformParserRepository reads provider requirements and module sources from
// Terraform configuration and the providers pinned in .terraform.lock.hcl.
type TerraformParserRepository struct{}

// NewParserRepository creates the Terraform parser.
func NewParserRepository() repositories.ParserRepository {
	return &TerraformParserRepository{}
}

func (p *TerraformParserRepository) Name() string { return parserName }

func (p *TerraformParserRepository) Supports(filename string) bool {
	return path.Base(filename) == lockFile || path.Ext(filename) == ".tf"
}

// Parse falls back to a regular expression scan when the HCL parser rejects the file.
func (p *TerraformParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	var err error
	if path.Base(filename) == lockFile {
		deps, err = scanLockFile(content, filename)
	} else {
		deps, err = scanConfiguration(content, filename)
	}
	if err == nil {
		return deps, nil
	}

	logger.Debugf("[terraform] HCL parsing of %s failed, falling back to regex: %v", filename, err)
	deps = scanWithRegex(content)
	if deps.Len() == 0 {
		return deps, err
	}
	return deps, nil
}

func scanLockFile(content, filename string) (entities.DependencySet, error) {
	body, err := parseBody(content, filename)
	if err != nil {
		return nil, err
	}

	bodyContent, _, diags := body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "provider", LabelNames: []string{"source"}},
		},
	})
	if diags.HasErrors() {
		return nil, diags
	}

	deps := entities.NewDependencySet()
	for _, block := range bodyContent.Blocks {
		if len(block.Labels) > 0 {
			deps.Add(block.Labels[0])
		}
	}
	return deps, nil
}

func scanConfiguration(content, filename string) (entities.DependencySet, error) {
	body, err := parseBody(content, filename)
	if err != nil {
		return nil, err
	}

	bodyContent, _, diags := body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "terraform"},
			{Type: "module", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return nil, diags
	}

	deps := entities.NewDependencySet()
	for _, block := range bodyContent.Blocks {
		switch block.Type {
		case "terraform":
			addRequiredProviders(deps, block.Body)
		case "module":
			if source, ok := moduleSource(block.Body); ok {
				deps.Add(removeVersionFromSource(source))
			}
		}
	}
	return deps, nil
}

func parseBody(content, filename string) (hcl.Body, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(content), filename)
	if diags.HasErrors() {
		return nil, diags
	}
	if file.Body == nil {
		return nil, fmt.Errorf("empty body in %s", filename)
	}
	return file.Body, nil
}

func addRequiredProviders(deps entities.DependencySet, body hcl.Body) {
	inner, _, diags := body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "required_providers"}},
	})
	if diags.HasErrors() {
		return
	}

	for _, block := range inner.Blocks {
		attrs, _ := block.Body.JustAttributes()
		for name := range attrs {
			deps.Add(name)
		}
	}
}

func moduleSource(body hcl.Body) (string, bool) {
	attrs, _ := body.JustAttributes()
	sourceAttr, hasSource := attrs["source"]
	if !hasSource {
		return "", false
	}

	//nolint:exhaustruct // sources are literals, no variables or functions needed
	sourceVal, diags := sourceAttr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || sourceVal.Type() != cty.String || sourceVal.IsNull() {
		return "", false
	}
	return sourceVal.AsString(), true
}

func scanWithRegex(content string) entities.DependencySet {
	deps := entities.NewDependencySet()

	for _, match := range providerPattern.FindAllStringSubmatch(content, -1) {
		deps.Add(match[1])
	}

	for _, match := range modulePattern.FindAllStringSubmatchIndex(content, -1) {
		if len(match) < minMatchLen {
			continue
		}
		deps.Add(removeVersionFromSource(content[match[4]:match[5]]))
	}

	return deps
}

func removeVersionFromSource(source string) string {
	return refPattern.ReplaceAllString(source, "")
}
