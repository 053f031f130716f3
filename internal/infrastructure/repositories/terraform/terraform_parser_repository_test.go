//go:build unit

package terraform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/terraform"
)

func TestTerraformParserRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read providers pinned in the lock file", func(t *testing.T) {
		t.Parallel()

		// given
		parser := terraform.NewParserRepository()
		content := `# This file is maintained automatically by "terraform init".

provider "registry.terraform.io/hashicorp/aws" {
  version     = "5.40.0"
  constraints = "~> 5.0"
  hashes = [
    "h1:abc",
  ]
}

provider "registry.terraform.io/hashicorp/random" {
  version = "3.6.0"
}
`

		// when
		deps, err := parser.Parse(".terraform.lock.hcl", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"registry.terraform.io/hashicorp/aws",
			"registry.terraform.io/hashicorp/random",
		}, deps.Sorted())
	})

	t.Run("should read required providers and module sources without refs", func(t *testing.T) {
		t.Parallel()

		// given
		parser := terraform.NewParserRepository()
		content := `terraform {
  required_version = ">= 1.5"

  required_providers {
    aws = {
      source  = "hashicorp/aws"
      version = "~> 5.0"
    }
  }
}

module "network" {
  source = "git::https://github.com/org/network.git?ref=v1.2.0"
  cidr   = "10.0.0.0/16"
}
`

		// when
		deps, err := parser.Parse("infra/versions.tf", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"aws", "git::https://github.com/org/network.git"}, deps.Sorted())
	})

	t.Run("should fall back to a regex scan for invalid HCL", func(t *testing.T) {
		t.Parallel()

		// given
		parser := terraform.NewParserRepository()
		content := "provider \"registry.terraform.io/hashicorp/aws\" {\n  version = \n"

		// when
		deps, err := parser.Parse(".terraform.lock.hcl", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"registry.terraform.io/hashicorp/aws"}, deps.Sorted())
	})

	t.Run("should return error when nothing can be recovered", func(t *testing.T) {
		t.Parallel()

		// given
		parser := terraform.NewParserRepository()

		// when
		deps, err := parser.Parse("versions.tf", "terraform {{{")

		// then
		require.Error(t, err)
		assert.Equal(t, 0, deps.Len())
	})
}
