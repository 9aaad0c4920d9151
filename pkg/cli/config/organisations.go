package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/utils/logging"
)

// Organisations holds CLI flags for the organisation registry. The
// registry is a TOML file describing the accessor organisations and their
// units; it is loaded into the repository at startup.
type Organisations struct {
	path string
}

// NewOrganisations builds a registry config with a fixed path, bypassing
// the CLI flags
func NewOrganisations(path string) *Organisations {
	return &Organisations{path: path}
}

// Flags returns CLI flags for the organisation registry
func (o *Organisations) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "organisations",
			Usage:       "Path to the organisation registry TOML file",
			Category:    "Registry",
			Sources:     cli.EnvVars("INNOVAID_ORGANISATIONS"),
			Destination: &o.path,
		},
	}
}

type organisationEntry struct {
	ID      string      `toml:"id"`
	Name    string      `toml:"name"`
	Acronym string      `toml:"acronym"`
	Units   []unitEntry `toml:"unit"`
}

type unitEntry struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Acronym string `toml:"acronym"`
}

type registryFile struct {
	Organisations []organisationEntry `toml:"organisation"`
}

func (e *organisationEntry) validate() error {
	if e.ID == "" {
		return goerr.New("organisation id is required")
	}
	if e.Name == "" {
		return goerr.New("organisation name is required", goerr.V("id", e.ID))
	}
	seen := make(map[string]bool, len(e.Units))
	for _, u := range e.Units {
		if u.ID == "" {
			return goerr.New("organisation unit id is required", goerr.V("organisation", e.ID))
		}
		if seen[u.ID] {
			return goerr.New("duplicate organisation unit id",
				goerr.V("organisation", e.ID),
				goerr.V("unit", u.ID))
		}
		seen[u.ID] = true
	}
	return nil
}

// Configure loads the registry file, when configured, and upserts every
// organisation into the repository.
func (o *Organisations) Configure(ctx context.Context, repo interfaces.Repository) error {
	if o.path == "" {
		logging.Default().Info("organisation registry not configured, skipping load")
		return nil
	}

	raw, err := os.ReadFile(o.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read organisation registry", goerr.V("path", o.path))
	}

	var file registryFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return goerr.Wrap(err, "failed to parse organisation registry", goerr.V("path", o.path))
	}

	seen := make(map[string]bool, len(file.Organisations))
	for _, entry := range file.Organisations {
		if err := entry.validate(); err != nil {
			return goerr.Wrap(err, "invalid organisation registry", goerr.V("path", o.path))
		}
		if seen[entry.ID] {
			return goerr.New("duplicate organisation id", goerr.V("id", entry.ID))
		}
		seen[entry.ID] = true

		org := &model.Organisation{
			ID:      entry.ID,
			Name:    entry.Name,
			Acronym: entry.Acronym,
			Units:   make([]model.OrganisationUnit, 0, len(entry.Units)),
		}
		for _, u := range entry.Units {
			org.Units = append(org.Units, model.OrganisationUnit{
				ID:      u.ID,
				Name:    u.Name,
				Acronym: u.Acronym,
			})
		}

		if err := repo.Organisation().Put(ctx, org); err != nil {
			return goerr.Wrap(err, "failed to save organisation", goerr.V("id", entry.ID))
		}
	}

	logging.Default().Info("organisation registry loaded",
		"path", o.path,
		"count", len(file.Organisations))

	return nil
}
