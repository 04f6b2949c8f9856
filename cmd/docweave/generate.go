package main

import (
	"github.com/tsawler/docweave"
	"github.com/tsawler/docweave/config"
	"github.com/tsawler/docweave/logging"
	"github.com/tsawler/docweave/model"
	"github.com/tsawler/docweave/srs"
)

// generate builds the report described by cfg and writes it to cfg.Output.
// All construction errors surface before anything is written.
func generate(cfg *config.Config) (string, error) {
	logger := logging.GetLogger("cli")

	sheet, err := cfg.StyleSheet(srs.Styles())
	if err != nil {
		return "", err
	}
	reg, err := docweave.NewRegistry(sheet...)
	if err != nil {
		return "", err
	}

	b := model.NewBuilder(reg)
	b.SetMetadata(model.Metadata{
		Title:    cfg.Metadata.Title,
		Subject:  cfg.Metadata.Subject,
		Author:   cfg.Metadata.Author,
		Keywords: cfg.Metadata.Keywords,
	})
	srs.Build(b)
	doc, err := b.Build()
	if err != nil {
		return "", err
	}
	logger.Info().Int("blocks", doc.Len()).Int("styles", reg.Len()).Msg("Document built")

	if err := docweave.Generate(doc, cfg.Output); err != nil {
		return "", err
	}
	return cfg.Output, nil
}
