package main

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
	"github.com/jalad-shrimali/mccmnc-countries/lookup"
	"github.com/jalad-shrimali/mccmnc-countries/sheet"
	"github.com/jalad-shrimali/mccmnc-countries/source"
)

/* ──────────── convert: countries.{csv,xlsx,db} → countries.json ──────────── */

func convert(ctx context.Context, dir string, log *zap.Logger) (countries.Stats, error) {
	src, err := source.Find(dir)
	if err != nil {
		return countries.Stats{}, err
	}
	rows, err := source.Read(ctx, src)
	if err != nil {
		return countries.Stats{}, err
	}

	doc, stats, err := countries.NewAggregator(log).Aggregate(rows)
	if err != nil {
		return countries.Stats{}, fmt.Errorf("%s: %w", filepath.Base(src), err)
	}
	if err := ctx.Err(); err != nil {
		return countries.Stats{}, err
	}

	if err := countries.WriteFile(filepath.Join(dir, countries.OutputFile), doc.Countries()); err != nil {
		return countries.Stats{}, err
	}
	return stats, nil
}

/* ──────────── queries over countries.json ──────────── */

func loadIndex(dir string, log *zap.Logger) (*lookup.Index, error) {
	cs, err := lookup.Load(filepath.Join(dir, countries.OutputFile))
	if err != nil {
		return nil, err
	}
	return lookup.Build(cs, log), nil
}

func findMccMnc(dir, mcc, mnc string, log *zap.Logger) (lookup.Match, error) {
	idx, err := loadIndex(dir, log)
	if err != nil {
		return lookup.Match{}, err
	}
	m, err := idx.LookupMccMnc(mcc, mnc)
	if err != nil {
		return lookup.Match{}, fmt.Errorf("mcc %s mnc %s: %w", mcc, mnc, err)
	}
	return m, nil
}

func findCountry(dir, iso string, log *zap.Logger) (countries.Country, error) {
	idx, err := loadIndex(dir, log)
	if err != nil {
		return countries.Country{}, err
	}
	c, err := idx.LookupCode(iso)
	if err != nil {
		return countries.Country{}, fmt.Errorf("country %s: %w", iso, err)
	}
	return c, nil
}

func exportSheet(dir string) (string, error) {
	cs, err := countries.ReadFile(filepath.Join(dir, countries.OutputFile))
	if err != nil {
		return "", err
	}
	out := filepath.Join(dir, sheet.OutputFile)
	if err := sheet.Write(out, cs); err != nil {
		return "", err
	}
	return out, nil
}
