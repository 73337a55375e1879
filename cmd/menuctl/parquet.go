// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"context"
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/tomtom215/menuscore/internal/pricing"
)

const parquetParallelism = 4

// writeParquet stores samples as a parquet file at path.
func writeParquet(path string, samples []pricing.Sample) (err error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	pw, err := writer.NewParquetWriter(fw, new(pricing.Sample), parquetParallelism)
	if err != nil {
		return fmt.Errorf("parquet writer: %w", err)
	}
	for i := range samples {
		if err := pw.Write(samples[i]); err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finish %s: %w", path, err)
	}
	return nil
}

// parquetSource reads training samples from a file written by writeParquet.
type parquetSource struct {
	path string
}

// LoadSamples implements pricing.SampleSource.
func (s parquetSource) LoadSamples(ctx context.Context) (out []pricing.Sample, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fr, err := local.NewLocalFileReader(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() {
		if cerr := fr.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.path, cerr)
		}
	}()

	pr, err := reader.NewParquetReader(fr, new(pricing.Sample), parquetParallelism)
	if err != nil {
		return nil, fmt.Errorf("parquet reader: %w", err)
	}
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	out = make([]pricing.Sample, n)
	if n == 0 {
		return out, nil
	}
	if err := pr.Read(&out); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return out, nil
}
