// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command derdump decodes DER data and prints the structure of the contained
// data values.
package main

import (
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"codello.dev/der"
	"codello.dev/der/internal/dump"
)

// CLI defines the derdump command-line interface.
type CLI struct {
	Input    string `arg:"" optional:"" help:"Input file, - reads from stdin" default:"-"`
	Format   string `short:"f" help:"Output format (text, json, cbor)" enum:"text,json,cbor" default:"text"`
	PEM      bool   `name:"pem" help:"Decode the first PEM block of the input"`
	Hex      bool   `help:"Input is hex encoded, whitespace is ignored"`
	MaxDepth int    `help:"Maximum nesting depth, 0 disables the limit" default:"64"`
	Verbose  bool   `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("derdump"),
		kong.Description("Print the structure of DER encoded data."),
	)

	logger := newLogger(cli.Verbose)
	err := runAndSync(&cli, logger, os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)
}

// runAndSync calls run and flushes logger afterwards. FatalIfErrorf exits the
// process, so deferred calls in main would not run on the error path.
func runAndSync(cli *CLI, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	err := run(cli, logger, stdin, stdout)
	// Sync fails on some terminals (e.g. EINVAL on /dev/stderr).
	_ = logger.Sync()
	return err
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(cli *CLI, logger *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(cli.Input, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("input", cli.Input), zap.Int("size", len(data)))

	if cli.Hex {
		if data, err = decodeHex(data); err != nil {
			return err
		}
	}
	if cli.PEM {
		block, _ := pem.Decode(data)
		if block == nil {
			return errors.New("no PEM block found in input")
		}
		logger.Debug("decoded PEM block", zap.String("type", block.Type))
		data = block.Bytes
	}

	nodes, err := dump.Tree(der.NewReader(data),
		dump.WithLogger(logger),
		dump.WithMaxDepth(cli.MaxDepth))
	if err != nil {
		var sErr *der.SyntaxError
		if errors.As(err, &sErr) {
			logger.Error("decoding failed",
				zap.Int64("offset", sErr.ByteOffset),
				zap.Stringer("tag", sErr.Tag),
				zap.Int("depth", sErr.Depth),
				zap.Error(sErr.Err))
		}
		return err
	}

	switch cli.Format {
	case "json":
		return dump.WriteJSON(stdout, nodes)
	case "cbor":
		return dump.WriteCBOR(stdout, nodes)
	default:
		return dump.WriteText(stdout, nodes)
	}
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func decodeHex(data []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(data)), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}
