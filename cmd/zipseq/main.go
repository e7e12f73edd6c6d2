// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command zipseq combines line-oriented files column by column.
//
//	zipseq paste a.txt b.txt      # one row per line, stops at the shortest file
//	zipseq number --start 1 a.txt # prefix each line with its number
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"code.hybscloud.com/zipseq"
	"code.hybscloud.com/zipseq/internal/config"
	"code.hybscloud.com/zipseq/internal/constant"
	"code.hybscloud.com/zipseq/internal/log"
	"code.hybscloud.com/zipseq/internal/textcol"
)

func main() {
	logger := log.NewDefault()

	if err := newApp(os.Stdin, os.Stdout).Run(context.Background(), os.Args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Application was canceled")
			os.Exit(1)
		}

		var exitCode exitCodeError
		if errors.As(err, &exitCode) {
			os.Exit(int(exitCode))
		}

		logger.Error().Err(err).Msg("Application exited with error")
		os.Exit(10)
	}
}

type exitCodeError int

func (e exitCodeError) Error() string {
	return "error with exit code: " + strconv.Itoa(int(e))
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:    "zipseq",
		Version: constant.Version,
		Metadata: map[string]any{
			"compiled_at": constant.CompileTime,
		},
		Suggest: true,
		Usage:   "Combine line-oriented files column by column",
		Reader:  stdin,
		Writer:  stdout,
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path",
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: plain or table (overrides config)",
			},
		},
		Commands: []*cli.Command{
			//nolint:exhaustruct
			{
				Name:      "paste",
				Usage:     "Join the lines of several files side by side",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:    "delimiter",
						Aliases: []string{"d"},
						Usage:   "Column delimiter for plain output (overrides config)",
					},
				},
				Action: paste,
			},
			//nolint:exhaustruct
			{
				Name:      "number",
				Usage:     "Prefix every line of a file with its line number",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.IntFlag{
						Name:  "start",
						Usage: "Number of the first line",
						Value: 1,
					},
				},
				Action: number,
			},
		},
	}
}

// setup loads .env and the config file, applies command-line overrides and
// returns the configured logger.
func setup(cmd *cli.Command) (*config.Config, zerolog.Logger, error) {
	logger := log.NewDefault()

	if err := godotenv.Load(); nil != err {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, logger, fmt.Errorf("load .env file: %v", err)
		}
		logger.Trace().Msg(".env file was not found")
	}

	conf, err := config.Load(cmd.String("config"))
	if nil != err {
		return nil, logger, fmt.Errorf("load config: %v", err)
	}
	if f := cmd.String("format"); f != "" {
		conf.Output.Format = f
	}
	if cmd.IsSet("delimiter") {
		conf.Output.Delimiter = cmd.String("delimiter")
	}

	logger = log.FromConfig(conf.Log)
	logger.Debug().Dict("config", conf.ToDict()).Msg("Config loaded")

	return conf, logger, nil
}

func paste(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf, logger, err := setup(cmd)
	if nil != err {
		return err
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		logger.Error().Msg("paste needs at least one file")
		return exitCodeError(2)
	}

	args := make([]zipseq.Arg[zipseq.ConstCursor[string], string], 0, len(files))
	for _, name := range files {
		lines, err := textcol.Lines(name, cmd.Root().Reader)
		if nil != err {
			return fmt.Errorf("load %s: %w", name, err)
		}
		logger.Debug().Str("file", name).Int("lines", len(lines)).Msg("File loaded")
		args = append(args, zipseq.TempConst(lines))
	}

	w, err := textcol.NewWriter(cmd.Root().Writer, textcol.Format(conf.Output.Format), conf.Output.Delimiter)
	if nil != err {
		return err
	}
	w.Header(files...)

	r := zipseq.ZipN(args[0], args[1:]...)
	rows := 0
	for row := range r.All() {
		if err := ctx.Err(); nil != err {
			return err
		}
		if err := w.Row(row...); nil != err {
			return fmt.Errorf("write row: %w", err)
		}
		rows++
	}
	if err := r.Err(); nil != err {
		return fmt.Errorf("combine files: %w", err)
	}
	logger.Debug().Int("rows", rows).Int("sources", r.Len()).Msg("Files pasted")

	return w.Flush()
}

func number(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf, logger, err := setup(cmd)
	if nil != err {
		return err
	}

	if cmd.NArg() != 1 {
		logger.Error().Int("files", cmd.NArg()).Msg("number needs exactly one file")
		return exitCodeError(2)
	}
	name := cmd.Args().First()

	lines, err := textcol.Lines(name, cmd.Root().Reader)
	if nil != err {
		return fmt.Errorf("load %s: %w", name, err)
	}

	w, err := textcol.NewWriter(cmd.Root().Writer, textcol.Format(conf.Output.Format), conf.Output.Delimiter)
	if nil != err {
		return err
	}
	w.Header("#", lo.Ternary(name == textcol.Stdin, "stdin", name))

	r := zipseq.EnumerateFrom(int(cmd.Int("start")), zipseq.TempConst(lines))
	for i, line := range r.All() {
		if err := ctx.Err(); nil != err {
			return err
		}
		if err := w.Row(strconv.Itoa(i), line); nil != err {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := r.Err(); nil != err {
		return fmt.Errorf("number lines: %w", err)
	}

	return w.Flush()
}
