package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/sllt/fql/pkg/fql/config"
	fqlHTTP "github.com/sllt/fql/pkg/fql/http"
	"github.com/sllt/fql/pkg/fql/logging"
	"github.com/sllt/fql/pkg/fql/metrics"
	"github.com/sllt/fql/pkg/fql/qb"
	"github.com/sllt/fql/pkg/fql/tracing"
)

// Version is set at build time.
var Version = "dev"

var (
	errLimitFormat = errors.New("limit must be given as page,length")
	errNoTable     = errors.New("please provide a table name, e.g.: fql columns friend")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:                      "fql",
		Usage:                     "Build FQL queries against the Facebook table schema",
		Version:                   Version,
		Writer:                    out,
		ErrWriter:                 errOut,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schema",
				Usage:   "YAML file with extra tables merged over the built-in schema",
				Sources: cli.EnvVars("FQL_SCHEMA_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "DEBUG, INFO, NOTICE, WARN, ERROR or FATAL",
				Value:   "INFO",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:                      "render",
				Usage:                     "Render a SELECT statement",
				DisableSliceFlagSeparator: true,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "select",
						Usage: "column or expression to select, repeatable (default: all columns of the table)",
					},
					&cli.StringFlag{
						Name:     "from",
						Usage:    "table to select from",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "where",
						Usage: "predicate, repeatable; predicates are joined with AND",
					},
					&cli.StringSliceFlag{
						Name:  "sort",
						Usage: "field[:direction], repeatable",
					},
					&cli.StringFlag{
						Name:  "limit",
						Usage: "page,length",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return render(cmd, out, newLogger(cmd, errOut))
				},
			},
			{
				Name:  "tables",
				Usage: "List the known tables",
				Action: func(_ context.Context, cmd *cli.Command) error {
					b, err := qb.FromFile(cmd.String("schema"))
					if err != nil {
						return err
					}

					for _, t := range b.Registry().Tables() {
						fmt.Fprintln(out, t)
					}

					return nil
				},
			},
			{
				Name:  "columns",
				Usage: "List the columns of a table",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "table",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					table := cmd.StringArg("table")
					if table == "" {
						return errNoTable
					}

					b, err := qb.FromFile(cmd.String("schema"))
					if err != nil {
						return err
					}

					columns, ok := b.Registry().Columns(table)
					if !ok {
						return fmt.Errorf("%w: %q", qb.ErrUnknownTable, table)
					}

					for _, c := range columns {
						fmt.Fprintln(out, c)
					}

					return nil
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the render API over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "folder holding the .env files",
						Value: "./configs",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serve(ctx, cmd, newLogger(cmd, errOut))
				},
			},
		},
	}
}

func newLogger(cmd *cli.Command, errOut io.Writer) logging.Logger {
	return logging.New(logging.GetLevelFromString(cmd.String("log-level")), errOut, errOut)
}

func render(cmd *cli.Command, out io.Writer, logger logging.Logger) error {
	b, err := qb.FromFile(cmd.String("schema"))
	if err != nil {
		return err
	}

	q := b.Select()
	if columns := cmd.StringSlice("select"); len(columns) > 0 {
		q.Select(columns)
	}

	q.From(cmd.String("from"))

	if where := cmd.StringSlice("where"); len(where) > 0 {
		q.Where(where)
	}

	for _, s := range cmd.StringSlice("sort") {
		field, direction, ok := strings.Cut(s, ":")
		if !ok {
			q.SortBy(field)
			continue
		}

		q.SortBy(field, strings.ToUpper(direction))
	}

	if limit := cmd.String("limit"); limit != "" {
		page, length, ok := strings.Cut(limit, ",")
		if !ok {
			return fmt.Errorf("%w, got %q", errLimitFormat, limit)
		}

		q.Limit(strings.TrimSpace(page), strings.TrimSpace(length))
	}

	start := time.Now()
	query, err := q.Render()

	entry := &qb.Log{Type: "render", Table: q.Table(), Query: query, Duration: time.Since(start).Microseconds()}
	if err != nil {
		entry.Error = err.Error()
	}

	logger.Debug(entry)

	if err != nil {
		return err
	}

	fmt.Fprintln(out, query)

	return nil
}

func serve(ctx context.Context, cmd *cli.Command, logger logging.Logger) error {
	cfg := config.NewEnvFile(cmd.String("config"), logger)

	if level := cfg.Get("LOG_LEVEL"); level != "" && !cmd.IsSet("log-level") {
		logger.ChangeLevel(logging.GetLevelFromString(level))
	}

	schemaFile := cmd.String("schema")
	if schemaFile == "" {
		schemaFile = cfg.Get("FQL_SCHEMA_FILE")
	}

	b, err := qb.FromFile(schemaFile)
	if err != nil {
		return err
	}

	logger.Infof("loaded schema with %d tables", b.Registry().Len())

	otel.SetTextMapPropagator(propagation.TraceContext{})

	shutdownTracing, err := tracing.Setup(ctx, cfg, logger)
	if err != nil {
		return err
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Errorf("%v", err)
		}
	}()

	srv, err := fqlHTTP.NewServer(cfg, b, logger, metrics.NewMetricsManager(logger))
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
