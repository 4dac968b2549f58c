package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/goliatone/go-propername/pkg/fieldconfig"
	"github.com/goliatone/go-propername/pkg/fieldtype"
	"github.com/goliatone/go-propername/pkg/meta"
	"github.com/goliatone/go-propername/pkg/meta/sqlstore"
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/renderers/tui"
	"github.com/goliatone/go-propername/pkg/renderers/vanilla"
)

type options struct {
	config    string
	fieldID   string
	fieldType string
	objectID  string
	mode      string
	value     string
	store     string
	dsn       string
	table     string
	output    string
	styles    bool
	verbose   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "field config file or directory (YAML/JSON)")
	flag.StringVar(&opts.fieldID, "field", "name", "field id")
	flag.StringVar(&opts.fieldType, "type", string(model.FieldTypeNameFull), "field type when the field is not in the config")
	flag.StringVar(&opts.objectID, "object", "1", "object id")
	flag.StringVar(&opts.mode, "mode", "render", "render, display, values, save or edit")
	flag.StringVar(&opts.value, "value", "", "value for save mode: plain name or JSON object/array")
	flag.StringVar(&opts.store, "store", "sqlite", "meta store: memory, sqlite or postgres")
	flag.StringVar(&opts.dsn, "dsn", "file:propername.db", "database DSN for sqlite/postgres stores")
	flag.StringVar(&opts.table, "table", sqlstore.DefaultTable, "meta table name")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&opts.styles, "styles", false, "prepend the bundled stylesheet in render mode")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable development logging")
	flag.Parse()

	if err := run(context.Background(), opts); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("propername: %v", err)
	}
}

func run(ctx context.Context, opts options) error {
	logger := zap.NewNop()
	if opts.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("configure logger: %w", err)
		}
		logger = dev
	}
	defer func() { _ = logger.Sync() }()

	field, err := resolveField(opts)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	service, err := fieldtype.NewService(
		fieldtype.WithStore(store),
		fieldtype.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	logger.Debug("running",
		zap.String("mode", opts.mode),
		zap.String("field", field.ID),
		zap.String("type", string(field.Type)),
		zap.String("object", opts.objectID),
	)

	switch opts.mode {
	case "render":
		return renderField(ctx, out, service, field, opts)
	case "display":
		if err := service.WriteDisplayName(ctx, out, opts.objectID, field.ID); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	case "values":
		return printValues(ctx, out, service, field, opts.objectID)
	case "save":
		return service.Save(ctx, opts.objectID, field, parseValue(opts.value))
	case "edit":
		return editField(ctx, service, field, opts.objectID)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

func resolveField(opts options) (model.Field, error) {
	fallback := model.Field{
		ID:   strings.TrimSpace(opts.fieldID),
		Type: model.FieldType(strings.TrimSpace(opts.fieldType)),
	}
	if !fallback.Type.Valid() {
		return model.Field{}, fmt.Errorf("unknown field type %q", opts.fieldType)
	}
	if opts.config == "" {
		return fallback, nil
	}
	fields, err := fieldconfig.LoadFile(opts.config)
	if err != nil {
		return model.Field{}, err
	}
	field, ok := fields.Field(opts.fieldID)
	if !ok {
		return model.Field{}, fmt.Errorf("field %q not found in %s (have %s)", opts.fieldID, opts.config, strings.Join(fields.IDs(), ", "))
	}
	return field, nil
}

func openStore(ctx context.Context, opts options) (meta.Store, func(), error) {
	switch opts.store {
	case "memory":
		store := meta.NewMemoryStore()
		return store, func() { _ = store.Close() }, nil
	case "sqlite", "postgres":
		driver, dialect := "sqlite3", sqlstore.DialectSQLite
		if opts.store == "postgres" {
			driver, dialect = "postgres", sqlstore.DialectPostgres
		}
		store, err := sqlstore.Open(ctx, driver, opts.dsn, sqlstore.Config{
			Dialect:     dialect,
			Table:       opts.table,
			AutoMigrate: true,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", opts.store)
	}
}

func renderField(ctx context.Context, out io.Writer, service *fieldtype.Service, field model.Field, opts options) error {
	output, err := service.Render(ctx, field, opts.objectID, render.RenderOptions{
		Hidden: []render.HiddenField{render.ObjectField("object_id", opts.objectID)},
	})
	if err != nil {
		return err
	}
	if opts.styles {
		if _, err := fmt.Fprintf(out, "<style>\n%s</style>\n", vanilla.Stylesheet()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out, string(output.HTML))
	return err
}

func printValues(ctx context.Context, out io.Writer, service *fieldtype.Service, field model.Field, objectID string) error {
	escaped, err := service.Escaped(ctx, objectID, field)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(escaped)
}

func editField(ctx context.Context, service *fieldtype.Service, field model.Field, objectID string) error {
	current, err := service.Values(ctx, objectID, field)
	if err != nil {
		return err
	}
	editor := tui.New()

	if field.Repeatable {
		records, err := editor.EditList(ctx, field, current)
		if err != nil {
			return err
		}
		rows := make([]any, 0, len(records))
		for _, record := range records {
			rows = append(rows, record.Map())
			if err := editor.Summary(ctx, record); err != nil {
				return err
			}
		}
		return service.Save(ctx, objectID, field, rows)
	}

	value := propername.Structured(propername.Record{})
	if len(current) > 0 {
		value = current[0]
	}
	record, err := editor.Edit(ctx, field, value)
	if err != nil {
		return err
	}
	if err := service.Save(ctx, objectID, field, record); err != nil {
		return err
	}
	return editor.Summary(ctx, record)
}

func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
	}
	return raw
}
