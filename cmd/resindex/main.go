package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ybkit/resindex/pkg/index"
	"github.com/ybkit/resindex/pkg/libfs"
	mcpserver "github.com/ybkit/resindex/pkg/mcp"
	"github.com/ybkit/resindex/pkg/mcplog"
	"github.com/ybkit/resindex/pkg/util"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "serve":
		if err := runServe(args); err != nil {
			fmt.Fprintf(os.Stderr, "serve: %v\n", err)
			os.Exit(1)
		}
	case "build":
		if err := runBuild(args); err != nil {
			fmt.Fprintf(os.Stderr, "build: %v\n", err)
			os.Exit(1)
		}
	case "query":
		if err := runQuery(args); err != nil {
			fmt.Fprintf(os.Stderr, "query: %v\n", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(args); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			os.Exit(1)
		}
	case "setup":
		runSetup(args)
	case "version":
		fmt.Printf("resindex %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// flagValue returns the value following --name in args, or "".
func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

func newLogger(args []string) *util.LoggerConfig {
	cfg := util.DefaultLoggerConfig()
	if lvl := flagValue(args, "--log-level"); lvl != "" {
		cfg.Level = util.LogLevel(lvl)
	}
	if format := flagValue(args, "--log-format"); format != "" {
		cfg.Format = util.LogFormat(format)
	}
	return &cfg
}

func newStore(args []string) (*index.Store, *libfs.Caching, error) {
	logger := util.NewLogger(*newLogger(args))
	root := resolveRoot(flagValue(args, "--root"))

	cache, err := libfs.NewCaching(libfs.OS{}, resolveCacheSize(), logger)
	if err != nil {
		return nil, nil, err
	}
	return index.NewStore(root, cache, logger), cache, nil
}

func runServe(args []string) error {
	logger := util.NewLogger(*newLogger(args))
	root := resolveRoot(flagValue(args, "--root"))

	store, cache, err := newStore(args)
	if err != nil {
		return err
	}

	toolLog, err := mcplog.NewLogger(resolveToolLog(flagValue(args, "--tool-log")))
	if err != nil {
		return err
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	if hasFlag(args, "--watch") {
		w, err := index.NewWatcher(store, cache, logger)
		if err != nil {
			return err
		}
		if err := w.Start(root); err != nil {
			return err
		}
		defer w.Stop()
	}

	return mcpserver.NewServer(store, toolLog, logger).ServeStdio()
}

func runBuild(args []string) error {
	store, _, err := newStore(args)
	if err != nil {
		return err
	}
	if err := store.Build(context.Background()); err != nil {
		return err
	}
	return printJSON(store.Stats())
}

func runQuery(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: resindex query <component|utility|plugin> <name> [--category <hint>]")
	}
	kind, name := args[0], args[1]
	store, _, err := newStore(args[2:])
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch kind {
	case "component":
		res, err := store.QueryComponent(ctx, name, flagValue(args, "--category"))
		if err != nil {
			return err
		}
		return printJSON(res)
	case "utility":
		res, err := store.QueryUtility(ctx, name)
		if err != nil {
			return err
		}
		return printJSON(res)
	case "plugin":
		res, err := store.QueryPlugin(ctx, name)
		if err != nil {
			return err
		}
		return printJSON(res)
	default:
		return fmt.Errorf("unknown kind: %s", kind)
	}
}

func runWatch(args []string) error {
	logger := util.NewLogger(*newLogger(args))
	root := resolveRoot(flagValue(args, "--root"))

	store, cache, err := newStore(args)
	if err != nil {
		return err
	}
	if err := store.Build(context.Background()); err != nil {
		return err
	}

	w, err := index.NewWatcher(store, cache, logger)
	if err != nil {
		return err
	}
	if err := w.Start(root); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsage() {
	fmt.Println("Usage: resindex <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve      Start the MCP server on stdin/stdout")
	fmt.Println("  build      Build the index once and print record counts")
	fmt.Println("  query      Query a component, utility, or plugin by name")
	fmt.Println("  watch      Build the index and invalidate it on file changes")
	fmt.Println("  setup      Register the MCP server with detected AI agents")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --root <dir>         Library root to index (default: . or .resindex/config.yaml)")
	fmt.Println("  --category <hint>    Category hint for component queries")
	fmt.Println("  --tool-log <path>    Append one JSONL entry per MCP tool call")
	fmt.Println("  --log-level <level>  debug, info, warn, error (default info)")
	fmt.Println("  --log-format <fmt>   json or text (default json)")
	fmt.Println("  --watch              With serve: invalidate the index on file changes")
}
