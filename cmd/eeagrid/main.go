// Command eeagrid evaluates EEA reference grid functions, renders the function
// reference and serves the catalog over HTTP.
//
// Usage:
//
//	eeagrid call <function> <args...>
//	eeagrid cell <grid_num> [resolution]
//	eeagrid reference [-o path]
//	eeagrid serve
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
	"os/signal"
	"strconv"
	"syscall"

	"github.com/arloliu/eeagrid/format"
	"github.com/arloliu/eeagrid/function"
	"github.com/arloliu/eeagrid/grid"
	"github.com/arloliu/eeagrid/internal/config"
	"github.com/arloliu/eeagrid/internal/server"
	"github.com/gin-gonic/gin"
)

const usage = `usage:
  eeagrid call <function> <args...>
  eeagrid cell <grid_num> [resolution]
  eeagrid reference [-o path]
  eeagrid serve`

var errUsage = errors.New(usage)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("eeagrid ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "call":
		return runCall(rest, stdout)
	case "cell":
		return runCell(rest, stdout)
	case "reference":
		return runReference(rest, stdout)
	case "serve":
		return runServe(ctx)
	default:
		return errUsage
	}
}

func runCall(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	values, err := parseInts(args[1:])
	if err != nil {
		return err
	}

	v, err := function.Default().Call(args[0], values...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, v)

	return err
}

func runCell(args []string, stdout io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return errUsage
	}

	g, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("grid_num %q is not a BIGINT", args[0])
	}

	res := format.Res1000
	if len(args) == 2 {
		if res, err = format.ParseResolution(args[1]); err != nil {
			return err
		}
	}

	cell, err := grid.FromGridNumber(g, res)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(cell.Feature())
}

func runReference(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("reference", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "", "write the reference to this file instead of stdout")
	if err := fs.Parse(args); err != nil || fs.NArg() > 0 {
		return errUsage
	}

	if *out == "" {
		return function.WriteReference(stdout, function.Default())
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}

	if err := function.WriteReference(f, function.Default()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	srv, err := server.New(function.Default(),
		server.WithLogger(log.Default()),
		server.WithColumnOptions(cfg.ColumnOptions()...),
	)
	if err != nil {
		return err
	}

	return srv.ListenAndServe(ctx, cfg.HTTPAddr)
}

func parseInts(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not a BIGINT", i+1, a)
		}
		values[i] = v
	}

	return values, nil
}
