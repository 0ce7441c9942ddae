package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"eldeps/analyzer"
)

type Options struct {
	LocalOnly    bool
	ToplevelOnly bool
}

func resolveDependencies(w io.Writer, dir string, opts Options, logger *slog.Logger) error {
	modules, err := analyzer.ListModules(dir)
	if err != nil {
		return err
	}
	logger.Debug("found modules.", "dir", dir, "count", len(modules))

	idx := analyzer.BuildIndex(modules, analyzer.WithLogger(logger))

	out := bufio.NewWriter(w)
	if opts.ToplevelOnly {
		for _, name := range idx.ToplevelModules() {
			fmt.Fprintln(out, analyzer.ArtifactName(name))
		}
		return out.Flush()
	}

	query := analyzer.QueryOptions{LocalOnly: opts.LocalOnly, TargetDir: dir}
	names := idx.Modules()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		deps := lo.Map(idx.DependenciesOf(name, query), func(f analyzer.Feature, _ int) string {
			return analyzer.ArtifactName(f.Name)
		})
		rows = append(rows, deps)
	}
	writeColumns(out, names, rows)
	return out.Flush()
}

// writeColumns writes one "name.elc: [deps]" line per module with the
// dependency lists aligned on the widest module name.
func writeColumns(w io.Writer, names []string, deps [][]string) {
	labels := lo.Map(names, func(name string, _ int) string {
		return analyzer.ArtifactName(name) + ":"
	})
	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l))
	}
	for i, l := range labels {
		fmt.Fprintf(w, "%s %s\n", runewidth.FillRight(l, width), formatList(deps[i]))
	}
}

func formatList(items []string) string {
	quoted := lo.Map(items, func(s string, _ int) string {
		return strconv.Quote(s)
	})
	return "[" + strings.Join(quoted, ", ") + "]"
}
