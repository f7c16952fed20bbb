package priorfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vk/priorspec/internal/ctxlog"
	"github.com/vk/priorspec/internal/fsutil"
	"github.com/vk/priorspec/internal/prior"
)

// Load parses prior declaration text into an immutable table. It is a pure
// function: identical text always yields an identical table, and the first
// malformed line aborts the whole load with a *ParseError.
func Load(text string) (*prior.Table, error) {
	entries, err := parseText(text, "")
	if err != nil {
		return nil, err
	}
	return prior.BuildTable(entries)
}

// LoadFile reads and parses a single prior file. ParseErrors are annotated
// with the file path.
func LoadFile(path string) (*prior.Table, error) {
	entries, err := loadFileEntries(path, make(map[string]declSite))
	if err != nil {
		return nil, err
	}
	return prior.BuildTable(entries)
}

// LoadPath loads a prior file, or every .priors file beneath a directory,
// into one table. Parameter names must be unique across all files loaded
// together.
func LoadPath(ctx context.Context, path string) (*prior.Table, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.ResolvePriorFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved prior files.", "path", path, "count", len(files))

	seen := make(map[string]declSite)
	var entries []prior.Entry
	for _, file := range files {
		fileEntries, err := loadFileEntries(file, seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	table, err := prior.BuildTable(entries)
	if err != nil {
		return nil, err
	}
	logger.Debug("Prior table loaded.", "path", path, "parameters", table.Len())
	return table, nil
}

// declSite records where a parameter was first declared, for duplicate
// diagnostics that span files.
type declSite struct {
	file string
	line int
}

func loadFileEntries(path string, seen map[string]declSite) ([]prior.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prior file: %w", err)
	}
	entries, perr := parseTextSeen(string(raw), path, seen)
	if perr != nil {
		return nil, perr
	}
	return entries, nil
}

func parseText(text, file string) ([]prior.Entry, *ParseError) {
	return parseTextSeen(text, file, make(map[string]declSite))
}

// parseTextSeen parses declaration text line by line, recording first
// declaration sites in seen so duplicates are rejected within and across
// files alike.
func parseTextSeen(text, file string, seen map[string]declSite) ([]prior.Entry, *ParseError) {
	var entries []prior.Entry
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.ContainsRune(line, '=') {
			return nil, annotate(errorf(MissingAssignment, lineNo, "declaration %q has no \"=\"", line), file)
		}

		entry, err := parseLine(line, lineNo)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				perr = errorf(SyntaxError, lineNo, "%v", err)
			}
			return nil, annotate(perr, file)
		}

		if site, dup := seen[entry.Name]; dup {
			perr := errorf(DuplicateName, lineNo, "%q already declared at %s", entry.Name, site)
			return nil, annotate(perr, file)
		}
		seen[entry.Name] = declSite{file: file, line: lineNo}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s declSite) String() string {
	if s.file == "" {
		return fmt.Sprintf("line %d", s.line)
	}
	return fmt.Sprintf("%s:%d", s.file, s.line)
}

func annotate(err *ParseError, file string) *ParseError {
	err.File = file
	return err
}
