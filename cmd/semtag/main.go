/*
Package main is the semtag cli tool: it computes the next semantic version tag
of a git repository, creates it at HEAD and pushes it to every remote.

The tag name is the only thing written to stdout; logs go to stderr.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/semtag"
	"github.com/woozymasta/semtag/internal/gitrepo"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opt, code, ok := parseOptions(args, stdout, stderr)
	if !ok {
		return code
	}

	if opt.Version {
		fmt.Fprintln(stdout, "semtag", Version)
		return exitOK
	}

	if err := opt.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := newLogger(stderr, opt.OptionsOutput.Verbose)

	if opt.OptionsTag.Minor >= 0 && opt.OptionsTag.Major < 0 {
		log.Warn("--minor is ignored without --major", "minor", opt.OptionsTag.Minor)
	}

	tag, err := nextTag(ctx, opt, log)
	if err != nil {
		log.Error(err.Error())
		return exitFailure
	}

	fmt.Fprintln(stdout, tag)

	return exitOK
}

// parseOptions reads the optional INI config first, then the command line.
// ok is false when run must return code right away (help or usage error).
func parseOptions(args []string, stdout, stderr io.Writer) (opt Options, code int, ok bool) {
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash|flags.AllowBoolValues)
	parser.Name = "semtag"
	parser.LongDescription = `semtag computes the next semantic version tag of a git repository.
Tags look like PREFIX + MAJOR.MINOR.PATCH + SUFFIX. The patch of the highest
(optionally --major/--minor filtered) version is bumped; without any version
tag the result is 1.0.0. The tag is created at HEAD and pushed to all remotes
unless --dry-run is set. Prerelease and build tags (1.2.3-rc.1, 1.2.3+b.5)
count towards the highest version; the result is always a plain release.
The pull is fast-forward only: a branch that diverged from its remote fails,
merge it manually or rerun with --no-pull.`

	if path := configPath(args); path != "" {
		if err := flags.NewIniParser(parser).ParseFile(path); err != nil {
			fmt.Fprintf(stderr, "config %s: %v\n", path, err)
			return opt, exitUsage, false
		}
	}

	if _, err := parser.ParseArgs(args); err != nil {
		if flagErr, isFlagErr := err.(*flags.Error); isFlagErr && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagErr.Message)
			return opt, exitOK, false
		}

		fmt.Fprintln(stderr, err)
		return opt, exitUsage, false
	}

	return opt, exitOK, true
}

// configPath extracts --config (or SEMTAG_CONFIG) without failing on other flags.
func configPath(args []string) string {
	var pre struct {
		Config string `short:"c" long:"config" env:"SEMTAG_CONFIG"`
	}

	_, _ = flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args)

	return pre.Config
}

// newLogger writes "level=... msg=..." lines without timestamps.
// Info and above when verbose, errors only otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// nextTag runs the whole flow: sync, list, select, create, push.
func nextTag(ctx context.Context, opt Options, log *slog.Logger) (string, error) {
	repo, err := gitrepo.Open(opt.OptionsRepo.RepoPath, log)
	if err != nil {
		return "", err
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", err
	}
	log.Info("repository opened", "path", opt.OptionsRepo.RepoPath, "remotes", remotes)

	if !opt.OptionsRepo.NoPull {
		if err := repo.FetchAndPull(ctx); err != nil {
			return "", pullHint(err)
		}
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", err
	}

	sel := opt.selectOptions()
	sel.Logger = log

	res, err := semtag.Next(tags, sel)
	if err != nil {
		return "", err
	}

	log.Info("next tag selected", "tag", res.Tag, "reason", res.Reason.String())

	if !res.Create {
		return res.Tag, nil
	}

	// tags may have changed since listing
	exists, err := repo.TagExists(res.Tag)
	if err != nil {
		return "", err
	}
	if exists {
		return "", &semtag.TagExistsError{Tag: res.Tag}
	}

	if _, err := repo.CreateTag(res.Tag); err != nil {
		return "", err
	}

	if opt.OptionsRepo.NoPush {
		return res.Tag, nil
	}

	if err := repo.PushTag(ctx, res.Tag); err != nil {
		return "", err
	}

	return res.Tag, nil
}

// pullHint points at --no-pull when the branch cannot be fast-forwarded.
func pullHint(err error) error {
	if errors.Is(err, gitrepo.ErrDiverged) {
		return fmt.Errorf("%w (merge manually or rerun with --no-pull)", err)
	}

	return err
}
