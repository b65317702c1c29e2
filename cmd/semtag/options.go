package main

import (
	"fmt"

	"github.com/woozymasta/semtag"
)

type Options struct {
	// betteralign:ignore

	// Repository access
	OptionsRepo OptionsRepo `group:"Repository"`
	// Tag naming and selection
	OptionsTag OptionsTag `group:"Tag"`
	// Logging and misc
	OptionsOutput OptionsOutput `group:"Output"`

	Config  string `short:"c" long:"config" description:"INI file with default option values (command line wins)" env:"SEMTAG_CONFIG" no-ini:"true"`
	Version bool   `long:"version" description:"Print version and exit" no-ini:"true"`
}

type OptionsRepo struct {
	RepoPath string `short:"r" long:"repo-path" description:"Path to the git repository" env:"SEMTAG_REPO_PATH" default:"."`
	NoPull   bool   `long:"no-pull" description:"Do not fetch and pull remotes before reading tags" env:"SEMTAG_NO_PULL"`
	DryRun   bool   `short:"n" long:"dry-run" description:"Only print the next tag, do not create it" env:"SEMTAG_DRY_RUN"`
	NoPush   bool   `long:"no-push" description:"Create the tag locally without pushing it" env:"SEMTAG_NO_PUSH"`
}

type OptionsTag struct {
	Prefix   string `short:"p" long:"prefix" description:"Tag prefix before MAJOR.MINOR.PATCH" env:"SEMTAG_PREFIX" default:"v"`
	Suffix   string `short:"s" long:"suffix" description:"Tag suffix after MAJOR.MINOR.PATCH" env:"SEMTAG_SUFFIX"`
	Major    int    `short:"M" long:"major" description:"Only consider major version X (-1 = any)" env:"SEMTAG_MAJOR" default:"-1"`
	Minor    int    `short:"m" long:"minor" description:"Only consider minor version Y, needs --major (-1 = any)" env:"SEMTAG_MINOR" default:"-1"`
	Snapshot bool   `short:"S" long:"snapshot" description:"Render MAJOR.MINOR-SNAPSHOT instead of a patch number" env:"SEMTAG_SNAPSHOT"`
}

type OptionsOutput struct {
	Verbose bool `short:"v" long:"verbose" description:"Log progress to stderr" env:"SEMTAG_VERBOSE"`
}

// validate rejects filter values below the "unset" marker.
func (o Options) validate() error {
	if o.OptionsTag.Major < semtag.Unset {
		return fmt.Errorf("invalid --major %d: must be >= 0 (or -1 for any)", o.OptionsTag.Major)
	}

	if o.OptionsTag.Minor < semtag.Unset {
		return fmt.Errorf("invalid --minor %d: must be >= 0 (or -1 for any)", o.OptionsTag.Minor)
	}

	return nil
}

// selectOptions maps CLI options to library options.
func (o Options) selectOptions() semtag.Options {
	return semtag.Options{
		Prefix:   o.OptionsTag.Prefix,
		Suffix:   o.OptionsTag.Suffix,
		Filter:   semtag.NewFilter(o.OptionsTag.Major, o.OptionsTag.Minor),
		Snapshot: o.OptionsTag.Snapshot,
		Create:   !o.OptionsRepo.DryRun,
	}
}
