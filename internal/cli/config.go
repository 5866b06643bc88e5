package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permpro/pkg/bench"
	"github.com/matzehuels/permpro/pkg/errors"
)

// configFile returns the config file to read and whether it was named
// explicitly with --config.
func (c *CLI) configFile() (string, bool, error) {
	if c.configPath != "" {
		return c.configPath, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, configFileName), false, nil
}

// loadOptions reads the config file and overlays every flag the user set
// explicitly on cmd. Values neither in the file nor on the command line are
// left zero for bench.Options.SetDefaults.
func (c *CLI) loadOptions(cmd *cobra.Command, flags bench.Options) (bench.Options, error) {
	var opts bench.Options

	path, explicit, err := c.configFile()
	if err == nil {
		loaded, found, err := bench.LoadOptions(path)
		if err != nil {
			return bench.Options{}, err
		}
		if !found && explicit {
			return bench.Options{}, errors.New(errors.ErrCodeNotFound, "config file %s not found", path)
		}
		if found {
			c.Logger.Debug("loaded config", "path", path)
			opts = loaded
		}
	}

	mergeFlags(cmd, &opts, flags)
	return opts, nil
}

// mergeFlags copies the flags changed on cmd from flags into opts.
func mergeFlags(cmd *cobra.Command, opts *bench.Options, flags bench.Options) {
	changed := cmd.Flags().Changed
	if changed("from") {
		opts.From = flags.From
	}
	if changed("to") {
		opts.To = flags.To
	}
	if changed("reference") {
		opts.Reference = flags.Reference
	}
	if changed("workers") {
		opts.Workers = flags.Workers
	}
	if changed("format") {
		opts.Format = flags.Format
	}
	if changed("no-cache") {
		opts.NoCache = flags.NoCache
	}
	if changed("refresh") {
		opts.Refresh = flags.Refresh
	}
	if changed("cache-url") {
		opts.CacheURL = flags.CacheURL
	}
	if changed("cache-ttl") {
		opts.CacheTTL = flags.CacheTTL
	}
}
