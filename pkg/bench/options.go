package bench

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/permpro/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFrom and DefaultTo bound the default size range. 12! is about
	// half a billion permutations, a few seconds per generator.
	DefaultFrom = 10
	DefaultTo   = 12

	// DefaultReference is the default reference generator.
	DefaultReference = GeneratorHeap

	// DefaultWorkers runs the engine on a single goroutine.
	DefaultWorkers = 1

	// DefaultCacheTTL is how long measured rows stay cached.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Format constants for report output.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatPlain    = "plain"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// DefaultFormat is the default report format.
const DefaultFormat = FormatTable

// Formats lists every valid report format.
var Formats = []string{FormatTable, FormatMarkdown, FormatPlain, FormatJSON, FormatYAML}

// =============================================================================
// Options
// =============================================================================

// Options configures a benchmark run. It can be loaded from a TOML file and
// overridden by CLI flags.
type Options struct {
	From      int           `toml:"from" json:"from"`
	To        int           `toml:"to" json:"to"`
	Reference string        `toml:"reference" json:"reference"`
	Workers   int           `toml:"workers" json:"workers"`
	Format    string        `toml:"format" json:"format"`
	NoCache   bool          `toml:"no_cache" json:"no_cache,omitempty"`
	Refresh   bool          `toml:"refresh" json:"refresh,omitempty"`
	CacheURL  string        `toml:"cache_url" json:"cache_url,omitempty"`
	CacheTTL  time.Duration `toml:"cache_ttl" json:"cache_ttl,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// SetDefaults fills zero-valued fields with defaults.
func (o *Options) SetDefaults() {
	if o.From == 0 {
		o.From = DefaultFrom
	}
	if o.To == 0 {
		o.To = max(o.From, DefaultTo)
	}
	if o.Reference == "" {
		o.Reference = DefaultReference
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
}

// Validate checks the options without modifying them.
func (o *Options) Validate() error {
	if err := errors.ValidateRange(o.From, o.To, errors.MaxBenchSize); err != nil {
		return err
	}
	if _, err := Reference(o.Reference); err != nil {
		return err
	}
	if o.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must be at least 1, got %d", o.Workers)
	}
	if err := errors.ValidateFormat(o.Format, Formats...); err != nil {
		return err
	}
	if o.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	if o.CacheURL != "" && !strings.HasPrefix(o.CacheURL, "redis://") && !strings.HasPrefix(o.CacheURL, "rediss://") {
		return errors.New(errors.ErrCodeInvalidInput, "cache url must use redis:// or rediss://, got %q", o.CacheURL)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// LoadOptions reads options from a TOML file. A missing file is not an
// error: it returns zero options and found=false. Unknown keys are rejected
// so typos do not silently fall back to defaults.
func LoadOptions(path string) (opts Options, found bool, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return Options{}, false, nil
	}

	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, true, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, true, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return opts, true, nil
}
