// Package profile loads named dump-limit profiles from configuration files.
//
// Operational tooling rarely wants one fixed set of truncation limits: an
// audit trail affords longer lines than a hot-path log. Profiles give each
// consumer a named configuration in a shared TOML or YAML file:
//
//	default = "compact"
//
//	[profiles.compact]
//	max_total_len = 80
//	max_keys = 5
//
//	[profiles.audit]
//	max_total_len = 400
//	hide_keys = ["password"]
//	mask_keys_regex = "(?i)token|secret"
//
// Load and convert a profile to options:
//
//	f, err := profile.Load("dump-profiles.toml")
//	opts, err := f.Options("audit")
//	p := partial.New(opts)
//
// # Hot Reload
//
// Watch follows a profile file and delivers the re-parsed file on every
// change, using fsnotify with a polling fallback:
//
//	files, err := profile.Watch(ctx, "dump-profiles.toml")
//	for f := range files { ... }
//
// # Validation
//
// Schema returns a JSON Schema for the file format, suitable for editor
// integration and CI validation of profile files.
package profile
