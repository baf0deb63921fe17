// Package config loads and resolves membench settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags that were explicitly set (--iterations, --format, --theme, ...)
//  2. Environment variables (MEMBENCH_ITERATIONS, MEMBENCH_FORMAT, ...)
//  3. YAML config file (--config, .membench.yaml in the working directory,
//     or $XDG_CONFIG_HOME/membench/.membench.yaml)
//  4. Hardcoded defaults
//
// Every resolved field records the source it came from, so --debug can show
// why a value is what it is.
//
// # Environment Variables
//
//   - MEMBENCH_ITERATIONS: positive integer
//   - MEMBENCH_FORMAT: auto, terminal, llm, json
//   - MEMBENCH_THEME: default, orca, mono
//   - MEMBENCH_METRIC: memory, objects, retained
//   - MEMBENCH_NO_COLOR or NO_COLOR: "true"/"1" disables colors (NO_COLOR also
//     accepts any non-empty value, per no-color.org)
//   - MEMBENCH_DEBUG: "true"/"1" enables debug logging
package config
