// Package logging configures go-zero's logx for membench diagnostics.
//
// logx carries debug output only: config sources, per-variant timings,
// diagnostics agent state. User-facing errors are written by the CLI as
// plain "membench: ..." lines.
package logging

import (
	"io"

	"github.com/zeromicro/go-zero/core/logx"
)

// Setup routes logx to w in plain console encoding. With debug off only
// errors are emitted.
func Setup(w io.Writer, debug bool) {
	level := "error"
	if debug {
		level = "debug"
	}
	logx.DisableStat()
	// SetUp only fails for invalid modes; console mode is always valid.
	_ = logx.SetUp(logx.LogConf{
		ServiceName: "membench",
		Mode:        "console",
		Encoding:    "plain",
		Level:       level,
	})
	logx.SetWriter(logx.NewWriter(w))
	if debug {
		logx.SetLevel(logx.DebugLevel)
	} else {
		logx.SetLevel(logx.ErrorLevel)
	}
}

// Close flushes and releases the logx writer.
func Close() {
	_ = logx.Close()
}
