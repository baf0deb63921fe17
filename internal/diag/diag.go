// Package diag starts an optional gops agent so a stuck run can be
// inspected with `gops stack <pid>` or `gops memstats <pid>`.
package diag

import (
	"fmt"
	"sync"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"
)

// Start launches the gops agent on addr ("" picks a free local port). The
// returned stop function shuts it down; later calls are no-ops.
func Start(addr string) (stop func(), err error) {
	if err := agent.Listen(agent.Options{Addr: addr, ShutdownCleanup: false}); err != nil {
		return nil, fmt.Errorf("starting gops agent: %w", err)
	}
	logx.Debugf("gops agent listening (addr=%q)", addr)
	var once sync.Once
	return func() { once.Do(agent.Close) }, nil
}
