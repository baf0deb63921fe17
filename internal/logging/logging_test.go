package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestSetup_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, true)

	logx.Debugf("measured %s", "strings")
	assert.Contains(t, buf.String(), "measured strings")
}

func TestSetup_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)

	logx.Debugf("hidden")
	logx.Infof("hidden too")
	assert.NotContains(t, buf.String(), "hidden")

	logx.Errorf("shown")
	assert.Contains(t, buf.String(), "shown")
}
