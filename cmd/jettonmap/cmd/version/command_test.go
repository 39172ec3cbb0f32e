package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockapp "github.com/agentstation/jettonmap/internal/cmd/application"
)

func TestVersionCommand(t *testing.T) {
	mock := &mockapp.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc123" },
	}

	var buf bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "jettonmap version 1.2.3")
	assert.Contains(t, buf.String(), "commit: abc123")
	assert.Contains(t, buf.String(), "built by: unknown")
}
