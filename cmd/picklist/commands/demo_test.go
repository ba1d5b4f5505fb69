package commands

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("apple\n\n  banana  \r\ncherry"))

	options, err := readOptions(cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, options)
}
