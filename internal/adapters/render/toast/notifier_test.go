package toast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velolib/valolab/internal/ports"
)

func TestNotifyWritesTitleAndDescription(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n := New(&out)

	n.Notify(ports.Toast{Level: ports.ToastSuccess, Title: "Link copied!", Description: "Share this URL"})
	n.Notify(ports.Toast{Level: ports.ToastError, Title: "Failed to copy"})

	assert.Contains(t, out.String(), "Link copied!")
	assert.Contains(t, out.String(), "Share this URL")
	assert.Contains(t, out.String(), "Failed to copy\n")
}
