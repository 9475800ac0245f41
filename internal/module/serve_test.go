package module

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeAnswersEachRequest(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(
		`{"id":1,"export":"greet","arg":"boi"}` + "\n" +
			`{"id":2,"export":"assemble","arg":"jr $31"}` + "\n",
	)
	var out bytes.Buffer
	require.NoError(t, Serve(context.Background(), in, &out, NewUWMIPS))

	dec := json.NewDecoder(&out)
	var hello Hello
	require.NoError(t, dec.Decode(&hello))
	assert.Equal(t, Hello{Name: Name, Version: Version, Exports: []string{ExportGreet}}, hello)

	var first, second Response
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, Response{ID: 1, Alerts: []string{"Hello, boi!"}}, first)
	assert.Equal(t, uint64(2), second.ID)
	assert.Empty(t, second.Alerts)
	assert.Contains(t, second.Error, "no such export")
}

func TestServeRejectsMalformedRequest(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Serve(context.Background(), strings.NewReader("{oops"), &out, NewUWMIPS)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read request")
}

func TestServeStopsWhenContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Serve(ctx, strings.NewReader(`{"id":1,"export":"greet","arg":"x"}`), &out, NewUWMIPS)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), `"name":"uwmips"`)
}
