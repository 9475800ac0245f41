package module

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Serve runs the module side of the wire protocol until r is exhausted or
// ctx is done. newModule is called once with a Host that collects alerts for
// the request in progress.
func Serve(ctx context.Context, r io.Reader, w io.Writer, newModule func(Host) Module) error {
	var pending []string
	mod := newModule(HostFunc(func(message string) {
		pending = append(pending, message)
	}))
	defer mod.Close()

	enc := json.NewEncoder(w)
	dec := json.NewDecoder(r)
	if err := enc.Encode(Hello{Name: mod.Name(), Version: Version, Exports: mod.Exports()}); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var req Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read request: %w", err)
		}
		pending = nil
		resp := Response{ID: req.ID}
		if err := Call(ctx, mod, req.Export, req.Arg); err != nil {
			resp.Error = err.Error()
		}
		resp.Alerts = pending
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response %d: %w", req.ID, err)
		}
	}
}
