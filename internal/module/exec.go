package module

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

// DefaultHandshakeTimeout bounds how long Exec waits for the hello frame.
const DefaultHandshakeTimeout = 5 * time.Second

// closeGrace is how long Close waits for the module to exit after stdin closes.
const closeGrace = 2 * time.Second

// ErrHandshakeTimeout is wrapped when the module does not introduce itself in time.
var ErrHandshakeTimeout = errors.New("handshake timed out")

// Exec acquires a module by starting an executable that speaks the wire protocol.
type Exec struct {
	Path             string
	Args             []string
	Env              []string
	HandshakeTimeout time.Duration
}

func (e Exec) Source() string { return e.Path }

func (e Exec) Acquire(ctx context.Context, host Host) (Module, error) {
	if host == nil {
		return nil, fmt.Errorf("acquire %s: nil host", e.Path)
	}
	cmd := exec.Command(e.Path, e.Args...)
	cmd.Env = append(os.Environ(), e.Env...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", e.Path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", e.Path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start module %s: %w", e.Path, err)
	}

	p := &process{
		path:      e.Path,
		cmd:       cmd,
		stdin:     stdin,
		enc:       json.NewEncoder(stdin),
		host:      host,
		responses: make(chan Response),
		exited:    make(chan struct{}),
		closing:   make(chan struct{}),
	}
	hello := make(chan helloResult, 1)
	go p.readLoop(json.NewDecoder(stdout), hello)

	timeout := e.HandshakeTimeout
	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-hello:
		if res.err != nil {
			p.kill()
			return nil, fmt.Errorf("module %s handshake: %w", e.Path, res.err)
		}
		p.hello = res.hello
		return p, nil
	case <-timer.C:
		p.kill()
		return nil, fmt.Errorf("module %s: %w after %s", e.Path, ErrHandshakeTimeout, timeout)
	case <-ctx.Done():
		p.kill()
		return nil, fmt.Errorf("acquire %s: %w", e.Path, ctx.Err())
	}
}

type helloResult struct {
	hello Hello
	err   error
}

// process is a Module living in a child process.
type process struct {
	path  string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	enc   *json.Encoder
	host  Host
	hello Hello

	mu     sync.Mutex
	nextID uint64
	closed bool

	responses chan Response
	exited    chan struct{}
	readErr   error
	closing   chan struct{}
	closeOnce sync.Once
}

func (p *process) readLoop(dec *json.Decoder, hello chan<- helloResult) {
	defer close(p.exited)
	var h Hello
	if err := dec.Decode(&h); err != nil {
		hello <- helloResult{err: err}
		p.readErr = err
		return
	}
	if h.Name == "" {
		err := errors.New("hello frame without a module name")
		hello <- helloResult{err: err}
		p.readErr = err
		return
	}
	hello <- helloResult{hello: h}
	for {
		var resp Response
		if err := dec.Decode(&resp); err != nil {
			p.readErr = err
			return
		}
		select {
		case p.responses <- resp:
		case <-p.closing:
			return
		}
	}
}

func (p *process) Name() string { return p.hello.Name }

func (p *process) Exports() []string { return append([]string(nil), p.hello.Exports...) }

func (p *process) Lookup(export string) (Func, bool) {
	for _, name := range p.hello.Exports {
		if name == export {
			return func(ctx context.Context, arg string) error {
				return p.call(ctx, export, arg)
			}, true
		}
	}
	return nil, false
}

func (p *process) call(ctx context.Context, export, arg string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("%s.%s: %w", p.hello.Name, export, ErrClosed)
	}
	p.nextID++
	id := p.nextID
	if err := p.enc.Encode(Request{ID: id, Export: export, Arg: arg}); err != nil {
		return fmt.Errorf("send %s: %w", export, err)
	}
	for {
		select {
		case resp := <-p.responses:
			if resp.ID != id {
				// A reply to a call whose caller gave up.
				continue
			}
			for _, alert := range resp.Alerts {
				p.host.Alert(alert)
			}
			if resp.Error != "" {
				return &RemoteError{Export: export, Message: resp.Error}
			}
			return nil
		case <-p.exited:
			return fmt.Errorf("%s exited during %s: %v", p.path, export, p.readErr)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close ends the child process: stdin is closed so the module sees EOF, and
// it is killed if it has not exited within closeGrace.
func (p *process) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.closing)
		_ = p.stdin.Close()
		select {
		case <-p.exited:
		case <-time.After(closeGrace):
			_ = p.cmd.Process.Kill()
			<-p.exited
		}
		err = p.cmd.Wait()
	})
	return err
}

func (p *process) kill() {
	p.closeOnce.Do(func() {
		close(p.closing)
		_ = p.cmd.Process.Kill()
		<-p.exited
		_ = p.cmd.Wait()
	})
}
