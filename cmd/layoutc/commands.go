package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/wippyai/layout-codec/config"
	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
	"github.com/wippyai/layout-codec/registry"
	"github.com/wippyai/layout-codec/transcoder"
)

type tool struct {
	cfg   *config.Config
	log   *zap.Logger
	stdin io.Reader

	// openStore connects to the layout registry; the returned function
	// releases it.
	openStore func(ctx context.Context) (registry.Store, func(), error)

	// runView starts the interactive editor.
	runView func(m *viewModel) error
}

func newTool() *tool {
	t := &tool{stdin: os.Stdin}
	t.openStore = t.connectRedis
	t.runView = runViewProgram
	return t
}

func (t *tool) setup(c *cli.Context) error {
	cfg := config.Default()
	if path := c.GlobalString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if level := c.GlobalString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	t.cfg = cfg
	t.log = log
	transcoder.SetLogger(log)
	registry.SetLogger(log)
	return nil
}

func (t *tool) teardown(_ *cli.Context) error {
	if t.log != nil {
		_ = t.log.Sync()
	}
	return nil
}

func (t *tool) connectRedis(ctx context.Context) (registry.Store, func(), error) {
	s, err := registry.Connect(ctx, t.cfg.RegistryOptions())
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}

func (t *tool) loadLayout(c *cli.Context) (*layout.Layout, error) {
	path, name := c.String("layout"), c.String("layout-name")
	switch {
	case path != "" && name != "":
		return nil, fmt.Errorf("--layout and --layout-name are mutually exclusive")
	case path != "":
		return layout.Load(path)
	case name != "":
		ctx := context.Background()
		store, release, err := t.openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer release()
		return store.Get(ctx, name)
	default:
		return nil, fmt.Errorf("one of --layout or --layout-name is required")
	}
}

func (t *tool) codec(c *cli.Context) (*transcoder.Codec, error) {
	l, err := t.loadLayout(c)
	if err != nil {
		return nil, err
	}
	return transcoder.New(l, t.cfg.CodecOptions()...)
}

func (t *tool) readInput(c *cli.Context) ([]byte, error) {
	path := c.String("in")
	if path == "" || path == "-" {
		return io.ReadAll(t.stdin)
	}
	return os.ReadFile(path)
}

// readBinary reads the input file, decoding it from hex when --hex is set.
// Whitespace in hex input is ignored.
func (t *tool) readBinary(c *cli.Context) ([]byte, error) {
	data, err := t.readInput(c)
	if err != nil {
		return nil, err
	}
	if !c.Bool("hex") {
		return data, nil
	}
	b, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, errors.Load("hex input", err)
	}
	return b, nil
}

func (t *tool) writeOutput(c *cli.Context, data []byte) error {
	if path := c.String("out"); path != "" {
		return os.WriteFile(path, data, 0o644)
	}
	_, err := c.App.Writer.Write(data)
	return err
}

func (t *tool) decode(c *cli.Context) error {
	codec, err := t.codec(c)
	if err != nil {
		return err
	}
	data, err := t.readBinary(c)
	if err != nil {
		return err
	}
	text, err := codec.Serialize(data)
	if err != nil {
		return err
	}
	t.log.Debug("decoded", zap.Int("bytes", len(data)), zap.Int("text", len(text)))
	return t.writeOutput(c, append(text, '\n'))
}

func (t *tool) encode(c *cli.Context) error {
	codec, err := t.codec(c)
	if err != nil {
		return err
	}
	text, err := t.readInput(c)
	if err != nil {
		return err
	}
	data, err := codec.Deserialize(bytes.TrimSpace(text))
	if err != nil {
		return err
	}
	t.log.Debug("encoded", zap.Int("text", len(text)), zap.Int("bytes", len(data)))
	if c.Bool("hex") {
		return t.writeOutput(c, []byte(hex.EncodeToString(data)+"\n"))
	}
	return t.writeOutput(c, data)
}

func (t *tool) size(c *cli.Context) error {
	l, err := t.loadLayout(c)
	if err != nil {
		return err
	}
	data, err := t.readBinary(c)
	if err != nil {
		return err
	}
	n, err := l.SizeInBytes(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, n)
	return err
}

func (t *tool) validate(c *cli.Context) error {
	l, err := t.loadLayout(c)
	if err != nil {
		return err
	}
	if err := layout.Validate(l); err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprint(w, l.String())
	fmt.Fprintf(w, "min size: %d bytes\n", layout.MinSize(l))
	if n, ok := layout.FixedSize(l); ok {
		fmt.Fprintf(w, "fixed size: %d bytes\n", n)
	}
	return nil
}

func (t *tool) withStore(fn func(ctx context.Context, s registry.Store) error) error {
	ctx := context.Background()
	store, release, err := t.openStore(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx, store)
}

func requireArgs(c *cli.Context, n int) error {
	if len(c.Args()) != n {
		return fmt.Errorf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage)
	}
	return nil
}

func (t *tool) registryPut(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	name, path := c.Args().Get(0), c.Args().Get(1)
	l, err := layout.Load(path)
	if err != nil {
		return err
	}
	return t.withStore(func(ctx context.Context, s registry.Store) error {
		return s.Put(ctx, name, l)
	})
}

func (t *tool) registryGet(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	return t.withStore(func(ctx context.Context, s registry.Store) error {
		l, err := s.Get(ctx, c.Args().First())
		if err != nil {
			return err
		}
		data, err := layout.Marshal(l)
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(append(data, '\n'))
		return err
	})
}

func (t *tool) registryList(c *cli.Context) error {
	return t.withStore(func(ctx context.Context, s registry.Store) error {
		names, err := s.List(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(c.App.Writer, name)
		}
		return nil
	})
}

func (t *tool) registryDelete(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	return t.withStore(func(ctx context.Context, s registry.Store) error {
		return s.Delete(ctx, c.Args().First())
	})
}

func (t *tool) view(c *cli.Context) error {
	codec, err := t.codec(c)
	if err != nil {
		return err
	}
	in := c.String("in")
	if in == "" || in == "-" {
		return fmt.Errorf("view needs --in FILE")
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	out := c.String("out")
	if out == "" {
		out = in
	}

	m, err := newViewModel(codec, data, in, out)
	if err != nil {
		return err
	}
	return t.runView(m)
}
