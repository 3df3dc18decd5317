package audio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

var (
	ErrNoAudio = errors.New("no audio available")
	ErrStale   = errors.New("playback superseded by a newer request")
)

const DefaultTimeout = 8 * time.Second

type Player interface {
	// Play starts url and returns once playback has started or failed.
	Play(ctx context.Context, url string) error
}

// Launcher starts playing the file at path and returns a function that
// waits for playback to end.
type Launcher func(ctx context.Context, path string) (wait func() error, err error)

func CommandLauncher(command string, args []string) Launcher {
	return func(ctx context.Context, path string) (func() error, error) {
		argv := append(append([]string{}, args...), path)
		cmd := exec.CommandContext(ctx, command, argv...)
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return cmd.Wait, nil
	}
}

// ExecPlayer plays local audio files through an external player such as
// ffplay. Only one file sounds at a time: every Play bumps a token and
// kills whatever was playing before.
type ExecPlayer struct {
	Fs      afero.Fs
	Root    string
	Launch  Launcher
	Timeout time.Duration
	Logger  *log.Logger

	mu     sync.Mutex
	token  uint64
	cancel context.CancelFunc
}

func NewExecPlayer(fs afero.Fs, root, command string, args []string, timeout time.Duration) *ExecPlayer {
	return &ExecPlayer{
		Fs:      fs,
		Root:    root,
		Launch:  CommandLauncher(command, args),
		Timeout: timeout,
	}
}

// Path maps a "./" relative audio url to a file below Root.
func (p *ExecPlayer) Path(rawURL string) (string, error) {
	rel, err := url.PathUnescape(strings.TrimPrefix(rawURL, "./"))
	if err != nil {
		return "", fmt.Errorf("audio: bad path %q: %w", rawURL, err)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("audio: path %q escapes the audio root", rawURL)
	}
	return filepath.Join(p.Root, clean), nil
}

type launched struct {
	wait func() error
	err  error
}

func (p *ExecPlayer) Play(ctx context.Context, rawURL string) error {
	p.mu.Lock()
	p.token++
	token := p.token
	if p.cancel != nil {
		p.cancel()
	}
	playCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	path, err := p.Path(rawURL)
	if err != nil {
		p.release(token)
		return err
	}
	if _, err := p.Fs.Stat(path); err != nil {
		p.release(token)
		return err
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	started := make(chan launched, 1)
	go func() {
		wait, err := p.Launch(playCtx, path)
		started <- launched{wait, err}
	}()

	select {
	case r := <-started:
		if r.err != nil {
			if !p.release(token) {
				return ErrStale
			}
			return r.err
		}
		go p.finish(token, r.wait)
		if !p.current(token) {
			return ErrStale
		}
		return nil
	case <-timer.C:
		p.release(token)
		go reap(started)
		return fmt.Errorf("audio: %s not playable after %s", rawURL, timeout)
	case <-playCtx.Done():
		go reap(started)
		if !p.current(token) {
			return ErrStale
		}
		p.release(token)
		return ctx.Err()
	}
}

func reap(started chan launched) {
	if r := <-started; r.err == nil {
		r.wait()
	}
}

func (p *ExecPlayer) finish(token uint64, wait func() error) {
	err := wait()
	if p.release(token) && err != nil && p.Logger != nil {
		p.Logger.Printf("audio: player exited: %v", err)
	}
}

func (p *ExecPlayer) current(token uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token == token
}

// release drops the cancel func if token is still the latest play.
func (p *ExecPlayer) release(token uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.token != token {
		return false
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	return true
}

// Stop silences any playback and turns pending completions stale.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// PlayFirst tries urls in order and returns the first one that started.
func PlayFirst(ctx context.Context, p Player, urls []string) (string, error) {
	for _, u := range urls {
		err := p.Play(ctx, u)
		if err == nil {
			return u, nil
		}
		if errors.Is(err, ErrStale) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", ErrNoAudio
}
