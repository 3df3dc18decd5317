package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/lai323/vocabgarden/audio"
	"github.com/lai323/vocabgarden/config"
	"github.com/lai323/vocabgarden/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type audioOptions struct {
	Dir       string
	TermsFile string
	Voice     string
}

// voiceRoot is the directory holding the voice folders, the manifest's
// own directory unless given.
func voiceRoot(cfg *config.Config, options *audioOptions) string {
	if options.Dir != "" {
		return options.Dir
	}
	return filepath.Dir(cfg.AudioManifest)
}

// manifestPrefix is the voice root relative to AudioRoot, the form the
// manifest stores paths in.
func manifestPrefix(cfg *config.Config, dir string) string {
	rel, err := filepath.Rel(cfg.AudioRoot, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(dir)
	}
	return filepath.ToSlash(rel)
}

func audioManifest(cfg *config.Config, options *audioOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()
		dir := voiceRoot(cfg, options)
		m, dups, err := audio.BuildManifest(fs, dir, manifestPrefix(cfg, dir))
		if err != nil {
			return utils.FmtErrorf("rebuild audio manifest", err)
		}
		if err := audio.WriteManifest(fs, cfg.AudioManifest, m); err != nil {
			return utils.FmtErrorf("write audio manifest", err)
		}
		out := cmd.OutOrStdout()
		if len(dups) > 0 {
			fmt.Fprintln(out, "Duplicate key+voice mappings detected:")
			for _, d := range dups {
				fmt.Fprintf(out, "- %s / %s: kept %s, saw %s\n", d.Key, d.Voice, d.Kept, d.Seen)
			}
		}
		fmt.Fprintf(out, "Manifest updated: %s (%d terms)\n", cfg.AudioManifest, len(m))
		return nil
	}
}

func audioCheck(cfg *config.Config, options *audioOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()
		lines := args
		if options.TermsFile != "" {
			b, err := afero.ReadFile(fs, options.TermsFile)
			if err != nil {
				return err
			}
			lines = strings.Split(string(b), "\n")
		}
		terms := audio.CleanTerms(lines)
		if len(terms) == 0 {
			return errors.New("No terms provided.")
		}

		manifest, _ := audio.LoadManifest(fs, cfg.AudioManifest)
		dir := voiceRoot(cfg, options)
		disk, _, err := audio.BuildManifest(fs, dir, manifestPrefix(cfg, dir))
		if err != nil {
			disk = audio.Manifest{}
		}
		missingManifest, missingDisk := audio.CheckTerms(manifest, disk, terms)
		audio.WriteCheckReport(cmd.OutOrStdout(), len(terms), missingManifest, missingDisk)
		return nil
	}
}

func audioPlay(cfg *config.Config, options *audioOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cfg.FfplayPath == "" {
			return errors.New("FfplayPath empty, audio is disabled")
		}
		fs := afero.NewOsFs()
		manifest, err := audio.LoadManifest(fs, cfg.AudioManifest)
		if err != nil {
			return utils.FmtErrorf("load audio manifest", err)
		}
		preferred := cfg.AudioVoice
		if options.Voice != "" {
			preferred = options.Voice
		}
		voice, warning := audio.ResolveVoice(manifest, preferred)
		if warning != "" {
			fmt.Fprintln(cmd.OutOrStdout(), warning)
		}
		url := audio.SampleURL(manifest, voice, rand.New(rand.NewSource(time.Now().UnixNano())))
		if url == "" {
			return errors.New("No audio sample found for this voice.")
		}

		player := audio.NewExecPlayer(fs, cfg.AudioRoot, cfg.FfplayPath, cfg.FfplayArgs, cfg.AudioTimeoutDuration())
		done := make(chan error, 1)
		player.Launch = waitLauncher(player.Launch, done)
		if err := player.Play(context.Background(), url); err != nil {
			return utils.FmtErrorf("Audio sample failed to play", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "playing %s\n", url)
		return <-done
	}
}

// waitLauncher reports the end of playback on done.
func waitLauncher(launch audio.Launcher, done chan<- error) audio.Launcher {
	return func(ctx context.Context, path string) (func() error, error) {
		wait, err := launch(ctx, path)
		if err != nil {
			return nil, err
		}
		return func() error {
			err := wait()
			done <- err
			return err
		}, nil
	}
}
