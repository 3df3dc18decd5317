package practice

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/lai323/vocabgarden/audio"
	"github.com/lai323/vocabgarden/config"
	"github.com/lai323/vocabgarden/db"
	"github.com/lai323/vocabgarden/quiz"
	"github.com/lai323/vocabgarden/utils"
	"github.com/lai323/vocabgarden/vocab"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Options struct {
	Lessons []string
	Mode    string
	Answer  string
	Display string
	Count   int
	Starred bool
	NoAudio bool
	Voice   string
}

// Prepared is everything a quiz run needs, loaded from disk.
type Prepared struct {
	File    string
	Session *quiz.Session
	Starred *db.Starred
	Audio   Audio
	closers []io.Closer
}

func (p *Prepared) Close() {
	for _, c := range p.closers {
		c.Close()
	}
}

func Run(cfg *config.Config, options *Options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cfg.StoragePath == "" {
			return errors.New("StoragePath empty")
		}
		if len(args) > 1 {
			return errors.New("Only one vocabulary file can be practiced at a time")
		}
		file := ""
		if len(args) == 1 {
			file = args[0]
		}

		if err := os.MkdirAll(cfg.StoragePath, 0755); err != nil {
			return err
		}
		logger, closeLog := openLog(*cfg)
		defer closeLog()

		p, err := Prepare(afero.NewOsFs(), *cfg, *options, file, logger)
		if err != nil {
			return err
		}
		defer p.Close()
		if err := RunSession(p.Session, p.Starred, p.Audio, logger); err != nil {
			return err
		}
		fmt.Println(p.Session.Summary())
		return nil
	}
}

// Prepare loads vocabulary, starred words and audio for one quiz.
func Prepare(fs afero.Fs, cfg config.Config, options Options, file string, logger *log.Logger) (*Prepared, error) {
	settings, err := MergeSettings(cfg.Settings(), options)
	if err != nil {
		return nil, err
	}

	lib := vocab.NewLibrary(fs, cfg.VocabularyDir)
	if file == "" {
		files, err := lib.Files()
		if err != nil {
			return nil, utils.FmtErrorf("list vocabulary", err)
		}
		file = vocab.DefaultFile(files)
		if file == "" {
			return nil, fmt.Errorf("no vocabulary files in %s", cfg.VocabularyDir)
		}
	}
	data, err := lib.Load(file)
	if err != nil {
		return nil, utils.FmtErrorf("load "+file, err)
	}
	lessons := options.Lessons
	if len(lessons) == 0 {
		lessons = data.LessonKeys()
	}

	p := &Prepared{File: file}
	var store db.StarStore
	bolt, err := db.NewBoltStarStore(cfg.DbFile())
	if err != nil {
		logger.Printf("starred: %v, stars will not be saved", err)
		store = &db.MemStarStore{}
	} else {
		store = bolt
		p.closers = append(p.closers, bolt)
	}
	p.Starred = db.LoadStarred(store)
	p.Starred.Logger = logger
	if p.Starred.LastErr != nil {
		logger.Printf("starred: %v", p.Starred.LastErr)
	}

	pool := vocab.BuildPool(data, lessons, file)
	session, err := quiz.Start(pool, settings, file, p.Starred, nil)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.Session = session
	p.Audio = LoadAudio(fs, cfg, settings, logger)
	return p, nil
}

// LoadAudio loads the manifest and builds the player. Audio problems are
// logged, never returned.
func LoadAudio(fs afero.Fs, cfg config.Config, settings quiz.Settings, logger *log.Logger) Audio {
	manifest, err := audio.LoadManifest(fs, cfg.AudioManifest)
	if err != nil {
		logger.Printf("audio manifest: %v", err)
	}
	voice, warning := audio.ResolveVoice(manifest, settings.AudioVoice)
	if warning != "" {
		logger.Print(warning)
	}
	a := Audio{Manifest: manifest, Voice: voice}
	if settings.AudioEnabled && cfg.FfplayPath != "" {
		player := audio.NewExecPlayer(fs, cfg.AudioRoot, cfg.FfplayPath, cfg.FfplayArgs, cfg.AudioTimeoutDuration())
		player.Logger = logger
		a.Player = player
	}
	return a
}

// MergeSettings lays command line options over the configured settings.
func MergeSettings(s quiz.Settings, options Options) (quiz.Settings, error) {
	if options.Mode != "" {
		s.QuestionMode = quiz.QuestionMode(options.Mode)
	}
	if options.Answer != "" {
		s.AnswerMode = quiz.AnswerMode(options.Answer)
	}
	if options.Display != "" {
		s.DisplayMode = vocab.DisplayMode(options.Display)
	}
	if options.Count != 0 {
		s.QuestionCount = quiz.ClampCount(options.Count)
	}
	if options.Starred {
		s.PracticeMode = quiz.PracticeStarred
	}
	if options.NoAudio {
		s.AudioEnabled = false
	}
	if options.Voice != "" {
		s.AudioVoice = options.Voice
	}
	return s, s.Validate()
}

func openLog(cfg config.Config) (*log.Logger, func()) {
	f, err := os.OpenFile(path.Join(cfg.StoragePath, "vocabgarden.log"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard, "", 0), func() {}
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }
}
