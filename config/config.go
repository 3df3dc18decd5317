package config

import (
	"fmt"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/lai323/vocabgarden/audio"
	"github.com/lai323/vocabgarden/quiz"
	"github.com/lai323/vocabgarden/vocab"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

const (
	appName = "vocabgarden"
	dbName  = "vocabgarden.db"
)

type Config struct {
	StoragePath      string   `yaml:"StoragePath"`
	VocabularyDir    string   `yaml:"VocabularyDir"`
	AudioRoot        string   `yaml:"AudioRoot"`
	AudioManifest    string   `yaml:"AudioManifest"`
	QuestionMode     string   `yaml:"QuestionMode"`
	AnswerMode       string   `yaml:"AnswerMode"`
	PracticeMode     string   `yaml:"PracticeMode"`
	DisplayMode      string   `yaml:"DisplayMode"`
	QuestionsPerQuiz int      `yaml:"QuestionsPerQuiz"`
	AudioEnabled     bool     `yaml:"AudioEnabled"`
	AudioVoice       string   `yaml:"AudioVoice"`
	FfplayPath       string   `yaml:"FfplayPath"`
	FfplayArgs       []string `yaml:"FfplayArgs"`
	AudioTimeout     int      `yaml:"AudioTimeout"`
}

var (
	DefaultConfig     Config
	DefaultConfigDir  string
	DefaultConfigPath string
	DefaultStorageDir string
)

func init() {
	DefaultConfigDir = path.Join(xdg.ConfigHome, appName)
	DefaultConfigPath = path.Join(DefaultConfigDir, appName+".yaml")
	DefaultStorageDir = path.Join(xdg.DataHome, appName)
	DefaultConfig = Config{
		StoragePath:      DefaultStorageDir,
		VocabularyDir:    "Vocabulary",
		AudioRoot:        ".",
		AudioManifest:    path.Join(audio.LegacyAudioDir, audio.ManifestName),
		QuestionMode:     string(quiz.ModeJP2EN),
		AnswerMode:       string(quiz.AnswerTyping),
		PracticeMode:     string(quiz.PracticeAll),
		DisplayMode:      string(vocab.DisplayBoth),
		QuestionsPerQuiz: quiz.DefaultQuestions,
		AudioEnabled:     true,
		AudioVoice:       audio.DefaultVoice,
		FfplayPath:       "ffplay",
		FfplayArgs:       []string{"-nodisp", "-autoexit", "-loglevel", "quiet"},
		AudioTimeout:     int(audio.DefaultTimeout / time.Second),
	}
}

type initConfigErr struct {
	s string
}

func (e *initConfigErr) Error() string {
	return e.s
}

func newInitConfigErr(err error) error {
	return &initConfigErr{
		s: fmt.Sprintf("Init config error: %s", err.Error()),
	}
}

// CreateDefaultFile writes the default config and storage directory on
// first run. An existing config file is left alone.
func CreateDefaultFile(fs afero.Fs) error {
	err := fs.MkdirAll(DefaultConfigDir, 0755)
	if err != nil {
		return err
	}
	err = fs.MkdirAll(DefaultStorageDir, 0755)
	if err != nil {
		return err
	}

	exist, err := afero.Exists(fs, DefaultConfigPath)
	if err != nil {
		return err
	}

	if !exist {
		handle, err := fs.Create(DefaultConfigPath)
		if err != nil {
			return err
		}
		defer handle.Close()
		err = yaml.NewEncoder(handle).Encode(&DefaultConfig)
		if err != nil {
			return err
		}
	}
	return nil
}

// InitConfig reads the config file, the default one when configPathOption
// is empty. Keys missing from the file keep their default values.
func InitConfig(fs afero.Fs, configPathOption string) (Config, error) {
	config := DefaultConfig
	config.FfplayArgs = append([]string(nil), DefaultConfig.FfplayArgs...)
	var configfile string

	if configPathOption == "" {
		configfile = DefaultConfigPath
	} else {
		exist, err := afero.Exists(fs, configPathOption)
		if err != nil {
			return config, newInitConfigErr(err)
		}
		if !exist {
			return config, &initConfigErr{
				s: fmt.Sprintf("Init config error: %s not exist", configPathOption),
			}
		}
		configfile = configPathOption
	}

	handle, err := fs.Open(configfile)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	defer handle.Close()
	err = yaml.NewDecoder(handle).Decode(&config)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	return config, nil
}

func (c Config) DbFile() string {
	return path.Join(c.StoragePath, dbName)
}

func (c Config) AudioTimeoutDuration() time.Duration {
	if c.AudioTimeout <= 0 {
		return audio.DefaultTimeout
	}
	return time.Duration(c.AudioTimeout) * time.Second
}

// Settings projects the quiz related keys. The count is clamped here so
// that a hand edited file cannot ask for an out of range quiz.
func (c Config) Settings() quiz.Settings {
	return quiz.Settings{
		QuestionMode:  quiz.QuestionMode(c.QuestionMode),
		AnswerMode:    quiz.AnswerMode(c.AnswerMode),
		PracticeMode:  quiz.PracticeMode(c.PracticeMode),
		DisplayMode:   vocab.DisplayMode(c.DisplayMode),
		QuestionCount: quiz.ClampCount(c.QuestionsPerQuiz),
		AudioEnabled:  c.AudioEnabled,
		AudioVoice:    c.AudioVoice,
	}
}
