package config

import (
	"testing"

	"github.com/lai323/vocabgarden/quiz"
	"github.com/spf13/afero"
)

func TestCreateDefaultFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := CreateDefaultFile(fs); err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.DirExists(fs, DefaultStorageDir); !ok {
		t.Fatal("storage dir not created")
	}

	c, err := InitConfig(fs, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.StoragePath != DefaultStorageDir || c.AudioVoice != "Female option 1" || !c.AudioEnabled {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if len(c.FfplayArgs) != 4 {
		t.Fatalf("unexpected player args %v", c.FfplayArgs)
	}

	afero.WriteFile(fs, DefaultConfigPath, []byte("AudioVoice: Male\n"), 0644)
	if err := CreateDefaultFile(fs); err != nil {
		t.Fatal(err)
	}
	c, _ = InitConfig(fs, "")
	if c.AudioVoice != "Male" {
		t.Fatal("existing config was overwritten")
	}
}

func TestInitConfigMergesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/tmp/custom.yaml", []byte(
		"QuestionMode: listening\nQuestionsPerQuiz: 500\nAudioEnabled: false\nStoragePath: /data\n",
	), 0644)

	c, err := InitConfig(fs, "/tmp/custom.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if c.DbFile() != "/data/vocabgarden.db" {
		t.Fatalf("unexpected db file %q", c.DbFile())
	}
	s := c.Settings()
	if s.QuestionMode != quiz.ModeListening || s.AudioEnabled || s.QuestionCount != quiz.MaxQuestions {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.AnswerMode != quiz.AnswerTyping || s.DisplayMode != "both" {
		t.Fatalf("defaults lost for unset keys: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestInitConfigErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := InitConfig(fs, "/nope.yaml"); err == nil {
		t.Fatal("expected missing file error")
	}
	afero.WriteFile(fs, "/bad.yaml", []byte("QuestionsPerQuiz: [1"), 0644)
	_, err := InitConfig(fs, "/bad.yaml")
	if _, ok := err.(*initConfigErr); !ok {
		t.Fatalf("expected initConfigErr, got %v", err)
	}
}
