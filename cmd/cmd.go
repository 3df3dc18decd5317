package cmd

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/lai323/vocabgarden/config"
	"github.com/lai323/vocabgarden/practice"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	storagePath string
	UnlockDb    bool
	quizOpt     practice.Options
	audioOpt    audioOptions

	cfg     config.Config
	rootCmd = &cobra.Command{
		Use:   "vocabgarden",
		Short: "Japanese vocabulary flashcard quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			if UnlockDb {
				return unlockdb()
			}
			cmd.Help()
			return nil
		},
	}
	quizCmd = &cobra.Command{
		Use:   "quiz [file]",
		Short: "run a quiz over the selected lessons",
		RunE:  practice.Run(&cfg, &quizOpt),
	}
	lessonsCmd = &cobra.Command{
		Use:   "lessons [file]",
		Short: "list vocabulary files, or the lessons of one file",
		RunE:  lessons(&cfg),
	}
	starCmd = &cobra.Command{
		Use:   "star",
		Short: "manage starred words",
	}
	starListCmd = &cobra.Command{
		Use:   "list",
		Short: "list starred words",
		RunE:  starList(&cfg),
	}
	starClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "unstar every word",
		RunE:  starClear(&cfg),
	}
	audioCmd = &cobra.Command{
		Use:   "audio",
		Short: "audio manifest tools",
	}
	audioManifestCmd = &cobra.Command{
		Use:   "manifest",
		Short: "rebuild the audio manifest from the voice folders",
		RunE:  audioManifest(&cfg, &audioOpt),
	}
	audioCheckCmd = &cobra.Command{
		Use:   "check [terms...]",
		Short: "check whether terms have audio in the manifest and on disk",
		RunE:  audioCheck(&cfg, &audioOpt),
	}
	audioPlayCmd = &cobra.Command{
		Use:   "play",
		Short: "play a random sample of the configured voice",
		RunE:  audioPlay(&cfg, &audioOpt),
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", fmt.Sprintf("storage dir (default is %s)", config.DefaultStorageDir))
	rootCmd.PersistentFlags().BoolVar(&UnlockDb, "unlockdb", false, "unlock db")

	quizCmd.Flags().StringSliceVar(&quizOpt.Lessons, "lessons", nil, "lessons to practice, e.g. 1,2 (default all)")
	quizCmd.Flags().StringVar(&quizOpt.Mode, "mode", "", "question mode: jp2en, en2jp, mixed, listening")
	quizCmd.Flags().StringVar(&quizOpt.Answer, "answer", "", "answer mode: typing, multiple_choice, mixed")
	quizCmd.Flags().StringVar(&quizOpt.Display, "display", "", "japanese display: kana, kanji, both")
	quizCmd.Flags().IntVar(&quizOpt.Count, "count", 0, "number of questions (5-200)")
	quizCmd.Flags().BoolVar(&quizOpt.Starred, "starred", false, "practice starred words only")
	quizCmd.Flags().BoolVar(&quizOpt.NoAudio, "no-audio", false, "disable audio")
	quizCmd.Flags().StringVar(&quizOpt.Voice, "voice", "", "voice folder")

	audioManifestCmd.Flags().StringVar(&audioOpt.Dir, "dir", "", "voice folder root (default is the manifest's directory)")
	audioCheckCmd.Flags().StringVar(&audioOpt.TermsFile, "terms-file", "", "file with one term per line")
	audioPlayCmd.Flags().StringVar(&audioOpt.Voice, "voice", "", "voice folder")

	starCmd.AddCommand(starListCmd, starClearCmd)
	audioCmd.AddCommand(audioManifestCmd, audioCheckCmd, audioPlayCmd)
	rootCmd.AddCommand(quizCmd, lessonsCmd, starCmd, audioCmd)
}

func initConfig() {
	var err error
	fs := afero.NewOsFs()
	if configPath == "" {
		if err = config.CreateDefaultFile(fs); err != nil {
			log.Fatal(err)
		}
	}
	cfg, err = config.InitConfig(fs, configPath)
	if err != nil {
		log.Fatal(err)
	}
	if storagePath != "" {
		cfg.StoragePath = storagePath
	}
}

func unlockdb() error {
	file, err := os.Open(cfg.DbFile())
	if err != nil {
		return err
	}
	defer file.Close()
	err = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	if err != nil {
		return err
	}
	fmt.Printf("unlock %s\n", cfg.DbFile())
	return nil
}
