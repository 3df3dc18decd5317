package cmd

import (
	"errors"
	"os"

	"github.com/lai323/vocabgarden/config"
	"github.com/lai323/vocabgarden/db"
	"github.com/lai323/vocabgarden/vocab"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func lessons(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("Only one vocabulary file can be listed at a time")
		}
		lib := vocab.NewLibrary(afero.NewOsFs(), cfg.VocabularyDir)
		if len(args) == 0 {
			return vocab.ListFiles(cmd.OutOrStdout(), lib)
		}
		data, err := lib.Load(args[0])
		if err != nil {
			return err
		}
		vocab.ListLessons(cmd.OutOrStdout(), data)
		return nil
	}
}

func openStarred(cfg *config.Config) (*db.Starred, func(), error) {
	if cfg.StoragePath == "" {
		return nil, nil, errors.New("StoragePath empty")
	}
	if err := os.MkdirAll(cfg.StoragePath, 0755); err != nil {
		return nil, nil, err
	}
	store, err := db.NewBoltStarStore(cfg.DbFile())
	if err != nil {
		return nil, nil, err
	}
	s := db.LoadStarred(store)
	if s.LastErr != nil {
		store.Close()
		return nil, nil, s.LastErr
	}
	return s, func() { store.Close() }, nil
}

func starList(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, closeDb, err := openStarred(cfg)
		if err != nil {
			return err
		}
		defer closeDb()
		return db.StarList(cmd.OutOrStdout(), s)
	}
}

func starClear(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, closeDb, err := openStarred(cfg)
		if err != nil {
			return err
		}
		defer closeDb()
		return db.StarClear(cmd.OutOrStdout(), s)
	}
}
