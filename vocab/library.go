package vocab

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const ManifestFile = "vocab-manifest.json"

// Library is a directory of vocabulary files.
type Library struct {
	Fs  afero.Fs
	Dir string
}

func NewLibrary(fs afero.Fs, dir string) Library {
	return Library{Fs: fs, Dir: dir}
}

// Files lists the data files in the directory. When the directory cannot
// be read, or holds no data files, the file list from vocab-manifest.json
// is used instead.
func (l Library) Files() ([]string, error) {
	files, listErr := l.listDir()
	if listErr == nil && len(files) > 0 {
		return files, nil
	}
	files, err := l.manifestFiles()
	if err != nil {
		if listErr != nil {
			return nil, fmt.Errorf("Library Files %s: %w", l.Dir, listErr)
		}
		return nil, nil
	}
	return files, nil
}

func (l Library) listDir() ([]string, error) {
	infos, err := afero.ReadDir(l.Fs, l.Dir)
	if err != nil {
		return nil, err
	}
	files := []string{}
	for _, f := range infos {
		name := f.Name()
		if f.IsDir() || name == ManifestFile {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func (l Library) manifestFiles() ([]string, error) {
	filebyte, err := afero.ReadFile(l.Fs, path.Join(l.Dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var manifest struct {
		Files []string `json:"files"`
	}
	if err := json.Unmarshal(filebyte, &manifest); err != nil {
		return nil, fmt.Errorf("Library manifest json Unmarshal %s", err.Error())
	}
	files := []string{}
	for _, f := range manifest.Files {
		if strings.HasSuffix(strings.ToLower(f), ".json") {
			files = append(files, f)
		}
	}
	return files, nil
}

func (l Library) Load(name string) (*Data, error) {
	file := path.Join(l.Dir, name)
	handle, err := l.Fs.Open(file)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", file, err)
	}
	defer handle.Close()
	d, err := Parse(handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return d, nil
}

// DefaultFile picks N5_vocab.json when present, otherwise the first file.
func DefaultFile(files []string) string {
	for _, f := range files {
		if strings.ToLower(f) == "n5_vocab.json" {
			return f
		}
	}
	if len(files) == 0 {
		return ""
	}
	return files[0]
}
